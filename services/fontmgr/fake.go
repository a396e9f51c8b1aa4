package fontmgr

import (
	"fmt"
	"sort"
)

// FakeStore is an in-memory Store for unit tests. Every mutation is appended
// to Journal so tests can assert ordering (backup before mutate) and absence
// of partial writes.
type FakeStore struct {
	Values    map[string]map[string]string
	DenyRead  bool
	DenyWrite bool
	Journal   []string
}

var _ Store = (*FakeStore)(nil)

func NewFakeStore() *FakeStore {
	return &FakeStore{Values: map[string]map[string]string{}}
}

func (f *FakeStore) GetString(path, name string) (string, error) {
	if f.DenyRead {
		return "", ErrAccessDenied
	}
	v, ok := f.Values[path][name]
	if !ok {
		return "", ErrValueNotExist
	}
	return v, nil
}

func (f *FakeStore) SetString(path, name, value string) error {
	if f.DenyWrite {
		return ErrAccessDenied
	}
	if f.Values[path] == nil {
		f.Values[path] = map[string]string{}
	}
	f.Values[path][name] = value
	f.Journal = append(f.Journal, fmt.Sprintf("set %s %s=%s", path, name, value))
	return nil
}

func (f *FakeStore) Delete(path, name string) error {
	if f.DenyWrite {
		return ErrAccessDenied
	}
	if _, ok := f.Values[path][name]; !ok {
		return ErrValueNotExist
	}
	delete(f.Values[path], name)
	f.Journal = append(f.Journal, fmt.Sprintf("delete %s %s", path, name))
	return nil
}

func (f *FakeStore) CheckWritable(path string) error {
	if f.DenyWrite {
		return ErrAccessDenied
	}
	return nil
}

// ValueNames returns the sorted value names present under a key.
func (f *FakeStore) ValueNames(path string) []string {
	out := make([]string, 0, len(f.Values[path]))
	for name := range f.Values[path] {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
