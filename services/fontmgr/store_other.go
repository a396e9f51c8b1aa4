//go:build !windows

package fontmgr

type systemStore struct{}

func newSystemStore() Store {
	return systemStore{}
}

func (systemStore) GetString(path, name string) (string, error) {
	return "", ErrUnsupportedPlatform
}

func (systemStore) SetString(path, name, value string) error {
	return ErrUnsupportedPlatform
}

func (systemStore) Delete(path, name string) error {
	return ErrUnsupportedPlatform
}

func (systemStore) CheckWritable(path string) error {
	return ErrUnsupportedPlatform
}
