//go:build windows

package fontmgr

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows/registry"
)

type systemStore struct{}

func newSystemStore() Store {
	return systemStore{}
}

func (systemStore) GetString(path, name string) (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE)
	if err != nil {
		return "", mapRegistryErr(err, path)
	}
	defer k.Close()
	v, _, err := k.GetStringValue(name)
	if err != nil {
		return "", mapRegistryErr(err, path)
	}
	return v, nil
}

func (systemStore) SetString(path, name, value string) error {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.SET_VALUE)
	if err != nil {
		return mapRegistryErr(err, path)
	}
	defer k.Close()
	if err := k.SetStringValue(name, value); err != nil {
		return mapRegistryErr(err, path)
	}
	return nil
}

func (systemStore) Delete(path, name string) error {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.SET_VALUE)
	if err != nil {
		return mapRegistryErr(err, path)
	}
	defer k.Close()
	if err := k.DeleteValue(name); err != nil {
		return mapRegistryErr(err, path)
	}
	return nil
}

func (systemStore) CheckWritable(path string) error {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.SET_VALUE)
	if err != nil {
		return mapRegistryErr(err, path)
	}
	return k.Close()
}

func mapRegistryErr(err error, path string) error {
	switch {
	case errors.Is(err, registry.ErrNotExist):
		return ErrValueNotExist
	case os.IsPermission(err):
		return errors.Wrapf(ErrAccessDenied, `HKLM\%s`, path)
	default:
		return errors.Wrapf(err, `HKLM\%s`, path)
	}
}
