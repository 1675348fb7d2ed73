//go:build windows

package sysconf

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// RegistrySink writes to the live Windows registry. Keys are created on
// demand so a fresh machine (no Oculus software ever configured) still
// accepts every write.
type RegistrySink struct{}

func rootKey(r Root) registry.Key {
	if r == LocalMachine {
		return registry.LOCAL_MACHINE
	}
	return registry.CURRENT_USER
}

func (RegistrySink) SetDWord(store Store, name string, value uint32) error {
	key, _, err := registry.CreateKey(rootKey(store.Root), store.Path, registry.ALL_ACCESS)
	if err != nil {
		return fmt.Errorf("create key %s: %w", store, err)
	}
	defer key.Close()
	return key.SetDWordValue(name, value)
}

func (RegistrySink) SetString(store Store, name string, value string) error {
	key, _, err := registry.CreateKey(rootKey(store.Root), store.Path, registry.ALL_ACCESS)
	if err != nil {
		return fmt.Errorf("create key %s: %w", store, err)
	}
	defer key.Close()
	return key.SetStringValue(name, value)
}
