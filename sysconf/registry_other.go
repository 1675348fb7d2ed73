//go:build !windows

package sysconf

import "fmt"

// RegistrySink is a dummy on non-Windows systems.
type RegistrySink struct{}

func (RegistrySink) SetDWord(store Store, name string, value uint32) error {
	return fmt.Errorf("registry is not available on this platform")
}

func (RegistrySink) SetString(store Store, name string, value string) error {
	return fmt.Errorf("registry is not available on this platform")
}
