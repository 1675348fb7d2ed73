//go:build windows

package sysconf

import (
	"os/exec"
	"syscall"
)

// HiddenRunner executes commands without flashing a console window, the same
// way the monitor sidecar is launched.
type HiddenRunner struct{}

func hidden(name string, args ...string) *exec.Cmd {
	cmd := exec.Command(name, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: 0x08000000, // CREATE_NO_WINDOW
	}
	return cmd
}

func (HiddenRunner) Run(name string, args ...string) error {
	return hidden(name, args...).Run()
}

func (HiddenRunner) Start(name string, args ...string) error {
	return hidden(name, args...).Start()
}
