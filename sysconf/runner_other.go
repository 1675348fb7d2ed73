//go:build !windows

package sysconf

import "os/exec"

// HiddenRunner degrades to a plain command runner off Windows.
type HiddenRunner struct{}

func (HiddenRunner) Run(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (HiddenRunner) Start(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}
