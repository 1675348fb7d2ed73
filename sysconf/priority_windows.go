//go:build windows

package sysconf

import (
	"fmt"

	"golang.org/x/sys/windows"

	"VRSuite-Go/models"
)

// ProcessPrioritySetter sets the priority class on live processes via the
// Win32 API.
type ProcessPrioritySetter struct{}

func priorityClass(p models.GPUPriority) uint32 {
	switch p {
	case models.PriorityRealtime:
		return windows.REALTIME_PRIORITY_CLASS
	case models.PriorityHigh:
		return windows.HIGH_PRIORITY_CLASS
	default:
		return windows.NORMAL_PRIORITY_CLASS
	}
}

func (ProcessPrioritySetter) Set(pid int32, priority models.GPUPriority) error {
	handle, err := windows.OpenProcess(windows.PROCESS_SET_INFORMATION, false, uint32(pid))
	if err != nil {
		return fmt.Errorf("open process %d: %w", pid, err)
	}
	defer windows.CloseHandle(handle)

	if err := windows.SetPriorityClass(handle, priorityClass(priority)); err != nil {
		return fmt.Errorf("set priority class on %d: %w", pid, err)
	}
	return nil
}
