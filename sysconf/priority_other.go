//go:build !windows

package sysconf

import (
	"fmt"

	"VRSuite-Go/models"
)

// ProcessPrioritySetter is a dummy on non-Windows systems.
type ProcessPrioritySetter struct{}

func (ProcessPrioritySetter) Set(pid int32, priority models.GPUPriority) error {
	return fmt.Errorf("priority classes are not available on this platform")
}
