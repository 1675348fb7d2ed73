package sysconf

import (
	"sync"

	"VRSuite-Go/models"
)

// PrioritySetter adjusts the OS scheduling priority class of a live process.
// Failures are per-process and callers continue with the next pid.
type PrioritySetter interface {
	Set(pid int32, priority models.GPUPriority) error
}

// MemoryPrioritySetter records the pids and priorities it was asked to set.
type MemoryPrioritySetter struct {
	mu      sync.Mutex
	Applied map[int32]models.GPUPriority
}

func NewMemoryPrioritySetter() *MemoryPrioritySetter {
	return &MemoryPrioritySetter{Applied: make(map[int32]models.GPUPriority)}
}

func (m *MemoryPrioritySetter) Set(pid int32, priority models.GPUPriority) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Applied[pid] = priority
	return nil
}
