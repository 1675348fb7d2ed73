package sysconf

import (
	"fmt"
	"sync"
)

// Root names a registry hive without depending on the platform registry API.
type Root int

const (
	CurrentUser Root = iota
	LocalMachine
)

// Store identifies one key-value store the apply pipeline writes to.
type Store struct {
	Root Root
	Path string
}

// The fixed catalog of stores touched by the pipeline.
var (
	RemoteHeadset   = Store{CurrentUser, `Software\Oculus\RemoteHeadset`}
	OculusDebug     = Store{CurrentUser, `Software\Oculus\Debug`}
	OculusTelemetry = Store{CurrentUser, `Software\Oculus\Telemetry`}
	OpenXRRuntime   = Store{LocalMachine, `SOFTWARE\Khronos\OpenXR\1`}
	OculusConfig    = Store{LocalMachine, `SOFTWARE\WOW6432Node\Oculus VR, LLC\Oculus\Config`}
)

// Sink is the key-value surface the apply pipeline mutates. The production
// implementation is backed by the Windows registry; tests substitute
// MemorySink to assert exact key/value pairs.
type Sink interface {
	SetDWord(store Store, name string, value uint32) error
	SetString(store Store, name string, value string) error
}

// MemorySink records every write for inspection.
type MemorySink struct {
	mu      sync.Mutex
	DWords  map[Store]map[string]uint32
	Strings map[Store]map[string]string
}

func NewMemorySink() *MemorySink {
	return &MemorySink{
		DWords:  make(map[Store]map[string]uint32),
		Strings: make(map[Store]map[string]string),
	}
}

func (s *MemorySink) SetDWord(store Store, name string, value uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.DWords[store] == nil {
		s.DWords[store] = make(map[string]uint32)
	}
	s.DWords[store][name] = value
	return nil
}

func (s *MemorySink) SetString(store Store, name string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Strings[store] == nil {
		s.Strings[store] = make(map[string]string)
	}
	s.Strings[store][name] = value
	return nil
}

// DWord returns a recorded dword value, or -1 if it was never written.
func (s *MemorySink) DWord(store Store, name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.DWords[store]; ok {
		if v, ok := m[name]; ok {
			return int64(v)
		}
	}
	return -1
}

// String returns a recorded string value and whether it was written.
func (s *MemorySink) String(store Store, name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.Strings[store]
	if !ok {
		return "", false
	}
	v, ok := m[name]
	return v, ok
}

func (r Root) String() string {
	switch r {
	case LocalMachine:
		return "HKLM"
	default:
		return "HKCU"
	}
}

func (s Store) String() string {
	return fmt.Sprintf(`%s\%s`, s.Root, s.Path)
}
