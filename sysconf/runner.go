package sysconf

import "sync"

// Runner executes external utilities (sc, powercfg, taskkill) and spawns
// processes by path. Run waits for exit; the exit code and output are
// discarded by callers. Start is fire-and-forget.
type Runner interface {
	Run(name string, args ...string) error
	Start(name string, args ...string) error
}

// Invocation is one recorded command.
type Invocation struct {
	Name string
	Args []string
	// Spawned is true for Start calls, false for Run.
	Spawned bool
}

// MemoryRunner records invocations instead of executing them.
type MemoryRunner struct {
	mu    sync.Mutex
	Calls []Invocation
}

func (r *MemoryRunner) Run(name string, args ...string) error {
	r.record(Invocation{Name: name, Args: args})
	return nil
}

func (r *MemoryRunner) Start(name string, args ...string) error {
	r.record(Invocation{Name: name, Args: args, Spawned: true})
	return nil
}

func (r *MemoryRunner) record(inv Invocation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls = append(r.Calls, inv)
}

// Ran reports whether a Run call with exactly these arguments was recorded.
func (r *MemoryRunner) Ran(name string, args ...string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.Calls {
		if c.Spawned || c.Name != name || len(c.Args) != len(args) {
			continue
		}
		match := true
		for i := range args {
			if c.Args[i] != args[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// Started reports whether a Start call for the given path was recorded.
func (r *MemoryRunner) Started(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.Calls {
		if c.Spawned && c.Name == name {
			return true
		}
	}
	return false
}
