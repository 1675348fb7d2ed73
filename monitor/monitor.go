package monitor

// Status describes what the last poll saw for a catalog entry.
// Frozen and Restarting are reserved for a freeze-detection policy and for
// callers driving a kill+relaunch sequence; the poller itself only ever
// reports Running or Stopped.
type Status string

const (
	StatusRunning    Status = "Running"
	StatusStopped    Status = "Stopped"
	StatusFrozen     Status = "Frozen"
	StatusRestarting Status = "Restarting"
)

// Entry is one row of a process snapshot.
type Entry struct {
	Name       string  `json:"name"`
	Status     Status  `json:"status"`
	PID        int32   `json:"pid"` // 0 when not running
	CPUPercent float64 `json:"cpu_percent"`
	MemoryMB   uint64  `json:"memory_mb"`
}

// Catalog is the fixed set of VR executable names, in display order.
var Catalog = []string{
	"OVRServer_x64.exe",
	"OculusClient.exe",
	"vrserver.exe",
	"vrdashboard.exe",
	"vrcompositor.exe",
}

// ProcInfo is a single live process as seen by a Lister.
type ProcInfo struct {
	PID        int32
	Name       string
	CPUPercent float64
	MemoryRSS  uint64 // bytes
}

// Lister enumerates the OS process table. Abstracting it keeps the poll
// logic testable without a live process table.
type Lister interface {
	Snapshot() ([]ProcInfo, error)
}

// Poll rebuilds the snapshot for the given catalog. For each name it takes
// the first matching process; a name with no match yields a Stopped entry
// with zeroed usage. A failed table read degrades to all-Stopped.
func Poll(lister Lister, catalog []string) []Entry {
	procs, err := lister.Snapshot()
	if err != nil {
		procs = nil
	}

	byName := make(map[string]ProcInfo, len(procs))
	for _, p := range procs {
		if _, seen := byName[p.Name]; !seen {
			byName[p.Name] = p
		}
	}

	entries := make([]Entry, 0, len(catalog))
	for _, name := range catalog {
		if p, ok := byName[name]; ok {
			entries = append(entries, Entry{
				Name:       name,
				Status:     StatusRunning,
				PID:        p.PID,
				CPUPercent: p.CPUPercent,
				MemoryMB:   p.MemoryRSS / 1024 / 1024,
			})
		} else {
			entries = append(entries, Entry{
				Name:   name,
				Status: StatusStopped,
			})
		}
	}
	return entries
}
