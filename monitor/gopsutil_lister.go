package monitor

import (
	"github.com/shirou/gopsutil/v4/process"
)

// SystemLister reads the live OS process table via gopsutil.
type SystemLister struct{}

// Snapshot returns every process gopsutil can name. Per-process metric
// failures are not errors; the entry is reported with zeroed usage so a
// half-dead process still shows up as present.
func (SystemLister) Snapshot() ([]ProcInfo, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	infos := make([]ProcInfo, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil || name == "" {
			continue
		}
		info := ProcInfo{PID: p.Pid, Name: name}
		if cpu, err := p.CPUPercent(); err == nil {
			info.CPUPercent = cpu
		}
		if mem, err := p.MemoryInfo(); err == nil && mem != nil {
			info.MemoryRSS = mem.RSS
		}
		infos = append(infos, info)
	}
	return infos, nil
}
