//go:build !windows

package sensors

import "fmt"

// GPUAdapter describes the primary display adapter.
type GPUAdapter struct {
	Name          string  `json:"name"`
	DriverVersion string  `json:"driver_version"`
	VRAMTotalGB   float64 `json:"vram_total_gb"`
}

// GPUAdapterInfo is not available off Windows.
func GPUAdapterInfo() (GPUAdapter, error) {
	return GPUAdapter{}, fmt.Errorf("WMI is only available on Windows")
}
