//go:build windows

package sensors

import (
	"fmt"

	"github.com/yusufpapurcu/wmi"
)

// win32VideoController maps the WMI class of the same name.
type win32VideoController struct {
	Name          string
	DriverVersion string
	AdapterRAM    uint32
}

// GPUAdapter describes the primary display adapter, shown as rig info on the
// stats tab.
type GPUAdapter struct {
	Name          string  `json:"name"`
	DriverVersion string  `json:"driver_version"`
	VRAMTotalGB   float64 `json:"vram_total_gb"`
}

// GPUAdapterInfo queries WMI for the first video controller.
func GPUAdapterInfo() (GPUAdapter, error) {
	var dst []win32VideoController
	query := "SELECT Name, DriverVersion, AdapterRAM FROM Win32_VideoController"

	if err := wmi.Query(query, &dst); err != nil {
		return GPUAdapter{}, fmt.Errorf("WMI query failed: %w", err)
	}
	if len(dst) == 0 {
		return GPUAdapter{}, fmt.Errorf("no video controller found via WMI")
	}

	gpu := dst[0]
	return GPUAdapter{
		Name:          gpu.Name,
		DriverVersion: gpu.DriverVersion,
		VRAMTotalGB:   float64(gpu.AdapterRAM) / (1024 * 1024 * 1024),
	}, nil
}
