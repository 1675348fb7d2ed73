package models

// PerformanceStats is the read-only display record shown on the Stats tab.
// Values come from a services.PerformanceSource.
type PerformanceStats struct {
	FPS         float64 `json:"fps"`
	FrameTimeMs float64 `json:"frame_time_ms"`
	CPUUsage    float64 `json:"cpu_usage"`
	GPUUsage    float64 `json:"gpu_usage"`
	VRAMUsedGB  float64 `json:"vram_used_gb"`
	LatencyMs   float64 `json:"latency_ms"`
}
