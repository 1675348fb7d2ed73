package services

import "VRSuite-Go/models"

// PerformanceSource supplies the numbers on the Stats tab. The VR runtimes
// expose no stable public counter API, so the shipped implementation is
// static; a live source can be dropped in without touching the UI wiring.
type PerformanceSource interface {
	Stats() models.PerformanceStats
}

// StaticPerformanceSource reports fixed placeholder values.
type StaticPerformanceSource struct{}

func (StaticPerformanceSource) Stats() models.PerformanceStats {
	return models.PerformanceStats{
		FPS:         90.0,
		FrameTimeMs: 11.1,
	}
}
