//go:build !windows

package main

import (
	"context"
	"log"

	"VRSuite-Go/models"
	"VRSuite-Go/monitor"
)

// App is a dummy struct for non-Windows systems.
type App struct {
	ctx context.Context
}

// RigInfo is static hardware info shown on the stats tab.
type RigInfo struct {
	SystemModel string `json:"system_model"`
}

// NewApp creates a new App application struct.
func NewApp() *App {
	return &App{}
}

func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	log.Println("Dummy App started on non-Windows platform.")
}

func (a *App) shutdown(ctx context.Context) {}

func (a *App) GetSettings() models.VRSettings {
	return models.DefaultVRSettings()
}

func (a *App) SaveSettings(newSettings models.VRSettings) error {
	log.Printf("Dummy SaveSettings called: %+v", newSettings)
	return nil
}

func (a *App) ApplyAll() models.VRSettings {
	log.Println("Dummy ApplyAll called.")
	return models.DefaultVRSettings()
}

func (a *App) GetProcesses() []monitor.Entry {
	// Return a mock snapshot so the UI can render something.
	entries := make([]monitor.Entry, 0, len(monitor.Catalog))
	for _, name := range monitor.Catalog {
		entries = append(entries, monitor.Entry{Name: name, Status: monitor.StatusStopped})
	}
	return entries
}

func (a *App) RestartProcess(name string) {
	log.Printf("Dummy RestartProcess called: %s", name)
}

func (a *App) RestartAll() {}

func (a *App) KillOculusClient() {}

func (a *App) LaunchRuntime() {}

func (a *App) OpenDebugTool() {}

func (a *App) OpenSteamVRSettings() {}

func (a *App) GetStats() models.PerformanceStats {
	return models.PerformanceStats{FPS: 90.0, FrameTimeMs: 11.1}
}

func (a *App) GetRigInfo() RigInfo {
	return RigInfo{SystemModel: "Dummy Rig (Non-Windows)"}
}
