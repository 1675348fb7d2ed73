//go:build windows

package main

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"VRSuite-Go/models"
	"VRSuite-Go/monitor"
	"VRSuite-Go/pipeline"
	"VRSuite-Go/sensors"
	"VRSuite-Go/services"
	"VRSuite-Go/store"
	"VRSuite-Go/sysconf"
	"VRSuite-Go/utils"
)

// App holds the application's state and dependencies. All frontend-bound
// methods run on the Wails call dispatcher; the settings watcher is the only
// other writer, so settings access is guarded by a mutex.
type App struct {
	ctx context.Context

	settings      models.VRSettings
	settingsMutex sync.Mutex

	settingsStore *store.Store
	watcher       *store.Watcher
	applier       *pipeline.Applier
	actions       *services.ProcessActions
	perfSource    services.PerformanceSource

	lister monitor.Lister
	freeze monitor.FreezePolicy
	// previous snapshot, kept for the freeze policy
	lastSnapshot []monitor.Entry

	logFile *os.File
}

// RigInfo is static hardware info shown on the stats tab.
type RigInfo struct {
	SystemModel string             `json:"system_model"`
	GPU         sensors.GPUAdapter `json:"gpu"`
}

// NewApp creates a new App application struct.
func NewApp() *App {
	return &App{}
}

// startup is called when the app starts.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	baseDir, err := utils.GetBaseDir()
	if err != nil {
		log.Printf("Warning: could not determine executable path: %v", err)
	}

	if f, err := os.Create(filepath.Join(baseDir, "vr_suite.log")); err == nil {
		a.logFile = f
		log.SetOutput(io.MultiWriter(os.Stderr, f))
	} else {
		log.Printf("Warning: could not create log file: %v", err)
	}

	a.settingsStore = store.New(filepath.Join(baseDir, "settings.json"))
	a.settings = a.settingsStore.Load()

	runner := sysconf.HiddenRunner{}
	a.applier = pipeline.New(sysconf.RegistrySink{}, runner, sysconf.ProcessPrioritySetter{}, a.settingsStore)
	a.applier.ToolkitIniPath = filepath.Join(baseDir, "openxr_toolkit.ini")
	a.actions = services.NewProcessActions(runner)
	a.perfSource = services.StaticPerformanceSource{}
	a.lister = monitor.SystemLister{}
	a.freeze = monitor.NoFreezeDetection{}

	a.watcher = store.NewWatcher(a.settingsStore)
	a.watcher.OnChange = func(s models.VRSettings) {
		a.settingsMutex.Lock()
		a.settings = s
		a.settingsMutex.Unlock()
		runtime.EventsEmit(a.ctx, "settings:reloaded", s)
	}
	if err := a.watcher.Start(); err != nil {
		log.Printf("Warning: could not start settings watcher: %v", err)
	}

	if model, err := sensors.SystemModel(); err == nil {
		log.Printf("Detected system model: %s", model)
	}
}

// shutdown is called when the app is closing.
func (a *App) shutdown(ctx context.Context) {
	log.Println("Shutting down...")
	if a.watcher != nil {
		a.watcher.Stop()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// GetSettings returns the current settings record to the frontend.
func (a *App) GetSettings() models.VRSettings {
	a.settingsMutex.Lock()
	defer a.settingsMutex.Unlock()
	return a.settings
}

// SaveSettings replaces the in-memory record wholesale and persists it
// without applying anything to the system.
func (a *App) SaveSettings(newSettings models.VRSettings) error {
	a.settingsMutex.Lock()
	a.settings = newSettings
	a.settingsMutex.Unlock()
	return a.settingsStore.Save(newSettings)
}

// ApplyAll runs the full apply pipeline against the current record and the
// current process snapshot, then returns the record (the ReLinked step may
// have mutated it) so the frontend can re-render the toggles.
func (a *App) ApplyAll() models.VRSettings {
	snapshot := monitor.Poll(a.lister, monitor.Catalog)

	a.settingsMutex.Lock()
	defer a.settingsMutex.Unlock()
	a.applier.Apply(&a.settings, snapshot)
	return a.settings
}

// GetProcesses polls the process table. The frontend refresh loop calls this
// on its own cadence; the monitor itself has no scheduler.
func (a *App) GetProcesses() []monitor.Entry {
	cur := monitor.Poll(a.lister, monitor.Catalog)
	cur = a.freeze.Refine(a.lastSnapshot, cur)
	a.lastSnapshot = cur
	return cur
}

// RestartProcess force-kills and relaunches the named VR process.
func (a *App) RestartProcess(name string) {
	a.actions.Restart(name)
}

// RestartAll restarts every catalog process that is currently running.
func (a *App) RestartAll() {
	for _, entry := range monitor.Poll(a.lister, monitor.Catalog) {
		if entry.Status == monitor.StatusRunning {
			a.actions.Restart(entry.Name)
		}
	}
}

// KillOculusClient force-terminates the Oculus client.
func (a *App) KillOculusClient() {
	a.actions.KillClient()
}

// LaunchRuntime spawns the Oculus runtime server.
func (a *App) LaunchRuntime() {
	a.actions.LaunchRuntime()
}

// OpenDebugTool spawns the Oculus Debug Tool.
func (a *App) OpenDebugTool() {
	a.actions.OpenDebugTool()
}

// OpenSteamVRSettings opens the SteamVR settings page.
func (a *App) OpenSteamVRSettings() {
	a.actions.OpenSteamVRSettings()
}

// GetStats returns the current performance statistics.
func (a *App) GetStats() models.PerformanceStats {
	return a.perfSource.Stats()
}

// GetRigInfo returns static hardware info for the stats tab.
func (a *App) GetRigInfo() RigInfo {
	info := RigInfo{}
	if model, err := sensors.SystemModel(); err == nil {
		info.SystemModel = model
	}
	if gpu, err := sensors.GPUAdapterInfo(); err == nil {
		info.GPU = gpu
	} else {
		log.Printf("Warning: could not query GPU adapter: %v", err)
	}
	return info
}
