package services

import (
	"log"
	"strings"
	"time"

	"VRSuite-Go/sysconf"
)

// Fixed launch paths for the two VR runtime families.
const (
	OculusRuntimePath   = `C:\Program Files\Oculus\Support\oculus-runtime\OVRServer_x64.exe`
	SteamVRServerPath   = `C:\Program Files (x86)\Steam\steamapps\common\SteamVR\bin\win64\vrserver.exe`
	OculusDebugToolPath = `C:\Program Files\Oculus\Support\oculus-diagnostics\OculusDebugTool.exe`

	oculusClientExe = "OculusClient.exe"
)

// ProcessActions force-terminates, relaunches and spawns the VR processes.
// Spawns are fire-and-forget; nothing verifies the relaunch succeeded, the
// next monitor poll reflects reality.
type ProcessActions struct {
	Runner sysconf.Runner
	// RestartDelay sits between the kill and the relaunch.
	RestartDelay time.Duration
}

func NewProcessActions(runner sysconf.Runner) *ProcessActions {
	return &ProcessActions{
		Runner:       runner,
		RestartDelay: 500 * time.Millisecond,
	}
}

// Restart force-kills the named process, waits, then spawns the launch path
// associated with its family. Names outside both families are only killed.
func (p *ProcessActions) Restart(processName string) {
	if err := p.Runner.Run("taskkill", "/F", "/IM", processName); err != nil {
		log.Printf("Warning: taskkill %s: %v", processName, err)
	}

	time.Sleep(p.RestartDelay)

	switch {
	case strings.Contains(processName, "OVRServer"):
		p.spawn(OculusRuntimePath)
	case strings.Contains(processName, "vrserver"):
		p.spawn(SteamVRServerPath)
	}
}

// KillClient force-terminates the Oculus client unconditionally.
func (p *ProcessActions) KillClient() {
	if err := p.Runner.Run("taskkill", "/F", "/IM", oculusClientExe); err != nil {
		log.Printf("Warning: taskkill %s: %v", oculusClientExe, err)
	}
}

// LaunchRuntime spawns the Oculus runtime server. No liveness check is done
// first, so calling it twice can launch a duplicate.
func (p *ProcessActions) LaunchRuntime() {
	p.spawn(OculusRuntimePath)
	log.Println("Launched Oculus Runtime")
}

// OpenDebugTool spawns the Oculus Debug Tool.
func (p *ProcessActions) OpenDebugTool() {
	p.spawn(OculusDebugToolPath)
}

// OpenSteamVRSettings opens the SteamVR settings page via the steam URI
// handler.
func (p *ProcessActions) OpenSteamVRSettings() {
	if err := p.Runner.Start("cmd", "/c", "start", "steam://open/settings"); err != nil {
		log.Printf("Warning: could not open SteamVR settings: %v", err)
	}
}

func (p *ProcessActions) spawn(path string) {
	if err := p.Runner.Start(path); err != nil {
		log.Printf("Warning: could not spawn %s: %v", path, err)
	}
}
