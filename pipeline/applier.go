package pipeline

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"VRSuite-Go/models"
	"VRSuite-Go/monitor"
	"VRSuite-Go/store"
	"VRSuite-Go/sysconf"
)

const (
	ovrServiceName = "OVRService"
	dashExeName    = "OculusDash.exe"
	backupSuffix   = ".bak"
)

// DefaultDashDir is where the Oculus runtime keeps the dash executable.
const DefaultDashDir = `C:\Program Files\Oculus\Support\oculus-dash\dash\bin`

// Applier turns a settings record into system state: registry writes,
// service restarts, a file rename for the dash killer, process priorities.
// Every sub-operation is best effort; a failure is logged and the pipeline
// runs to completion. Nothing is rolled back.
type Applier struct {
	Sink     sysconf.Sink
	Runner   sysconf.Runner
	Priority sysconf.PrioritySetter
	Store    *store.Store

	// DashDir holds OculusDash.exe; overridable for tests.
	DashDir string
	// ToolkitIniPath is the OpenXR Toolkit config file, overwritten (not
	// merged) on every apply.
	ToolkitIniPath string
	// ServiceGrace is how long to wait after stopping OVRService before
	// touching its files.
	ServiceGrace time.Duration
}

// New wires an applier with production defaults.
func New(sink sysconf.Sink, runner sysconf.Runner, priority sysconf.PrioritySetter, st *store.Store) *Applier {
	return &Applier{
		Sink:           sink,
		Runner:         runner,
		Priority:       priority,
		Store:          st,
		DashDir:        DefaultDashDir,
		ToolkitIniPath: "openxr_toolkit.ini",
		ServiceGrace:   2 * time.Second,
	}
}

// Apply runs the full pipeline against the given record and the current
// process snapshot, then persists the record (which the ReLinked step may
// have mutated).
func (a *Applier) Apply(s *models.VRSettings, procs []monitor.Entry) {
	log.Println("Applying settings")

	a.ApplyLinkEncode(s)
	a.ApplyRuntimeSelection(s)
	a.ApplyProcessPriorities(s, procs)
	a.ApplyASW(s)
	a.ApplyAdditional(s)
	a.SetOculusKiller(s.OculusKillerEnabled)
	a.applyRelinked(s, procs)

	if err := a.Store.Save(*s); err != nil {
		log.Printf("Warning: could not persist settings: %v", err)
	}
}

// ApplyLinkEncode writes the Link video encode parameters. The sharpening
// enable flag is derived from the strength slider: zero means off.
func (a *Applier) ApplyLinkEncode(s *models.VRSettings) {
	a.warn(a.Sink.SetDWord(sysconf.RemoteHeadset, "BitrateMbps", s.EncodeBitrateMbps))
	a.warn(a.Sink.SetDWord(sysconf.RemoteHeadset, "EncodeResolutionWidth", s.EncodeResolutionWidth))
	a.warn(a.Sink.SetDWord(sysconf.RemoteHeadset, "EncodeResolutionHeight", s.EncodeResolutionHeight))

	var enabled uint32
	if s.LinkSharpening > 0 {
		enabled = 1
	}
	a.warn(a.Sink.SetDWord(sysconf.RemoteHeadset, "LinkSharpeningEnabled", enabled))
	a.warn(a.Sink.SetDWord(sysconf.RemoteHeadset, "LinkSharpeningStrength", uint32(math.Round(s.LinkSharpening*100))))
}

// ApplyRuntimeSelection marks the active OpenXR runtime.
func (a *Applier) ApplyRuntimeSelection(s *models.VRSettings) {
	runtime := "oculus"
	if s.ActiveRuntime == models.RuntimeSteamVR {
		runtime = "steamvr"
	}
	a.warn(a.Sink.SetString(sysconf.OpenXRRuntime, "ActiveRuntime", runtime))
}

// ApplyProcessPriorities boosts the scheduling class of the VR server
// processes found in the snapshot. Only entries with a live pid whose name
// matches a server pattern are touched; per-process failures are skipped.
func (a *Applier) ApplyProcessPriorities(s *models.VRSettings, procs []monitor.Entry) {
	if !s.CPUPriorityBoost {
		return
	}
	for _, p := range procs {
		if p.PID == 0 {
			continue
		}
		if !strings.Contains(p.Name, "OVRServer") && !strings.Contains(p.Name, "vrserver") {
			continue
		}
		if err := a.Priority.Set(p.PID, s.GPUPriority); err != nil {
			log.Printf("Warning: could not set priority on %s (pid %d): %v", p.Name, p.PID, err)
		}
	}
}

// ApplyASW writes the spacewarp mode code to the Oculus debug store.
func (a *Applier) ApplyASW(s *models.VRSettings) {
	a.warn(a.Sink.SetDWord(sysconf.OculusDebug, "ASW", s.ASWMode.Code()))
}

// ApplyAdditional switches the power plan, writes the mirror/guardian flags
// and overwrites the OpenXR Toolkit config file.
func (a *Applier) ApplyAdditional(s *models.VRSettings) {
	a.warn(a.Runner.Run("powercfg", "/s", s.PowerPlan.GUID()))

	a.warn(a.Sink.SetDWord(sysconf.RemoteHeadset, "MirrorWindow", boolDWord(s.MirrorWindow)))
	a.warn(a.Sink.SetDWord(sysconf.RemoteHeadset, "GuardianVisibility", boolDWord(s.GuardianVisibility)))

	ini := fmt.Sprintf("upscaling_enabled = %t", s.UpscalingEnabled)
	a.warn(os.WriteFile(a.ToolkitIniPath, []byte(ini), 0644))
}

// SetOculusKiller enables or disables the dash replacement. Enabling renames
// the live dash executable to a backup name so the runtime cannot launch it;
// disabling restores the backup. The runtime service is stopped around the
// rename and restarted afterwards.
//
// Both transitions are idempotent: enabling never clobbers an existing
// backup, and disabling with no backup present leaves the filesystem alone.
func (a *Applier) SetOculusKiller(enable bool) {
	a.warn(a.Runner.Run("sc", "stop", ovrServiceName))
	time.Sleep(a.ServiceGrace)

	dashPath := filepath.Join(a.DashDir, dashExeName)
	bakPath := dashPath + backupSuffix

	if enable {
		if _, err := os.Stat(bakPath); os.IsNotExist(err) {
			a.warn(os.Rename(dashPath, bakPath))
		}
	} else {
		if _, err := os.Stat(bakPath); err == nil {
			if err := os.Remove(dashPath); err != nil && !os.IsNotExist(err) {
				log.Printf("Warning: %v", err)
			}
			a.warn(os.Rename(bakPath, dashPath))
		}
	}

	a.warn(a.Runner.Run("sc", "start", ovrServiceName))

	if enable {
		a.warn(a.Sink.SetString(sysconf.OculusConfig, "CoreChannel", "NO_UPDATES"))
	}
}

// applyRelinked handles the ReLinked bundle. It deliberately mutates the
// record: telemetry, login and the dash killer are forced on and stay on
// until the user re-toggles them after leaving ReLinked mode.
func (a *Applier) applyRelinked(s *models.VRSettings, procs []monitor.Entry) {
	if s.DebugLogging {
		log.Println("Applying ReLinked settings")
	}
	if !s.RelinkedMode {
		return
	}

	s.DisableTelemetry = true
	s.DisableLogin = true
	s.OculusKillerEnabled = true
	a.SetOculusKiller(true)

	a.warn(a.Sink.SetDWord(sysconf.OculusTelemetry, "Enabled", 0))

	log.Println("ReLinked mode enabled - manual runtime modifications may be needed")
	log.Printf("Setting custom FPS to %d", s.CustomFPS)

	s.EnableRuntimeHighPrio = true
	a.ApplyProcessPriorities(s, procs)

	s.AllowOtherSoftware = true
	a.ApplyRuntimeSelection(s)
}

func (a *Applier) warn(err error) {
	if err != nil {
		log.Printf("Warning: %v", err)
	}
}

func boolDWord(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
