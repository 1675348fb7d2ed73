package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"VRSuite-Go/models"
	"VRSuite-Go/monitor"
	"VRSuite-Go/store"
	"VRSuite-Go/sysconf"
)

type testApplier struct {
	*Applier
	sink     *sysconf.MemorySink
	runner   *sysconf.MemoryRunner
	priority *sysconf.MemoryPrioritySetter
}

func newTestApplier(t *testing.T) *testApplier {
	t.Helper()
	sink := sysconf.NewMemorySink()
	runner := &sysconf.MemoryRunner{}
	priority := sysconf.NewMemoryPrioritySetter()

	a := New(sink, runner, priority, store.New(filepath.Join(t.TempDir(), "settings.json")))
	a.DashDir = t.TempDir()
	a.ToolkitIniPath = filepath.Join(t.TempDir(), "openxr_toolkit.ini")
	a.ServiceGrace = 0

	return &testApplier{Applier: a, sink: sink, runner: runner, priority: priority}
}

func (a *testApplier) createDash(t *testing.T) (dash, bak string) {
	t.Helper()
	dash = filepath.Join(a.DashDir, "OculusDash.exe")
	bak = dash + ".bak"
	if err := os.WriteFile(dash, []byte("dash"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return dash, bak
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestApplyLinkEncodeWritesExactValues(t *testing.T) {
	a := newTestApplier(t)
	s := models.DefaultVRSettings()
	s.EncodeBitrateMbps = 300
	s.EncodeResolutionWidth = 2784
	s.EncodeResolutionHeight = 1472

	a.ApplyLinkEncode(&s)

	tests := []struct {
		name string
		want int64
	}{
		{"BitrateMbps", 300},
		{"EncodeResolutionWidth", 2784},
		{"EncodeResolutionHeight", 1472},
	}
	for _, tt := range tests {
		if got := a.sink.DWord(sysconf.RemoteHeadset, tt.name); got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestApplyLinkEncodeSharpening(t *testing.T) {
	tests := []struct {
		sharpening   float64
		wantEnabled  int64
		wantStrength int64
	}{
		{0.0, 0, 0},
		{0.5, 1, 50},
		{1.0, 1, 100},
		{0.333, 1, 33},
	}
	for _, tt := range tests {
		a := newTestApplier(t)
		s := models.DefaultVRSettings()
		s.LinkSharpening = tt.sharpening

		a.ApplyLinkEncode(&s)

		if got := a.sink.DWord(sysconf.RemoteHeadset, "LinkSharpeningEnabled"); got != tt.wantEnabled {
			t.Errorf("sharpening %v: enabled = %d, want %d", tt.sharpening, got, tt.wantEnabled)
		}
		if got := a.sink.DWord(sysconf.RemoteHeadset, "LinkSharpeningStrength"); got != tt.wantStrength {
			t.Errorf("sharpening %v: strength = %d, want %d", tt.sharpening, got, tt.wantStrength)
		}
	}
}

func TestApplyRuntimeSelection(t *testing.T) {
	tests := []struct {
		runtime models.RuntimeKind
		want    string
	}{
		{models.RuntimeOculus, "oculus"},
		{models.RuntimeSteamVR, "steamvr"},
	}
	for _, tt := range tests {
		a := newTestApplier(t)
		s := models.DefaultVRSettings()
		s.ActiveRuntime = tt.runtime

		a.ApplyRuntimeSelection(&s)

		if got, ok := a.sink.String(sysconf.OpenXRRuntime, "ActiveRuntime"); !ok || got != tt.want {
			t.Errorf("ActiveRuntime = %q (written=%v), want %q", got, ok, tt.want)
		}
	}
}

func TestApplyASWCodes(t *testing.T) {
	tests := []struct {
		mode models.ASWMode
		want int64
	}{
		{models.ASWOff, 0},
		{models.ASWAuto, 1},
		{models.ASWForce45, 2},
		{models.ASWForce30, 3},
	}
	for _, tt := range tests {
		a := newTestApplier(t)
		s := models.DefaultVRSettings()
		s.ASWMode = tt.mode

		a.ApplyASW(&s)

		if got := a.sink.DWord(sysconf.OculusDebug, "ASW"); got != tt.want {
			t.Errorf("ASW(%q) = %d, want %d", tt.mode, got, tt.want)
		}
	}
}

func TestApplyProcessPriorities(t *testing.T) {
	a := newTestApplier(t)
	s := models.DefaultVRSettings()
	s.CPUPriorityBoost = true
	s.GPUPriority = models.PriorityRealtime

	procs := []monitor.Entry{
		{Name: "OVRServer_x64.exe", Status: monitor.StatusRunning, PID: 100},
		{Name: "vrserver.exe", Status: monitor.StatusRunning, PID: 200},
		{Name: "OculusClient.exe", Status: monitor.StatusRunning, PID: 300}, // not a server
		{Name: "vrcompositor.exe", Status: monitor.StatusStopped, PID: 0},  // no live pid
	}

	a.ApplyProcessPriorities(&s, procs)

	if got := a.priority.Applied[100]; got != models.PriorityRealtime {
		t.Errorf("OVRServer priority = %q, want Realtime", got)
	}
	if got := a.priority.Applied[200]; got != models.PriorityRealtime {
		t.Errorf("vrserver priority = %q, want Realtime", got)
	}
	if _, ok := a.priority.Applied[300]; ok {
		t.Error("OculusClient should not have been boosted")
	}
	if _, ok := a.priority.Applied[0]; ok {
		t.Error("entry without a live pid should be skipped")
	}
}

func TestApplyProcessPrioritiesDisabled(t *testing.T) {
	a := newTestApplier(t)
	s := models.DefaultVRSettings()
	s.CPUPriorityBoost = false

	a.ApplyProcessPriorities(&s, []monitor.Entry{
		{Name: "OVRServer_x64.exe", Status: monitor.StatusRunning, PID: 100},
	})

	if len(a.priority.Applied) != 0 {
		t.Errorf("priorities applied with boost disabled: %v", a.priority.Applied)
	}
}

func TestApplyAdditional(t *testing.T) {
	a := newTestApplier(t)
	s := models.DefaultVRSettings()
	s.PowerPlan = models.PlanBalanced
	s.MirrorWindow = true
	s.GuardianVisibility = false
	s.UpscalingEnabled = true

	a.ApplyAdditional(&s)

	if !a.runner.Ran("powercfg", "/s", "381b4222-f694-41f0-9685-ff5bb260df2e") {
		t.Error("powercfg was not invoked with the Balanced plan GUID")
	}
	if got := a.sink.DWord(sysconf.RemoteHeadset, "MirrorWindow"); got != 1 {
		t.Errorf("MirrorWindow = %d, want 1", got)
	}
	if got := a.sink.DWord(sysconf.RemoteHeadset, "GuardianVisibility"); got != 0 {
		t.Errorf("GuardianVisibility = %d, want 0", got)
	}

	data, err := os.ReadFile(a.ToolkitIniPath)
	if err != nil {
		t.Fatalf("toolkit ini not written: %v", err)
	}
	if string(data) != "upscaling_enabled = true" {
		t.Errorf("toolkit ini = %q, want %q", data, "upscaling_enabled = true")
	}
}

func TestOculusKillerEnable(t *testing.T) {
	a := newTestApplier(t)
	dash, bak := a.createDash(t)

	a.SetOculusKiller(true)

	if exists(dash) {
		t.Error("live dash executable still present after enable")
	}
	if !exists(bak) {
		t.Error("backup file missing after enable")
	}
	if !a.runner.Ran("sc", "stop", "OVRService") || !a.runner.Ran("sc", "start", "OVRService") {
		t.Errorf("service was not cycled: %v", a.runner.Calls)
	}
	if got, ok := a.sink.String(sysconf.OculusConfig, "CoreChannel"); !ok || got != "NO_UPDATES" {
		t.Errorf("CoreChannel = %q (written=%v), want NO_UPDATES", got, ok)
	}
}

func TestOculusKillerEnableTwiceKeepsOneBackup(t *testing.T) {
	a := newTestApplier(t)
	dash, bak := a.createDash(t)

	a.SetOculusKiller(true)

	// A freshly spawned dash reappears between the two invocations; the
	// second enable must not clobber the existing backup with it.
	if err := os.WriteFile(dash, []byte("respawned"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	a.SetOculusKiller(true)

	data, err := os.ReadFile(bak)
	if err != nil {
		t.Fatalf("backup missing after double enable: %v", err)
	}
	if string(data) != "dash" {
		t.Errorf("backup content = %q, want the original %q", data, "dash")
	}
}

func TestOculusKillerDisableRestores(t *testing.T) {
	a := newTestApplier(t)
	dash, bak := a.createDash(t)

	a.SetOculusKiller(true)
	a.SetOculusKiller(false)

	if !exists(dash) {
		t.Error("live dash executable not restored")
	}
	if exists(bak) {
		t.Error("backup still present after disable")
	}
	data, _ := os.ReadFile(dash)
	if string(data) != "dash" {
		t.Errorf("restored content = %q, want %q", data, "dash")
	}
}

func TestOculusKillerDisableWithoutBackupIsNoOp(t *testing.T) {
	a := newTestApplier(t)
	dash, bak := a.createDash(t)

	a.SetOculusKiller(false)

	if !exists(dash) {
		t.Error("live dash executable was touched")
	}
	if exists(bak) {
		t.Error("backup appeared out of nowhere")
	}
}

func TestApplyRelinkedForcesFieldsAndPersists(t *testing.T) {
	a := newTestApplier(t)
	a.createDash(t)

	s := models.DefaultVRSettings()
	s.RelinkedMode = true
	s.DisableTelemetry = false
	s.DisableLogin = false
	s.OculusKillerEnabled = false

	a.Apply(&s, nil)

	if !s.DisableTelemetry || !s.DisableLogin || !s.OculusKillerEnabled {
		t.Errorf("relinked did not force fields: telemetry=%v login=%v killer=%v",
			s.DisableTelemetry, s.DisableLogin, s.OculusKillerEnabled)
	}

	// The mutated record must be what ended up on disk.
	persisted := a.Store.Load()
	if !persisted.DisableTelemetry || !persisted.DisableLogin || !persisted.OculusKillerEnabled {
		t.Errorf("persisted record not mutated: %+v", persisted)
	}

	if got := a.sink.DWord(sysconf.OculusTelemetry, "Enabled"); got != 0 {
		t.Errorf("Telemetry Enabled = %d, want 0", got)
	}
}

func TestApplyRelinkedDisabledLeavesFieldsAlone(t *testing.T) {
	a := newTestApplier(t)
	s := models.DefaultVRSettings()
	s.RelinkedMode = false
	s.DisableTelemetry = false

	a.Apply(&s, nil)

	if s.DisableTelemetry {
		t.Error("DisableTelemetry forced on without relinked mode")
	}
	if a.sink.DWord(sysconf.OculusTelemetry, "Enabled") != -1 {
		t.Error("telemetry store written without relinked mode")
	}
}

func TestApplyPersistsSettings(t *testing.T) {
	a := newTestApplier(t)
	s := models.DefaultVRSettings()
	s.EncodeBitrateMbps = 275

	a.Apply(&s, nil)

	if got := a.Store.Load().EncodeBitrateMbps; got != 275 {
		t.Errorf("persisted EncodeBitrateMbps = %d, want 275", got)
	}
}
