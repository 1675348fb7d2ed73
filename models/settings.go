package models

// ASWMode selects the Asynchronous Spacewarp behaviour of the Oculus runtime.
type ASWMode string

const (
	ASWOff     ASWMode = "Off"
	ASWAuto    ASWMode = "Auto"
	ASWForce45 ASWMode = "Force45FPS"
	ASWForce30 ASWMode = "Force30FPS"
)

// Code returns the integer code the Oculus debug store expects for the mode.
func (m ASWMode) Code() uint32 {
	switch m {
	case ASWOff:
		return 0
	case ASWForce45:
		return 2
	case ASWForce30:
		return 3
	default:
		return 1 // Auto
	}
}

// FoveatedLevel is the fixed-foveation aggressiveness.
type FoveatedLevel string

const (
	FoveatedOff     FoveatedLevel = "Off"
	FoveatedLow     FoveatedLevel = "Low"
	FoveatedMedium  FoveatedLevel = "Medium"
	FoveatedHigh    FoveatedLevel = "High"
	FoveatedHighTop FoveatedLevel = "HighTop"
)

// GPUPriority maps to an OS scheduling priority class for VR server processes.
type GPUPriority string

const (
	PriorityNormal   GPUPriority = "Normal"
	PriorityHigh     GPUPriority = "High"
	PriorityRealtime GPUPriority = "Realtime"
)

// UpscalingType selects the OpenXR Toolkit upscaler.
type UpscalingType string

const (
	UpscalingNIS UpscalingType = "NIS"
	UpscalingFSR UpscalingType = "FSR"
	UpscalingCAS UpscalingType = "CAS"
)

// PowerPlan is one of the stock Windows power schemes.
type PowerPlan string

const (
	PlanBalanced        PowerPlan = "Balanced"
	PlanHighPerformance PowerPlan = "HighPerformance"
	PlanPowerSaver      PowerPlan = "PowerSaver"
)

// GUID returns the Windows power scheme GUID for powercfg /s.
func (p PowerPlan) GUID() string {
	switch p {
	case PlanBalanced:
		return "381b4222-f694-41f0-9685-ff5bb260df2e"
	case PlanPowerSaver:
		return "a1841308-3541-4fab-bc81-f71556f20b4a"
	default:
		return "8c5e7fda-e8bf-4a96-9a85-a6e23a8c635c" // HighPerformance
	}
}

// RuntimeKind is the active OpenXR runtime. A single enumeration rather than
// two independent booleans, so an invalid both-or-neither selection cannot
// be represented.
type RuntimeKind string

const (
	RuntimeOculus  RuntimeKind = "Oculus"
	RuntimeSteamVR RuntimeKind = "SteamVR"
)

// VRSettings holds the user-configurable tuning state.
// It is stored in settings.json next to the executable. Every field has a
// default so a record is always fully populated; a file that fails to parse
// is replaced wholesale by DefaultVRSettings.
type VRSettings struct {
	RenderScale             float64       `json:"render_scale"`
	ActiveRuntime           RuntimeKind   `json:"active_runtime"`
	EncodeBitrateMbps       uint32        `json:"encode_bitrate_mbps"`
	EncodeResolutionWidth   uint32        `json:"encode_resolution_width"`
	EncodeResolutionHeight  uint32        `json:"encode_resolution_height"`
	LinkSharpening          float64       `json:"link_sharpening"`
	ASWEnabled              bool          `json:"asw_enabled"`
	ASWMode                 ASWMode       `json:"asw_mode"`
	FoveatedRendering       bool          `json:"foveated_rendering"`
	FoveatedLevel           FoveatedLevel `json:"foveated_level"`
	CPUPriorityBoost        bool          `json:"cpu_priority_boost"`
	GPUPriority             GPUPriority   `json:"gpu_priority"`
	PixelDensity            float64       `json:"pixel_density"`
	FOVScale                float64       `json:"fov_scale"`
	ForceCompositionLayers  bool          `json:"force_composition_layers"`
	DisableDepthSubmission  bool          `json:"disable_depth_submission"`
	TurboMode               bool          `json:"turbo_mode"`
	AutoRestartOnFreeze     bool          `json:"auto_restart_on_freeze"`
	KillOculusClient        bool          `json:"kill_oculus_client"`
	RestartThresholdSeconds uint32        `json:"restart_threshold_seconds"`
	UpscalingEnabled        bool          `json:"upscaling_enabled"`
	UpscalingType           UpscalingType `json:"upscaling_type"`
	UpscalingScale          float64       `json:"upscaling_scale"`
	SharpeningAmount        float64       `json:"sharpening_amount"`
	Contrast                float64       `json:"contrast"`
	Saturation              float64       `json:"saturation"`
	FrameThrottleFPS        uint32        `json:"frame_throttle_fps"`
	ShakeReduction          bool          `json:"shake_reduction"`
	AudioSwitching          bool          `json:"audio_switching"`
	SuperSampling           float64       `json:"super_sampling"`
	MirrorWindow            bool          `json:"mirror_window"`
	GuardianVisibility      bool          `json:"guardian_visibility"`
	CPUAffinity             uint32        `json:"cpu_affinity"`
	PowerPlan               PowerPlan     `json:"power_plan"`
	OculusKillerEnabled     bool          `json:"oculus_killer_enabled"`
	RelinkedMode            bool          `json:"relinked_mode"`
	DisableASW              bool          `json:"disable_asw"`
	EnableSteamVRAutostart  bool          `json:"enable_steamvr_autostart"`
	EnableRuntimeHighPrio   bool          `json:"enable_runtime_high_priority"`
	AllowOtherSoftware      bool          `json:"allow_other_software"`
	CustomStartupProgram    string        `json:"custom_startup_program"`
	CustomFPS               uint32        `json:"custom_fps"`
	DisableOLEDMura         bool          `json:"disable_oled_mura"`
	DebugLogging            bool          `json:"debug_logging"`
	DisableTelemetry        bool          `json:"disable_telemetry"`
	DisableLogin            bool          `json:"disable_login"`
}

// DefaultVRSettings returns the record used on first start and whenever the
// persisted file cannot be read or parsed.
func DefaultVRSettings() VRSettings {
	return VRSettings{
		RenderScale:             1.2,
		ActiveRuntime:           RuntimeOculus,
		EncodeBitrateMbps:       300,
		EncodeResolutionWidth:   2784,
		EncodeResolutionHeight:  1472,
		LinkSharpening:          0.5,
		ASWEnabled:              true,
		ASWMode:                 ASWAuto,
		FoveatedRendering:       true,
		FoveatedLevel:           FoveatedHigh,
		CPUPriorityBoost:        true,
		GPUPriority:             PriorityHigh,
		PixelDensity:            1.0,
		FOVScale:                1.0,
		AutoRestartOnFreeze:     true,
		RestartThresholdSeconds: 10,
		UpscalingType:           UpscalingFSR,
		UpscalingScale:          1.0,
		SharpeningAmount:        0.5,
		Contrast:                1.0,
		Saturation:              1.0,
		FrameThrottleFPS:        90,
		AudioSwitching:          true,
		SuperSampling:           1.0,
		GuardianVisibility:      true,
		PowerPlan:               PlanHighPerformance,
		EnableSteamVRAutostart:  true,
		EnableRuntimeHighPrio:   true,
		AllowOtherSoftware:      true,
		CustomFPS:               120,
	}
}
