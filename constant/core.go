package constant

import "time"

// Loop Timing
const (
	// FrameUpdateInterval is the controller tick and redraw interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// PhysicsStepInterval is the fixed physics step; late steps are capped at four intervals
	PhysicsStepInterval = 10 * time.Millisecond

	// EventChannelSize buffers terminal events between the poller and the scheduler
	EventChannelSize = 64
)

// Session Defaults
const (
	// DefaultDuration is the startup session as typed by a user
	DefaultDuration = "7.0"

	// DefaultDecimal selects the decimal-day readout at startup
	DefaultDecimal = true

	// DefaultAutoplay starts the countdown without waiting for a key
	DefaultAutoplay = false
)

// Application
const (
	AppName      = "enc-timer"
	ConfigDir    = "enc-timer"
	ConfigFile   = "config.yml"
	EnvPrefix    = "ENC_TIMER"
	LogFile      = "enc-timer.log"
	LogMaxSize   = 2 << 20 // 2 MiB before rotation
	LogMaxBackup = 3
)
