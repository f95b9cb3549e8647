package config

import "time"

// app constants
const (
	AppName = "veil"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	DefaultConfigFile = "veil.yaml"
	DefaultEnvFile    = ".env"
	EnvPrefix         = "VEIL"

	Version = "0.3.0"

	AppDescription = "debounced busy indicator for the terminal"
)

// indicator constants
const (
	DefaultDelay            = 200 * time.Millisecond
	DefaultBlockInteraction = true
	DefaultItem             = ItemSpinner
	DefaultLabel            = "working"

	// MinDelay is the smallest delay the demo allows when stepping down
	MinDelay  = 50 * time.Millisecond
	DelayStep = 50 * time.Millisecond
)

// indicator item names
const (
	ItemSpinner = "spinner"
	ItemPulse   = "pulse"
	ItemBar     = "bar"
)

// ItemNames lists the built-in indicator items in cycling order
var ItemNames = []string{ItemSpinner, ItemPulse, ItemBar}

// telemetry constants
const (
	DefaultEnvironment = "development"
	TelemetryFlush     = 2 * time.Second
)

// concurrency constants
const (
	MaxWorkers = 3
)

// watch constants
const (
	WatchDebounce = 300 * time.Millisecond
)

// task constants
const (
	DefaultTaskPattern = "*"
	StatsInterval      = 250 * time.Millisecond
	ShutdownTimeout    = 5 * time.Second
)

// bus constants
const (
	BusBuffer = 64
)

// demo constants
const (
	ShortRequest  = 100 * time.Millisecond
	LongRequest   = 500 * time.Millisecond
	OverlapOffset = 600 * time.Millisecond
	FrameInterval = 80 * time.Millisecond
	EventHistory  = 8
)
