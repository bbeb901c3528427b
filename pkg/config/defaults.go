package config

// Input defaults.
const (
	DefaultInputDir     = "data"
	DefaultInputExample = false
)

// Ring defaults, matching the puzzle dial.
const (
	DefaultRingSize  = 100
	DefaultRingStart = 50
)

// Output defaults.
const (
	DefaultOutputFormat  = "text"
	DefaultOutputNoColor = false
)

// Logging defaults.
const (
	DefaultLogLevel = "info"
	DefaultLogJSON  = false
)

// Telemetry defaults.
const (
	DefaultOTLPEndpoint    = ""
	DefaultOTLPInsecure    = false
	DefaultMetricsTextfile = ""
)
