package types

// RunMode is the deployment mode of the service
type RunMode string

const (
	// ModeLocal runs the API server with debug defaults
	ModeLocal RunMode = "local"
	// ModeAPI runs only the API server
	ModeAPI RunMode = "api"
)

// LogLevel is the logging level of the service
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)
