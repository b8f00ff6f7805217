package types

// LogLevel controls logger verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// DeploymentMode identifies how the binary is being run.
type DeploymentMode string

const (
	ModeServer DeploymentMode = "server"
	ModeLocal  DeploymentMode = "local"
)
