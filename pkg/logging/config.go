package logging

const (
	BaseDataDir = "data"
	LogsDir     = "logs"
)

type LogLevel string

const (
	Development LogLevel = "development" // prints debug and above
	Production  LogLevel = "production"  // prints info and above
)

// ProcessName type to ensure valid process names
type ProcessName string

const (
	CliProcess          ProcessName = "cli"
	ActionServerProcess ProcessName = "actionserver"
)

type LoggerConfig struct {
	LogDir      string
	ProcessName ProcessName
	Environment LogLevel
	// ConsoleOnly skips the per-process log file; short-lived CLI
	// invocations should not litter data/logs with one file per run.
	ConsoleOnly bool
}

func NewDefaultConfig(processName ProcessName) LoggerConfig {
	return LoggerConfig{
		LogDir:      BaseDataDir,
		ProcessName: processName,
		Environment: Development,
		ConsoleOnly: processName == CliProcess,
	}
}
