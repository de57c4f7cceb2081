package config

const (
	defaultVerbosity        = "info"
	defaultStructuredFormat = "json"
	defaultStructuredPath   = "stderr"
	defaultLogLevel         = "info"
	defaultLogFormat        = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Verbosity: defaultVerbosity,
		Structured: Structured{
			Enabled: false,
			Format:  defaultStructuredFormat,
			Path:    defaultStructuredPath,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
