package config

const (
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultMaxSizeMB     = 5
	defaultMaxBackups    = 3
	defaultKeypadKind    = "numeric"
	defaultIncrementStep = 2.5
	defaultContinueLabel = "Continue"
	defaultScreenName    = "log-set"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			LogDir:        "", // resolved to the XDG state dir at load time
			EnableFileLog: true,
			MaxSizeMB:     defaultMaxSizeMB,
			MaxBackups:    defaultMaxBackups,
		},
		Keypad: KeypadConfig{
			Kind:          defaultKeypadKind,
			IncrementStep: defaultIncrementStep,
			ContinueLabel: defaultContinueLabel,
			DefaultScreen: defaultScreenName,
		},
		Screens: []ScreenConfig{
			{
				Name:  defaultScreenName,
				Title: "Log set",
				Fields: []map[string]any{
					{"key": "sets", "placeholder": "sets", "max_length": 2, "next": "reps"},
					{"key": "reps", "placeholder": "reps", "max_length": 3, "next": "weight"},
					{"key": "weight", "placeholder": "kg", "max_length": 6},
				},
			},
		},
	}
}
