package config

// Config represents the complete configuration for gym.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" toml:"logging"`
	// Keypad controls the shared on-screen keypad.
	Keypad KeypadConfig `mapstructure:"keypad" toml:"keypad"`
	// Screens lists the input screens the keypad command can open.
	Screens []ScreenConfig `mapstructure:"screens" toml:"screens"`
}

// LoggingConfig controls zerolog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" toml:"format" jsonschema:"enum=console,enum=json"`

	// File output configuration
	LogDir        string `mapstructure:"log_dir" toml:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups"`
}

// KeypadConfig holds keypad behaviour shared by every screen.
type KeypadConfig struct {
	// Kind is the keyboard kind shown when a field does not set one.
	Kind string `mapstructure:"kind" toml:"kind" jsonschema:"enum=numeric"`
	// IncrementStep is the amount added or removed by the +/- keys.
	IncrementStep float64 `mapstructure:"increment_step" toml:"increment_step"`
	// ContinueLabel is the caption of the continue key.
	ContinueLabel string `mapstructure:"continue_label" toml:"continue_label"`
	// DefaultScreen is opened when no screen is named on the command line.
	DefaultScreen string `mapstructure:"default_screen" toml:"default_screen"`
}

// ScreenConfig is a named group of keypad fields.
//
// Each entry in Fields is decoded strictly by the keyboard package, so
// unknown options are reported instead of ignored.
type ScreenConfig struct {
	Name   string           `mapstructure:"name" toml:"name"`
	Title  string           `mapstructure:"title" toml:"title"`
	Fields []map[string]any `mapstructure:"fields" toml:"fields"`
}

// Screen returns the screen with the given name.
func (c *Config) Screen(name string) (ScreenConfig, bool) {
	for _, s := range c.Screens {
		if s.Name == name {
			return s, true
		}
	}
	return ScreenConfig{}, false
}
