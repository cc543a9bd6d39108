// Package config loads, validates and watches the gym configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	path      string // explicit config file; empty means XDG lookup
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager that looks up config.toml in the
// XDG config directory, then the current directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}

	v := viper.New()
	v.SetConfigName("config") // Name without extension
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	return newManager(v, "")
}

// NewManagerForFile creates a configuration manager bound to one file.
func NewManagerForFile(path string) (*Manager, error) {
	if path == "" {
		return nil, fmt.Errorf("config file path is empty")
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	return newManager(v, path)
}

func newManager(v *viper.Viper, path string) (*Manager, error) {
	// Environment variables use the GYM_ prefix (e.g. GYM_KEYPAD_INCREMENT_STEP).
	v.SetEnvPrefix("GYM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "GYM_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind GYM_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "GYM_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind GYM_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		path:      path,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables. A
// missing file is created with the defaults first.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.path == "" {
		if err := EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to ensure directories: %w", err)
		}
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	path, createErr := m.createDefaultConfig()
	if createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			path,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

// decode unmarshals, normalizes and validates the current viper state.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if config.Logging.LogDir == "" {
		logDir, err := GetLogDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get log directory: %w", err)
		}
		config.Logging.LogDir = logDir
	}

	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// normalizeConfig folds accepted spellings into their canonical form.
func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch config.Logging.Level {
	case "warning":
		config.Logging.Level = "warn"
	case "off":
		config.Logging.Level = "disabled"
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	config.Keypad.Kind = strings.ToLower(strings.TrimSpace(config.Keypad.Kind))
	if config.Keypad.Kind == "" {
		config.Keypad.Kind = defaultKeypadKind
	}
	if config.Keypad.ContinueLabel == "" {
		config.Keypad.ContinueLabel = defaultContinueLabel
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	config := *m.config
	return &config
}

// ConfigFile returns the path of the file the configuration was read from.
func (m *Manager) ConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults to the configured path, or to the
// XDG config file when the manager searches paths.
func (m *Manager) createDefaultConfig() (string, error) {
	path := m.path
	if path == "" {
		var err error
		path, err = GetConfigFile()
		if err != nil {
			return "", err
		}
	}

	if err := WriteConfig(DefaultConfig(), path); err != nil {
		return path, err
	}
	if m.path == "" {
		m.viper.SetConfigFile(path)
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", path)
	return path, nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setLoggingDefaults(defaults)
	m.setKeypadDefaults(defaults)
	m.viper.SetDefault("screens", defaults.Screens)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

func (m *Manager) setKeypadDefaults(defaults *Config) {
	m.viper.SetDefault("keypad.kind", defaults.Keypad.Kind)
	m.viper.SetDefault("keypad.increment_step", defaults.Keypad.IncrementStep)
	m.viper.SetDefault("keypad.continue_label", defaults.Keypad.ContinueLabel)
	m.viper.SetDefault("keypad.default_screen", defaults.Keypad.DefaultScreen)
}
