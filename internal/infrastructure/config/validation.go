package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/GameraCC/gym/internal/domain/entity"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateKeypad(config)...)
	validationErrors = append(validationErrors, validateScreens(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, disabled (got %q)", config.Logging.Level))
	}

	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}

	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}

func validateKeypad(config *Config) []string {
	var validationErrors []string

	if _, err := entity.ParseKeyboardKind(config.Keypad.Kind); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("keypad.kind: %v", err))
	}

	step := config.Keypad.IncrementStep
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		validationErrors = append(validationErrors, "keypad.increment_step must be a positive number")
	}

	if config.Keypad.DefaultScreen != "" {
		if _, ok := config.Screen(config.Keypad.DefaultScreen); !ok {
			validationErrors = append(validationErrors,
				fmt.Sprintf("keypad.default_screen %q does not match any screen", config.Keypad.DefaultScreen))
		}
	}
	return validationErrors
}

// validateScreens checks screen names, field keys and next targets. Other
// field options are decoded strictly when the screen is opened.
func validateScreens(config *Config) []string {
	var validationErrors []string
	names := make(map[string]bool, len(config.Screens))

	for i, screen := range config.Screens {
		if screen.Name == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("screens[%d].name is required", i))
		} else if names[screen.Name] {
			validationErrors = append(validationErrors, fmt.Sprintf("screens[%d].name %q is duplicated", i, screen.Name))
		}
		names[screen.Name] = true

		if len(screen.Fields) == 0 {
			validationErrors = append(validationErrors, fmt.Sprintf("screens[%d] must define at least one field", i))
		}

		keys := make(map[string]bool, len(screen.Fields))
		for j, field := range screen.Fields {
			key, _ := field["key"].(string)
			if key == "" {
				validationErrors = append(validationErrors, fmt.Sprintf("screens[%d].fields[%d].key is required", i, j))
				continue
			}
			if keys[key] {
				validationErrors = append(validationErrors,
					fmt.Sprintf("screens[%d].fields[%d].key %q is duplicated", i, j, key))
			}
			keys[key] = true
		}

		for j, field := range screen.Fields {
			next, _ := field["next"].(string)
			if next != "" && !keys[next] {
				validationErrors = append(validationErrors,
					fmt.Sprintf("screens[%d].fields[%d].next %q does not match any field", i, j, next))
			}
		}
	}
	return validationErrors
}
