package keyboard

import (
	"errors"
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/GameraCC/gym/internal/domain/entity"
)

var (
	// ErrInvalidFieldConfig is returned for field configs that cannot build an adapter.
	ErrInvalidFieldConfig = errors.New("invalid field config")
	// ErrDuplicateField is returned when a key is registered twice.
	ErrDuplicateField = errors.New("field already registered")
	// ErrFieldNotFound is returned when a key has no registered field.
	ErrFieldNotFound = errors.New("field not found")
)

// FieldConfig enumerates every option a field adapter recognizes.
type FieldConfig struct {
	Key          entity.FieldKey     `mapstructure:"key"`
	Kind         entity.KeyboardKind `mapstructure:"kind"`
	Value        string              `mapstructure:"value"`
	OnChangeText func(string)        `mapstructure:"-"`
	NextFieldKey entity.FieldKey     `mapstructure:"next"`
	Placeholder  string              `mapstructure:"placeholder"`
	MaxLength    int                 `mapstructure:"max_length"`
}

// Validate checks the config and normalizes an empty kind to numeric.
func (c *FieldConfig) Validate() error {
	if c.Key == "" {
		return fmt.Errorf("%w: key is required", ErrInvalidFieldConfig)
	}
	kind, err := entity.ParseKeyboardKind(string(c.Kind))
	if err != nil {
		return fmt.Errorf("%w: field %s: %w", ErrInvalidFieldConfig, c.Key, err)
	}
	c.Kind = kind
	if c.MaxLength < 0 {
		return fmt.Errorf("%w: field %s: max_length must be non-negative", ErrInvalidFieldConfig, c.Key)
	}
	if c.NextFieldKey == c.Key {
		return fmt.Errorf("%w: field %s: next must name another field", ErrInvalidFieldConfig, c.Key)
	}
	if c.OnChangeText == nil {
		return fmt.Errorf("%w: field %s: OnChangeText is required", ErrInvalidFieldConfig, c.Key)
	}
	return nil
}

// DecodeFieldConfig builds a FieldConfig from a loosely typed field
// definition, such as a screen entry in the config file. Unrecognized
// options are an error rather than being forwarded. OnChangeText is left nil
// for the caller to set.
func DecodeFieldConfig(raw map[string]any) (FieldConfig, error) {
	var cfg FieldConfig
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return FieldConfig{}, fmt.Errorf("create field decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return FieldConfig{}, fmt.Errorf("%w: %w", ErrInvalidFieldConfig, err)
	}
	return cfg, nil
}

// Chain links configs in order so each continues to the next and the last
// one ends the interaction.
func Chain(cfgs ...FieldConfig) []FieldConfig {
	out := make([]FieldConfig, len(cfgs))
	copy(out, cfgs)
	for i := range out {
		if i+1 < len(out) {
			out[i].NextFieldKey = out[i+1].Key
		} else {
			out[i].NextFieldKey = ""
		}
	}
	return out
}
