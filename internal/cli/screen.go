package cli

import (
	"context"
	"fmt"

	"github.com/GameraCC/gym/internal/domain/entity"
	"github.com/GameraCC/gym/internal/infrastructure/config"
	"github.com/GameraCC/gym/internal/ui/keyboard"
)

// ScreenFields decodes the field definitions of screen. Fields without a
// kind get kind. A field without an explicit next key continues to the
// field listed after it; the last one ends the interaction.
func ScreenFields(screen config.ScreenConfig, kind string) ([]keyboard.FieldConfig, error) {
	fields := make([]keyboard.FieldConfig, 0, len(screen.Fields))
	for i, raw := range screen.Fields {
		fc, err := keyboard.DecodeFieldConfig(raw)
		if err != nil {
			return nil, fmt.Errorf("screen %s: fields[%d]: %w", screen.Name, i, err)
		}
		if fc.Kind == "" {
			fc.Kind = entity.KeyboardKind(kind)
		}
		fields = append(fields, fc)
	}

	for i := range fields {
		if _, explicit := screen.Fields[i]["next"]; explicit {
			continue
		}
		if i+1 < len(fields) {
			fields[i].NextFieldKey = fields[i+1].Key
		}
	}
	return fields, nil
}

// headlessField is a field handle with no widget behind it.
type headlessField struct{}

func (headlessField) Focus() {}
func (headlessField) Blur()  {}

// NewHeadlessScreen registers fields on a fresh store without any terminal
// widgets. Field text is only observable through the registry.
func NewHeadlessScreen(ctx context.Context, fields []keyboard.FieldConfig) (*keyboard.Registry, error) {
	registry := keyboard.NewRegistry(keyboard.NewStore())
	for _, fc := range fields {
		fc.OnChangeText = func(string) {}
		if _, err := registry.Register(fc, headlessField{}); err != nil {
			registry.CloseAll(ctx)
			return nil, fmt.Errorf("register field %q: %w", fc.Key, err)
		}
	}
	return registry, nil
}
