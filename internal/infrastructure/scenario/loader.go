// Package scenario reads scripted keypad sessions from TOML, YAML or JSON files.
package scenario

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/GameraCC/gym/internal/domain/entity"
)

// file mirrors the on-disk layout. Expectations are a list rather than a
// table because viper lowercases map keys and field keys are case-sensitive.
type file struct {
	Name   string       `mapstructure:"name"`
	Screen string       `mapstructure:"screen"`
	Steps  []stepFile   `mapstructure:"steps"`
	Expect []expectFile `mapstructure:"expect"`
}

type stepFile struct {
	Action string  `mapstructure:"action"`
	Field  string  `mapstructure:"field"`
	Token  string  `mapstructure:"token"`
	Amount float64 `mapstructure:"amount"`
}

type expectFile struct {
	Field string `mapstructure:"field"`
	Value string `mapstructure:"value"`
}

// Load reads and validates the scenario at path. The format follows the
// file extension.
func Load(path string) (*entity.Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}

	var raw file
	if err := v.UnmarshalExact(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}

	scenario := &entity.Scenario{
		Name:   raw.Name,
		Screen: raw.Screen,
		Steps:  make([]entity.ScenarioStep, 0, len(raw.Steps)),
		Expect: make([]entity.FieldExpectation, 0, len(raw.Expect)),
	}

	for i, s := range raw.Steps {
		step := entity.ScenarioStep{
			Action: entity.ScenarioAction(strings.ToLower(strings.TrimSpace(s.Action))),
			Field:  entity.FieldKey(s.Field),
			Token:  s.Token,
			Amount: s.Amount,
		}
		if err := step.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %s: steps[%d]: %w", path, i, err)
		}
		scenario.Steps = append(scenario.Steps, step)
	}

	for i, e := range raw.Expect {
		if e.Field == "" {
			return nil, fmt.Errorf("scenario %s: expect[%d]: %w: field is required", path, i, entity.ErrInvalidScenario)
		}
		scenario.Expect = append(scenario.Expect, entity.FieldExpectation{
			Field: entity.FieldKey(e.Field),
			Value: e.Value,
		})
	}

	if scenario.Name == "" {
		scenario.Name = path
	}
	return scenario, nil
}
