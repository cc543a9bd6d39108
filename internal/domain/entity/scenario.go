package entity

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidScenario is returned when a scenario step cannot be replayed.
var ErrInvalidScenario = errors.New("invalid scenario")

// ScenarioAction names one user interaction in a replayed scenario.
type ScenarioAction string

const (
	ActionFocus     ScenarioAction = "focus"
	ActionBlur      ScenarioAction = "blur"
	ActionInput     ScenarioAction = "input"
	ActionRemove    ScenarioAction = "remove"
	ActionIncrement ScenarioAction = "increment"
	ActionContinue  ScenarioAction = "continue"
	ActionHide      ScenarioAction = "hide"
	ActionUnmount   ScenarioAction = "unmount"
)

// ScenarioStep is one interaction. Field is required for focus and blur;
// for unmount an empty Field tears down the whole screen.
type ScenarioStep struct {
	Action ScenarioAction
	Field  FieldKey
	Token  string
	Amount float64
}

// Validate checks that the step carries what its action needs.
func (s ScenarioStep) Validate() error {
	switch s.Action {
	case ActionFocus, ActionBlur:
		if s.Field == "" {
			return fmt.Errorf("%w: %s needs a field", ErrInvalidScenario, s.Action)
		}
	case ActionInput:
		if s.Token == "" {
			return fmt.Errorf("%w: input needs a token", ErrInvalidScenario)
		}
	case ActionIncrement:
		if s.Amount == 0 || math.IsNaN(s.Amount) || math.IsInf(s.Amount, 0) {
			return fmt.Errorf("%w: increment needs a finite non-zero amount", ErrInvalidScenario)
		}
	case ActionRemove, ActionContinue, ActionHide, ActionUnmount:
	default:
		return fmt.Errorf("%w: unknown action %q", ErrInvalidScenario, s.Action)
	}
	return nil
}

// Event returns the keyboard event a keypad step dispatches. Steps that act
// on fields rather than the keypad return nil.
func (s ScenarioStep) Event() KeyboardEvent {
	switch s.Action {
	case ActionInput:
		return InputEvent{Token: s.Token}
	case ActionRemove:
		return RemoveInputEvent{}
	case ActionIncrement:
		return IncrementEvent{Amount: s.Amount}
	case ActionContinue:
		return ContinueEvent{}
	case ActionHide:
		return HideEvent{}
	default:
		return nil
	}
}

// FieldExpectation is the value a field should hold after a scenario.
type FieldExpectation struct {
	Field FieldKey
	Value string
}

// Scenario is a scripted sequence of interactions against one screen.
type Scenario struct {
	Name   string
	Screen string
	Steps  []ScenarioStep
	Expect []FieldExpectation
}
