package entity

import "fmt"

// KeyboardEvent is a named transition applied to KeyboardState by Reduce.
type KeyboardEvent interface {
	// Name identifies the event in logs and scenario files.
	Name() string
	apply(s KeyboardState) KeyboardState
}

// ShowEvent requests the keypad of the given kind.
type ShowEvent struct{ Kind KeyboardKind }

// HideEvent hides the keypad and clears the buffer.
type HideEvent struct{}

// InputEvent appends a keypad token.
type InputEvent struct{ Token string }

// RemoveInputEvent removes the last character.
type RemoveInputEvent struct{}

// ResetInputEvent clears the buffer without hiding.
type ResetInputEvent struct{}

// SeedInputEvent sets the buffer directly from a newly subscribed field.
type SeedInputEvent struct {
	Value     string
	MaxLength int
}

// IncrementEvent adds Amount (negative to decrement) to the numeric buffer.
type IncrementEvent struct{ Amount float64 }

// ContinueEvent bumps the continue counter.
type ContinueEvent struct{}

func (ShowEvent) Name() string        { return "show" }
func (HideEvent) Name() string        { return "hide" }
func (InputEvent) Name() string       { return "input" }
func (RemoveInputEvent) Name() string { return "remove" }
func (ResetInputEvent) Name() string  { return "reset" }
func (SeedInputEvent) Name() string   { return "seed" }
func (IncrementEvent) Name() string   { return "increment" }
func (ContinueEvent) Name() string    { return "continue" }

func (e ShowEvent) apply(s KeyboardState) KeyboardState      { return s.Show(e.Kind) }
func (HideEvent) apply(s KeyboardState) KeyboardState        { return s.Hide() }
func (e InputEvent) apply(s KeyboardState) KeyboardState     { return s.AppendInput(e.Token) }
func (RemoveInputEvent) apply(s KeyboardState) KeyboardState { return s.RemoveLastInput() }
func (ResetInputEvent) apply(s KeyboardState) KeyboardState  { return s.ResetInput() }
func (e SeedInputEvent) apply(s KeyboardState) KeyboardState { return s.SeedInput(e.Value, e.MaxLength) }
func (e IncrementEvent) apply(s KeyboardState) KeyboardState { return s.Increment(e.Amount) }
func (ContinueEvent) apply(s KeyboardState) KeyboardState    { return s.Continue() }

// String implementations keep log lines readable.
func (e ShowEvent) String() string      { return fmt.Sprintf("show(%s)", e.Kind) }
func (e InputEvent) String() string     { return fmt.Sprintf("input(%q)", e.Token) }
func (e SeedInputEvent) String() string { return fmt.Sprintf("seed(%q)", e.Value) }
func (e IncrementEvent) String() string { return fmt.Sprintf("increment(%s)", FormatNumber(e.Amount)) }

// Reduce applies ev to s. A nil event leaves the state unchanged.
func Reduce(s KeyboardState, ev KeyboardEvent) KeyboardState {
	if ev == nil {
		return s
	}
	return ev.apply(s)
}
