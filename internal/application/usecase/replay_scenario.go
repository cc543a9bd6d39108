// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"fmt"

	"github.com/GameraCC/gym/internal/application/port"
	"github.com/GameraCC/gym/internal/domain/entity"
	"github.com/GameraCC/gym/internal/logging"
)

// ReplayScenarioUseCase drives a screen of fields through a scripted
// sequence of focus changes and keypad presses, checking after every step
// that the keypad and the subscribed field agree.
type ReplayScenarioUseCase struct {
	fields   port.FieldSet
	keyboard port.KeyboardDispatcher
}

// NewReplayScenarioUseCase creates a new scenario replay use case.
func NewReplayScenarioUseCase(fields port.FieldSet, keyboard port.KeyboardDispatcher) *ReplayScenarioUseCase {
	return &ReplayScenarioUseCase{
		fields:   fields,
		keyboard: keyboard,
	}
}

// ReplayFrame is the observable state after one step.
type ReplayFrame struct {
	Index  int
	Step   entity.ScenarioStep
	State  entity.KeyboardState
	Active entity.FieldKey // empty when no field is subscribed
	Values map[entity.FieldKey]string
}

// ReplayOutput contains every frame plus any broken guarantees.
type ReplayOutput struct {
	Frames []ReplayFrame
	// Violations lists steps after which the keypad and fields disagreed.
	Violations []string
	// Mismatches lists expectations the final field values did not meet.
	Mismatches []string
}

// OK reports whether the replay finished with no violations or mismatches.
func (o *ReplayOutput) OK() bool {
	return len(o.Violations) == 0 && len(o.Mismatches) == 0
}

// Final returns the last frame, or the zero frame for an empty scenario.
func (o *ReplayOutput) Final() ReplayFrame {
	if len(o.Frames) == 0 {
		return ReplayFrame{Index: -1}
	}
	return o.Frames[len(o.Frames)-1]
}

// Execute replays scenario. A step that cannot be applied, such as focusing
// an unknown field, stops the replay with an error.
func (uc *ReplayScenarioUseCase) Execute(ctx context.Context, scenario entity.Scenario) (*ReplayOutput, error) {
	log := logging.FromContext(ctx)
	out := &ReplayOutput{Frames: make([]ReplayFrame, 0, len(scenario.Steps))}

	for i, step := range scenario.Steps {
		if err := step.Validate(); err != nil {
			return out, fmt.Errorf("step %d: %w", i, err)
		}
		if err := uc.apply(ctx, step); err != nil {
			return out, fmt.Errorf("step %d (%s): %w", i, step.Action, err)
		}

		frame := uc.snapshot(i, step)
		out.Frames = append(out.Frames, frame)
		out.Violations = append(out.Violations, checkFrame(frame)...)

		log.Debug().
			Int("step", i).
			Str("action", string(step.Action)).
			Str("active", string(frame.Active)).
			Str("buffer", frame.State.Buffer).
			Bool("visible", frame.State.Visible).
			Msg("scenario step applied")
	}

	final := out.Final()
	if final.Values == nil {
		final = uc.snapshot(-1, entity.ScenarioStep{})
	}
	for _, want := range scenario.Expect {
		got, ok := final.Values[want.Field]
		switch {
		case !ok:
			out.Mismatches = append(out.Mismatches, fmt.Sprintf("field %s is not registered", want.Field))
		case got != want.Value:
			out.Mismatches = append(out.Mismatches, fmt.Sprintf("field %s = %q, want %q", want.Field, got, want.Value))
		}
	}

	log.Info().
		Str("scenario", scenario.Name).
		Int("steps", len(out.Frames)).
		Int("violations", len(out.Violations)).
		Int("mismatches", len(out.Mismatches)).
		Msg("scenario replayed")

	return out, nil
}

func (uc *ReplayScenarioUseCase) apply(ctx context.Context, step entity.ScenarioStep) error {
	switch step.Action {
	case entity.ActionFocus:
		return uc.fields.Focus(ctx, step.Field)
	case entity.ActionBlur:
		return uc.fields.Blur(ctx, step.Field)
	case entity.ActionUnmount:
		if step.Field == "" {
			uc.fields.CloseAll(ctx)
		} else {
			uc.fields.Unregister(ctx, step.Field)
		}
		return nil
	default:
		uc.keyboard.Dispatch(ctx, step.Event())
		return nil
	}
}

func (uc *ReplayScenarioUseCase) snapshot(index int, step entity.ScenarioStep) ReplayFrame {
	frame := ReplayFrame{
		Index:  index,
		Step:   step,
		State:  uc.keyboard.State(),
		Values: make(map[entity.FieldKey]string),
	}
	if active, ok := uc.fields.Active(); ok {
		frame.Active = active
	}
	for _, key := range uc.fields.Keys() {
		if v, ok := uc.fields.Value(key); ok {
			frame.Values[key] = v
		}
	}
	return frame
}

// checkFrame reports disagreements between the keypad and the fields.
func checkFrame(f ReplayFrame) []string {
	var violations []string
	prefix := fmt.Sprintf("step %d (%s)", f.Index, f.Step.Action)

	if f.Active == "" {
		if f.State.Buffer != "" {
			violations = append(violations,
				fmt.Sprintf("%s: buffer %q with no subscribed field", prefix, f.State.Buffer))
		}
		return violations
	}

	if !f.State.Visible {
		violations = append(violations,
			fmt.Sprintf("%s: field %s subscribed while keypad hidden", prefix, f.Active))
	}
	if v, ok := f.Values[f.Active]; ok && v != f.State.Buffer {
		violations = append(violations,
			fmt.Sprintf("%s: field %s = %q but buffer = %q", prefix, f.Active, v, f.State.Buffer))
	}
	return violations
}
