package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GameraCC/gym/internal/application/port/mocks"
	"github.com/GameraCC/gym/internal/domain/entity"
	"github.com/GameraCC/gym/internal/ui/keyboard"
)

type nopHandle struct{}

func (nopHandle) Focus() {}
func (nopHandle) Blur()  {}

// newLogSetScreen registers sets -> reps -> weight on a fresh store.
func newLogSetScreen(t *testing.T) *keyboard.Registry {
	t.Helper()
	reg := keyboard.NewRegistry(keyboard.NewStore())
	noop := func(string) {}

	for _, cfg := range keyboard.Chain(
		keyboard.FieldConfig{Key: "sets", MaxLength: 2, OnChangeText: noop},
		keyboard.FieldConfig{Key: "reps", MaxLength: 3, OnChangeText: noop},
		keyboard.FieldConfig{Key: "weight", MaxLength: 6, OnChangeText: noop},
	) {
		_, err := reg.Register(cfg, nopHandle{})
		require.NoError(t, err)
	}
	return reg
}

func step(action entity.ScenarioAction, field entity.FieldKey) entity.ScenarioStep {
	return entity.ScenarioStep{Action: action, Field: field}
}

func input(token string) entity.ScenarioStep {
	return entity.ScenarioStep{Action: entity.ActionInput, Token: token}
}

func TestReplayScenarioUseCase_LogSet(t *testing.T) {
	ctx := context.Background()
	reg := newLogSetScreen(t)
	uc := NewReplayScenarioUseCase(reg, reg.Store())

	out, err := uc.Execute(ctx, entity.Scenario{
		Name: "log a set",
		Steps: []entity.ScenarioStep{
			step(entity.ActionFocus, "sets"),
			input("3"),
			step(entity.ActionContinue, ""),
			input("1"),
			input("0"),
			step(entity.ActionContinue, ""),
			input("6"),
			input("0"),
			{Action: entity.ActionIncrement, Amount: 2.5},
			step(entity.ActionContinue, ""),
		},
		Expect: []entity.FieldExpectation{
			{Field: "sets", Value: "3"},
			{Field: "reps", Value: "10"},
			{Field: "weight", Value: "62.5"},
		},
	})
	require.NoError(t, err)
	assert.True(t, out.OK(), "violations=%v mismatches=%v", out.Violations, out.Mismatches)
	require.Len(t, out.Frames, 10)

	assert.Equal(t, entity.FieldKey("reps"), out.Frames[2].Active, "continue hands off to the next field")
	assert.Equal(t, "", out.Frames[2].State.Buffer)
	assert.True(t, out.Frames[2].State.Visible)

	final := out.Final()
	assert.Equal(t, entity.FieldKey(""), final.Active)
	assert.False(t, final.State.Visible, "continue on the last field hides the keypad")
	assert.Equal(t, uint64(3), final.State.ContinueCount)
}

func TestReplayScenarioUseCase_UnmountHides(t *testing.T) {
	ctx := context.Background()
	reg := newLogSetScreen(t)
	uc := NewReplayScenarioUseCase(reg, reg.Store())

	out, err := uc.Execute(ctx, entity.Scenario{
		Steps: []entity.ScenarioStep{
			step(entity.ActionFocus, "reps"),
			input("8"),
			step(entity.ActionUnmount, ""),
		},
		Expect: []entity.FieldExpectation{{Field: "reps", Value: "8"}},
	})
	require.NoError(t, err)
	assert.Empty(t, out.Violations)
	assert.Equal(t, []string{"field reps is not registered"}, out.Mismatches)
	assert.False(t, out.Final().State.Visible)
	assert.Empty(t, reg.Keys())
}

func TestReplayScenarioUseCase_ReportsMismatch(t *testing.T) {
	ctx := context.Background()
	reg := newLogSetScreen(t)
	uc := NewReplayScenarioUseCase(reg, reg.Store())

	out, err := uc.Execute(ctx, entity.Scenario{
		Steps:  []entity.ScenarioStep{step(entity.ActionFocus, "sets"), input("4")},
		Expect: []entity.FieldExpectation{{Field: "sets", Value: "5"}},
	})
	require.NoError(t, err)
	assert.False(t, out.OK())
	assert.Equal(t, []string{`field sets = "4", want "5"`}, out.Mismatches)
}

func TestReplayScenarioUseCase_UnknownField(t *testing.T) {
	ctx := context.Background()
	reg := newLogSetScreen(t)
	uc := NewReplayScenarioUseCase(reg, reg.Store())

	out, err := uc.Execute(ctx, entity.Scenario{
		Steps: []entity.ScenarioStep{step(entity.ActionFocus, "rpe")},
	})
	require.ErrorIs(t, err, keyboard.ErrFieldNotFound)
	assert.Empty(t, out.Frames)
}

func TestReplayScenarioUseCase_InvalidStep(t *testing.T) {
	ctx := context.Background()
	reg := newLogSetScreen(t)
	uc := NewReplayScenarioUseCase(reg, reg.Store())

	_, err := uc.Execute(ctx, entity.Scenario{
		Steps: []entity.ScenarioStep{{Action: "swipe"}},
	})
	require.ErrorIs(t, err, entity.ErrInvalidScenario)
}

type stubDispatcher struct {
	state entity.KeyboardState
}

func (s *stubDispatcher) Dispatch(context.Context, entity.KeyboardEvent) {}
func (s *stubDispatcher) State() entity.KeyboardState                  { return s.state }

func TestReplayScenarioUseCase_DetectsDivergence(t *testing.T) {
	ctx := context.Background()
	fields := mocks.NewMockFieldSet(t)
	kb := &stubDispatcher{state: entity.KeyboardState{Kind: entity.KeyboardNumeric, Visible: true, Buffer: "2"}}

	fields.EXPECT().Focus(mock.Anything, entity.FieldKey("sets")).Return(nil).Once()
	fields.EXPECT().Active().Return(entity.FieldKey("sets"), true)
	fields.EXPECT().Keys().Return([]entity.FieldKey{"sets"})
	fields.EXPECT().Value(entity.FieldKey("sets")).Return("1", true)

	uc := NewReplayScenarioUseCase(fields, kb)
	out, err := uc.Execute(ctx, entity.Scenario{
		Steps: []entity.ScenarioStep{step(entity.ActionFocus, "sets")},
	})
	require.NoError(t, err)
	require.Len(t, out.Violations, 1)
	assert.Contains(t, out.Violations[0], `field sets = "1" but buffer = "2"`)
}

func TestReplayScenarioUseCase_EmptyScenario(t *testing.T) {
	reg := newLogSetScreen(t)
	uc := NewReplayScenarioUseCase(reg, reg.Store())

	out, err := uc.Execute(context.Background(), entity.Scenario{
		Expect: []entity.FieldExpectation{{Field: "sets", Value: ""}},
	})
	require.NoError(t, err)
	assert.True(t, out.OK())
	assert.Equal(t, -1, out.Final().Index)
}
