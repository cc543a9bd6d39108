package model

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GameraCC/gym/internal/cli/styles"
	"github.com/GameraCC/gym/internal/domain/entity"
	"github.com/GameraCC/gym/internal/ui/keyboard"
)

func newTestKeypad(t *testing.T) KeypadModel {
	t.Helper()
	m, err := NewKeypadModel(context.Background(), styles.NewTheme(), KeypadModelConfig{
		Title: "Log set",
		Fields: keyboard.Chain(
			keyboard.FieldConfig{Key: "sets", Placeholder: "sets", MaxLength: 2},
			keyboard.FieldConfig{Key: "reps", Placeholder: "reps", MaxLength: 3},
			keyboard.FieldConfig{Key: "weight", Placeholder: "kg", MaxLength: 6},
		),
		IncrementStep: 2.5,
		ContinueLabel: "Continue",
	})
	require.NoError(t, err)
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m KeypadModel, msgs ...tea.Msg) KeypadModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(KeypadModel)
		require.True(t, ok)
	}
	return m
}

func valuesOf(m KeypadModel) map[entity.FieldKey]string {
	out := make(map[entity.FieldKey]string)
	for _, v := range m.Values() {
		out[v.Key] = v.Value
	}
	return out
}

func focusedField(m KeypadModel) entity.FieldKey {
	for _, f := range m.fields {
		if f.focused {
			return f.key
		}
	}
	return ""
}

func TestKeypadModel_InitFocusesFirstField(t *testing.T) {
	m := newTestKeypad(t)

	cmd := m.Init()
	require.NotNil(t, cmd)
	m = send(t, m, cmd())

	assert.Equal(t, entity.FieldKey("sets"), focusedField(m))
	assert.True(t, m.Store().State().Visible)
}

func TestKeypadModel_LogSet(t *testing.T) {
	m := newTestKeypad(t)
	m = send(t, m, m.Init()())

	m = send(t, m, runes("3"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, entity.FieldKey("reps"), focusedField(m), "continue moves to the next field")

	m = send(t, m, runes("1"), runes("2"), tea.KeyMsg{Type: tea.KeyBackspace}, runes("0"),
		tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, entity.FieldKey("weight"), focusedField(m))

	m = send(t, m, runes("6"), runes("0"), runes("+"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, map[entity.FieldKey]string{"sets": "3", "reps": "10", "weight": "62.5"}, valuesOf(m))
	assert.Equal(t, entity.FieldKey(""), focusedField(m))
	assert.False(t, m.Store().State().Visible, "continue on the last field hides the keypad")
}

func TestKeypadModel_DecrementFloorsAtZero(t *testing.T) {
	m := newTestKeypad(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, entity.FieldKey("weight"), focusedField(m))

	m = send(t, m, runes("+"))
	assert.Equal(t, "2.5", valuesOf(m)["weight"])

	m = send(t, m, runes("-"), runes("-"))
	assert.Equal(t, "0", valuesOf(m)["weight"])
}

func TestKeypadModel_HideBlursAndIgnoresKeys(t *testing.T) {
	m := newTestKeypad(t)
	m = send(t, m, m.Init()(), runes("4"), tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, entity.FieldKey(""), focusedField(m))
	assert.False(t, m.Store().State().Visible)

	m = send(t, m, runes("7"))
	assert.Equal(t, "4", valuesOf(m)["sets"], "keypad keys do nothing while hidden")
	assert.Contains(t, m.View(), "Select a field")
}

func TestKeypadModel_TabCyclesFields(t *testing.T) {
	m := newTestKeypad(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, entity.FieldKey("sets"), focusedField(m))

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, entity.FieldKey("weight"), focusedField(m), "previous wraps around")

	m = send(t, m, runes("5"), tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, entity.FieldKey("sets"), focusedField(m))
	assert.Equal(t, "5", valuesOf(m)["weight"])
	assert.Equal(t, "", m.Store().State().Buffer, "the newly focused field seeds the buffer")
}

func TestKeypadModel_IncrementStepMsg(t *testing.T) {
	m := newTestKeypad(t)
	m = send(t, m, m.Init()(), IncrementStepMsg{Step: 5}, runes("+"))

	assert.InDelta(t, 5.0, m.Step(), 0)
	assert.Equal(t, "5", valuesOf(m)["sets"])

	m = send(t, m, IncrementStepMsg{Step: -1})
	assert.InDelta(t, 5.0, m.Step(), 0, "non-positive steps are ignored")
}

func TestKeypadModel_QuitTearsDown(t *testing.T) {
	m := newTestKeypad(t)
	m = send(t, m, m.Init()())

	next, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m = next.(KeypadModel)
	assert.False(t, m.Store().State().Visible)
	assert.Empty(t, m.View())
}

func TestKeypadModel_View(t *testing.T) {
	m := newTestKeypad(t)
	view := m.View()
	assert.Contains(t, view, "Log set")
	assert.Contains(t, view, "kg")

	m = send(t, m, m.Init()())
	view = m.View()
	assert.Contains(t, view, "+2.5")
	assert.Contains(t, view, "Continue")
}

func TestNewKeypadModel_RejectsDuplicateFields(t *testing.T) {
	_, err := NewKeypadModel(context.Background(), styles.NewTheme(), KeypadModelConfig{
		Fields: []keyboard.FieldConfig{{Key: "sets"}, {Key: "sets"}},
	})
	require.ErrorIs(t, err, keyboard.ErrDuplicateField)
}
