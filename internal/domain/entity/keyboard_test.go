package entity

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyboardKind(t *testing.T) {
	kind, err := ParseKeyboardKind("")
	require.NoError(t, err)
	assert.Equal(t, KeyboardNumeric, kind)

	kind, err = ParseKeyboardKind(" Numeric ")
	require.NoError(t, err)
	assert.Equal(t, KeyboardNumeric, kind)

	_, err = ParseKeyboardKind("qwerty")
	require.ErrorIs(t, err, ErrUnknownKeyboardKind)
}

func TestKeyboardState_AppendInputConcatenates(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tokens := []string{"0", "1", "2", "9", ".", "00", "12.5"}

	for run := 0; run < 50; run++ {
		s := NewKeyboardState()
		var want strings.Builder
		for i := 0; i < rng.Intn(20); i++ {
			tok := tokens[rng.Intn(len(tokens))]
			s = s.AppendInput(tok)
			want.WriteString(tok)
		}
		assert.Equal(t, want.String(), s.Buffer)
	}
}

func TestKeyboardState_AppendInputRespectsMaxLength(t *testing.T) {
	s := NewKeyboardState().SeedInput("12", 3)
	s = s.AppendInput("3")
	assert.Equal(t, "123", s.Buffer)
	s = s.AppendInput("4")
	assert.Equal(t, "123", s.Buffer, "input beyond max length is dropped")
}

func TestKeyboardState_RemoveLastInput(t *testing.T) {
	s := NewKeyboardState()
	s = s.RemoveLastInput()
	assert.Equal(t, "", s.Buffer)

	s = s.AppendInput("1").AppendInput(".").AppendInput("5")
	s = s.RemoveLastInput()
	assert.Equal(t, "1.", s.Buffer)
	s = s.RemoveLastInput().RemoveLastInput().RemoveLastInput()
	assert.Equal(t, "", s.Buffer)
}

func TestKeyboardState_Increment(t *testing.T) {
	tests := []struct {
		name   string
		buffer string
		amount float64
		want   string
	}{
		{"empty buffer counts as zero", "", 2.5, "2.5"},
		{"integer", "5", 2.5, "7.5"},
		{"decrement to floor", "1", -2.5, "0"},
		{"already at floor", "0", -2.5, "0"},
		{"non numeric", "abc", -1, "0"},
		{"non numeric increment", "abc", 5, "5"},
		{"numeric prefix", "12abc", 1, "13"},
		{"trailing dot", "3.", 1, "4"},
		{"leading dot", ".5", 0.5, "1"},
		{"lone dot", ".", 1, "1"},
		{"negative buffer", "-4", 1, "0"},
		{"exponent", "1e2", 1, "101"},
		{"whitespace", "  7", 1, "8"},
		{"overflow", "1e999", 1, "1"},
		{"decimal sum", "0.1", 0.2, "0.30000000000000004"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewKeyboardState().SeedInput(tt.buffer, 0).Increment(tt.amount)
			assert.Equal(t, tt.want, s.Buffer)
		})
	}
}

func TestKeyboardState_IncrementNeverNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := "0123456789.-+eE ax"

	for i := 0; i < 500; i++ {
		var b strings.Builder
		for j := 0; j < rng.Intn(8); j++ {
			b.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		amount := (rng.Float64() - 0.5) * 20
		s := NewKeyboardState().SeedInput(b.String(), 0).Increment(amount)

		assert.GreaterOrEqual(t, ParseLeadingFloat(s.Buffer), 0.0, "buffer %q from %q", s.Buffer, b.String())
		assert.False(t, strings.HasPrefix(s.Buffer, "-"), "buffer %q from %q", s.Buffer, b.String())
	}
}

func TestKeyboardState_DecrementTwiceFloorsAtZero(t *testing.T) {
	s := NewKeyboardState().AppendInput("5")
	s = s.Increment(-2.5).Increment(-2.5)
	assert.Equal(t, "0", s.Buffer)
	s = s.Increment(-2.5)
	assert.Equal(t, "0", s.Buffer)
}

func TestKeyboardState_ShowHide(t *testing.T) {
	s := NewKeyboardState()
	assert.False(t, s.Visible)

	shown := s.Show(KeyboardNumeric)
	assert.True(t, shown.Visible)
	assert.Equal(t, shown, shown.Show(KeyboardNumeric), "show is idempotent")

	shown = shown.AppendInput("42")
	hidden := shown.Hide()
	assert.False(t, hidden.Visible)
	assert.Equal(t, "", hidden.Buffer)
	assert.Equal(t, KeyboardNumeric, hidden.Kind)
}

func TestKeyboardState_ContinueOnlyBumpsCounter(t *testing.T) {
	s := NewKeyboardState().Show(KeyboardNumeric).AppendInput("9")
	next := s.Continue()

	assert.Equal(t, uint64(1), next.ContinueCount)
	assert.True(t, next.Visible)
	assert.Equal(t, "9", next.Buffer)
}

func TestKeyboardState_ResetInputKeepsVisibility(t *testing.T) {
	s := NewKeyboardState().Show(KeyboardNumeric).AppendInput("9").ResetInput()
	assert.True(t, s.Visible)
	assert.Equal(t, "", s.Buffer)
}

func TestReduce(t *testing.T) {
	s := NewKeyboardState()
	events := []KeyboardEvent{
		ShowEvent{Kind: KeyboardNumeric},
		SeedInputEvent{Value: "1"},
		InputEvent{Token: "0"},
		IncrementEvent{Amount: 2.5},
		RemoveInputEvent{},
		ContinueEvent{},
	}
	for _, ev := range events {
		s = Reduce(s, ev)
	}

	assert.True(t, s.Visible)
	assert.Equal(t, "12.", s.Buffer)
	assert.Equal(t, uint64(1), s.ContinueCount)

	assert.Equal(t, s, Reduce(s, nil))
	assert.Equal(t, "", Reduce(s, ResetInputEvent{}).Buffer)
	assert.False(t, Reduce(s, HideEvent{}).Visible)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "2.5", FormatNumber(2.5))
	assert.Equal(t, "100", FormatNumber(100))
}
