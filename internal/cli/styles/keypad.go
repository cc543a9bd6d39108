package styles

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Keypad key labels.
const (
	KeyLabelHide   = "hide"
	KeyLabelRemove = "⌫"
)

// KeypadView is what the keypad needs to draw itself.
type KeypadView struct {
	Step          float64
	ContinueLabel string
	// Pressed is the label of the last key pressed, drawn highlighted.
	Pressed string
}

// IncrementLabel returns the label of the increment key for step.
func IncrementLabel(step float64) string {
	return "+" + strconv.FormatFloat(step, 'f', -1, 64)
}

// DecrementLabel returns the label of the decrement key for step.
func DecrementLabel(step float64) string {
	return "-" + strconv.FormatFloat(step, 'f', -1, 64)
}

// RenderKeypad draws the numeric keypad: a 3x4 digit grid on the left and
// the hide, increment, remove and continue keys on the right.
func (t *Theme) RenderKeypad(v KeypadView) string {
	key := func(label string, style lipgloss.Style) string {
		if label != "" && label == v.Pressed {
			style = style.Reverse(true)
		}
		return style.Render(label)
	}
	digit := func(label string) string { return key(label, t.KeyCap) }
	action := func(label string) string { return key(label, t.KeyCapAction) }

	continueLabel := v.ContinueLabel
	if continueLabel == "" {
		continueLabel = "Continue"
	}
	wide := t.KeyCapContinue.Width(13)

	rows := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, digit("1"), digit("2"), digit("3"), action(KeyLabelHide)),
		lipgloss.JoinHorizontal(lipgloss.Top, digit("4"), digit("5"), digit("6"),
			action(IncrementLabel(v.Step)), action(DecrementLabel(v.Step))),
		lipgloss.JoinHorizontal(lipgloss.Top, digit("7"), digit("8"), digit("9"), action(KeyLabelRemove)),
		lipgloss.JoinHorizontal(lipgloss.Top, t.KeyCap.Background(t.Background).Render(""), digit("0"), digit("."),
			key(continueLabel, wide)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// RenderField draws one input field with its label. An empty value shows
// the placeholder.
func (t *Theme) RenderField(label, value, placeholder string, focused bool) string {
	style := t.Input
	if focused {
		style = t.InputFocused
	}

	text := value
	if text == "" {
		text = t.Subtle.Render(placeholder)
	}
	if focused {
		text += t.Highlight.Render("▏")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		t.Subtitle.Render(strings.ToUpper(label)),
		style.Width(12).Render(text),
	)
}
