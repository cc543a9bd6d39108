// Package entity contains domain entities representing core business concepts.
package entity

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// KeyboardKind selects which on-screen keypad is rendered.
type KeyboardKind string

const (
	// KeyboardNumeric is the digits/decimal keypad with increment controls.
	KeyboardNumeric KeyboardKind = "numeric"
)

// ErrUnknownKeyboardKind is returned when a kind string names no keypad.
var ErrUnknownKeyboardKind = errors.New("unknown keyboard kind")

// ParseKeyboardKind validates a keypad kind. An empty string means numeric.
func ParseKeyboardKind(s string) (KeyboardKind, error) {
	switch KeyboardKind(strings.ToLower(strings.TrimSpace(s))) {
	case "", KeyboardNumeric:
		return KeyboardNumeric, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKeyboardKind, s)
	}
}

// FieldKey identifies a text field within a registry.
type FieldKey string

// KeyboardState is the shared keypad snapshot. It is a value type: every
// transition returns a new copy and never mutates the receiver.
type KeyboardState struct {
	Kind    KeyboardKind
	Visible bool
	// Buffer is the raw text routed to the subscribed field.
	Buffer string
	// ContinueCount only ever grows. Subscribers compare it, they never read meaning into it.
	ContinueCount uint64
	// MaxLength caps Buffer in runes for the current subscriber. 0 means unlimited.
	MaxLength int
}

// NewKeyboardState returns the initial hidden numeric keypad state.
func NewKeyboardState() KeyboardState {
	return KeyboardState{Kind: KeyboardNumeric}
}

// Show makes the keypad visible with the given kind.
func (s KeyboardState) Show(kind KeyboardKind) KeyboardState {
	s.Visible = true
	s.Kind = kind
	return s
}

// Hide hides the keypad and clears the buffer. The kind is remembered.
func (s KeyboardState) Hide() KeyboardState {
	s.Visible = false
	s.Buffer = ""
	return s
}

// AppendInput appends a token (one or more characters) to the buffer.
func (s KeyboardState) AppendInput(token string) KeyboardState {
	next := token
	if s.Buffer != "" {
		next = s.Buffer + token
	}
	if !s.fits(next) {
		return s
	}
	s.Buffer = next
	return s
}

// RemoveLastInput drops the last character. An empty buffer stays empty.
func (s KeyboardState) RemoveLastInput() KeyboardState {
	if s.Buffer == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s.Buffer)
	s.Buffer = s.Buffer[:len(s.Buffer)-size]
	return s
}

// ResetInput clears the buffer without touching visibility.
func (s KeyboardState) ResetInput() KeyboardState {
	s.Buffer = ""
	return s
}

// SeedInput replaces the buffer with a field's current value when it subscribes.
func (s KeyboardState) SeedInput(value string, maxLength int) KeyboardState {
	if maxLength < 0 {
		maxLength = 0
	}
	s.Buffer = value
	s.MaxLength = maxLength
	return s
}

// Increment adds amount to the numeric value of the buffer, flooring at zero.
// A buffer with no numeric prefix counts as 0.
func (s KeyboardState) Increment(amount float64) KeyboardState {
	v := ParseLeadingFloat(s.Buffer) + amount
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		v = 0
	}
	next := FormatNumber(v)
	if !s.fits(next) {
		return s
	}
	s.Buffer = next
	return s
}

// Continue signals a continue press to the subscribed field.
func (s KeyboardState) Continue() KeyboardState {
	s.ContinueCount++
	return s
}

func (s KeyboardState) fits(buffer string) bool {
	return s.MaxLength <= 0 || utf8.RuneCountInString(buffer) <= s.MaxLength
}

// FormatNumber renders v with the shortest representation that round-trips.
// Negative zero renders as "0".
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseLeadingFloat parses the longest numeric prefix of s, after leading
// whitespace. It returns 0 when s has no numeric prefix.
func ParseLeadingFloat(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\r")
	end := scanFloatPrefix(s)
	if end == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil || math.IsNaN(v) {
		return 0
	}
	return v
}

// scanFloatPrefix returns the length of the float literal at the start of s:
// [sign] digits [. digits] [e [sign] digits], requiring at least one digit
// in the mantissa.
func scanFloatPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		exp := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			exp++
		}
		if exp > 0 {
			i = j
		}
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
