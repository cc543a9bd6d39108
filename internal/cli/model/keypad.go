// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GameraCC/gym/internal/cli/styles"
	"github.com/GameraCC/gym/internal/domain/entity"
	"github.com/GameraCC/gym/internal/logging"
	"github.com/GameraCC/gym/internal/ui/keyboard"
)

// fieldView is the terminal rendition of one text field. It is the native
// handle behind a keyboard.FieldAdapter.
type fieldView struct {
	key         entity.FieldKey
	placeholder string
	text        string
	focused     bool
}

func (f *fieldView) Focus() { f.focused = true }
func (f *fieldView) Blur()  { f.focused = false }

// KeypadModel is the Bubble Tea model for a screen of fields sharing the
// on-screen numeric keypad.
type KeypadModel struct {
	// UI components
	help help.Model
	keys keypadKeyMap

	// State
	title   string
	fields  []*fieldView
	pressed string
	width   int
	done    bool

	// Config
	step          float64
	continueLabel string

	// Dependencies
	ctx      context.Context
	store    *keyboard.Store
	registry *keyboard.Registry
	theme    *styles.Theme
}

// keypadKeyMap maps terminal keys onto keypad buttons and field taps.
type keypadKeyMap struct {
	Digit     key.Binding
	Decimal   key.Binding
	Increment key.Binding
	Decrement key.Binding
	Remove    key.Binding
	Continue  key.Binding
	Hide      key.Binding
	NextField key.Binding
	PrevField key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k keypadKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Digit, k.Increment, k.Decrement, k.Continue, k.NextField, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k keypadKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digit, k.Decimal, k.Remove},
		{k.Increment, k.Decrement, k.Continue, k.Hide},
		{k.NextField, k.PrevField, k.Help, k.Quit},
	}
}

func defaultKeypadKeyMap() keypadKeyMap {
	return keypadKeyMap{
		Digit: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "type"),
		),
		Decimal: key.NewBinding(
			key.WithKeys(".", ","),
			key.WithHelp(".", "decimal"),
		),
		Increment: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "increase"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "decrease"),
		),
		Remove: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "remove"),
		),
		Continue: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "continue"),
		),
		Hide: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "hide keypad"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down", "j"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up", "k"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeypadModelConfig holds configuration for the keypad model.
type KeypadModelConfig struct {
	Title         string
	Fields        []keyboard.FieldConfig
	IncrementStep float64
	ContinueLabel string
	// Store defaults to a fresh store when nil.
	Store *keyboard.Store
}

// NewKeypadModel registers the configured fields and returns the model.
// Field OnChangeText callbacks are installed by the model.
func NewKeypadModel(ctx context.Context, theme *styles.Theme, cfg KeypadModelConfig) (KeypadModel, error) {
	store := cfg.Store
	if store == nil {
		store = keyboard.NewStore()
	}
	registry := keyboard.NewRegistry(store)

	fields := make([]*fieldView, 0, len(cfg.Fields))
	for _, fc := range cfg.Fields {
		view := &fieldView{key: fc.Key, placeholder: fc.Placeholder, text: fc.Value}
		fc.OnChangeText = func(text string) { view.text = text }

		if _, err := registry.Register(fc, view); err != nil {
			registry.CloseAll(ctx)
			return KeypadModel{}, fmt.Errorf("register field %q: %w", fc.Key, err)
		}
		fields = append(fields, view)
	}

	return KeypadModel{
		help:          styles.NewStyledHelp(theme),
		keys:          defaultKeypadKeyMap(),
		title:         cfg.Title,
		fields:        fields,
		width:         80,
		step:          cfg.IncrementStep,
		continueLabel: cfg.ContinueLabel,
		ctx:           ctx,
		store:         store,
		registry:      registry,
		theme:         theme,
	}, nil
}

// focusFieldMsg taps a field, as a user touching it would.
type focusFieldMsg struct {
	key entity.FieldKey
}

// IncrementStepMsg changes the amount the +/- keys add or remove.
type IncrementStepMsg struct {
	Step float64
}

// Init implements tea.Model. The first field is focused on start.
func (m KeypadModel) Init() tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	first := m.fields[0].key
	return func() tea.Msg { return focusFieldMsg{key: first} }
}

// Update implements tea.Model.
func (m KeypadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case focusFieldMsg:
		m.tap(msg.key)
		return m, nil

	case IncrementStepMsg:
		if msg.Step > 0 {
			m.step = msg.Step
		}
		return m, nil
	}

	return m, nil
}

func (m KeypadModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := m.ctx
	m.pressed = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.registry.CloseAll(ctx)
		m.done = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.tap(m.neighbour(1))
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.tap(m.neighbour(-1))
		return m, nil
	}

	// Keypad buttons only exist while the keypad is shown.
	if !m.store.State().Visible {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Digit):
		m.pressed = msg.String()
		m.store.AppendInput(ctx, m.pressed)

	case key.Matches(msg, m.keys.Decimal):
		m.pressed = "."
		m.store.AppendInput(ctx, ".")

	case key.Matches(msg, m.keys.Increment):
		m.pressed = styles.IncrementLabel(m.step)
		m.store.Increment(ctx, m.step)

	case key.Matches(msg, m.keys.Decrement):
		m.pressed = styles.DecrementLabel(m.step)
		m.store.Increment(ctx, -m.step)

	case key.Matches(msg, m.keys.Remove):
		m.pressed = styles.KeyLabelRemove
		m.store.RemoveLastInput(ctx)

	case key.Matches(msg, m.keys.Continue):
		m.pressed = m.continueLabel
		m.store.Continue(ctx)

	case key.Matches(msg, m.keys.Hide):
		m.pressed = styles.KeyLabelHide
		m.store.Hide(ctx)
	}

	return m, nil
}

// tap focuses field, the terminal equivalent of touching the field.
func (m KeypadModel) tap(field entity.FieldKey) {
	if field == "" {
		return
	}
	if err := m.registry.Focus(m.ctx, field); err != nil {
		logging.FromContext(m.ctx).Warn().Err(err).Msg("cannot focus field")
	}
}

// neighbour returns the field offset positions away from the subscribed
// one, wrapping around. With nothing subscribed it starts from the edges.
func (m KeypadModel) neighbour(offset int) entity.FieldKey {
	n := len(m.fields)
	if n == 0 {
		return ""
	}

	active, ok := m.registry.Active()
	if !ok {
		if offset > 0 {
			return m.fields[0].key
		}
		return m.fields[n-1].key
	}

	for i, f := range m.fields {
		if f.key == active {
			return m.fields[((i+offset)%n+n)%n].key
		}
	}
	return m.fields[0].key
}

// View implements tea.Model.
func (m KeypadModel) View() string {
	if m.done {
		return ""
	}

	var sb strings.Builder
	if m.title != "" {
		sb.WriteString(m.theme.Title.Render(m.title))
		sb.WriteString("\n\n")
	}

	rendered := make([]string, 0, len(m.fields))
	for _, f := range m.fields {
		rendered = append(rendered, m.theme.RenderField(string(f.key), f.text, f.placeholder, f.focused))
		rendered = append(rendered, "  ")
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	sb.WriteString("\n\n")

	if m.store.State().Visible {
		sb.WriteString(m.theme.RenderKeypad(styles.KeypadView{
			Step:          m.step,
			ContinueLabel: m.continueLabel,
			Pressed:       m.pressed,
		}))
		sb.WriteString("\n")
	} else {
		sb.WriteString(m.theme.Subtle.Render("Select a field to open the keypad."))
		sb.WriteString("\n\n")
	}

	sb.WriteString(m.help.View(m.keys))
	sb.WriteString("\n")
	return sb.String()
}

// Values returns the text of every field in screen order.
func (m KeypadModel) Values() []FieldValue {
	out := make([]FieldValue, 0, len(m.fields))
	for _, f := range m.fields {
		out = append(out, FieldValue{Key: f.key, Value: f.text})
	}
	return out
}

// FieldValue pairs a field key with its text.
type FieldValue struct {
	Key   entity.FieldKey
	Value string
}

// Step returns the current increment step.
func (m KeypadModel) Step() float64 { return m.step }

// Store returns the keyboard store backing the screen.
func (m KeypadModel) Store() *keyboard.Store { return m.store }
