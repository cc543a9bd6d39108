package keyboard

import (
	"context"
	"sync"

	"github.com/GameraCC/gym/internal/application/port"
	"github.com/GameraCC/gym/internal/domain/entity"
	"github.com/GameraCC/gym/internal/logging"
)

// FieldPhase is the subscription state of a field adapter.
type FieldPhase int

const (
	Unsubscribed FieldPhase = iota // not focused; shows its own value
	Subscribed                     // focused; mirrors the store buffer
)

// String returns the phase name.
func (p FieldPhase) String() string {
	if p == Subscribed {
		return "subscribed"
	}
	return "unsubscribed"
}

// focuser resolves continue hand-off targets by key.
type focuser interface {
	Focus(ctx context.Context, key entity.FieldKey) error
}

// FieldAdapter bridges one text field to the shared keyboard store.
// It knows other fields only through NextFieldKey.
type FieldAdapter struct {
	cfg    FieldConfig
	handle port.FieldHandle
	store  *Store
	fields focuser

	mu     sync.Mutex
	phase  FieldPhase
	value  string
	closed bool
}

// Compile-time interface check.
var _ Subscriber = (*FieldAdapter)(nil)

// NewFieldAdapter validates cfg and creates an unsubscribed adapter.
// fields may be nil when the config has no NextFieldKey.
func NewFieldAdapter(cfg FieldConfig, handle port.FieldHandle, store *Store, fields focuser) (*FieldAdapter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &FieldAdapter{
		cfg:    cfg,
		handle: handle,
		store:  store,
		fields: fields,
		value:  cfg.Value,
	}, nil
}

// Key returns the field key.
func (a *FieldAdapter) Key() entity.FieldKey { return a.cfg.Key }

// Config returns the field configuration.
func (a *FieldAdapter) Config() FieldConfig { return a.cfg }

// Phase returns the current subscription phase.
func (a *FieldAdapter) Phase() FieldPhase {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.phase
}

// Subscribed reports whether the adapter currently owns the keyboard.
func (a *FieldAdapter) Subscribed() bool { return a.Phase() == Subscribed }

// Value returns the field's displayed value.
func (a *FieldAdapter) Value() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.value
}

// SetValue updates the field value from the host side. It is used to seed
// the buffer on the next focus.
func (a *FieldAdapter) SetValue(v string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.value = v
}

// Focus subscribes the field: it claims the store, seeds the buffer from the
// field's value and shows the keypad. Focusing a subscribed field does nothing.
func (a *FieldAdapter) Focus(ctx context.Context) {
	ctx = logging.WithField(ctx, a.cfg.Key)

	a.mu.Lock()
	if a.closed || a.phase == Subscribed {
		a.mu.Unlock()
		return
	}
	a.mu.Unlock()

	a.store.Claim(ctx, a.cfg.Key, a)

	a.mu.Lock()
	a.phase = Subscribed
	value := a.value
	a.mu.Unlock()

	a.store.Dispatch(ctx, entity.SeedInputEvent{Value: value, MaxLength: a.cfg.MaxLength})
	if !a.store.State().Visible {
		a.store.Show(ctx, a.cfg.Kind)
	}
	a.handle.Focus()

	logging.FromContext(ctx).Debug().Str("value", value).Msg("field subscribed")
}

// Blur handles focus loss for any reason other than continue hand-off: the
// field unsubscribes and the buffer is reset so the next field starts clean.
func (a *FieldAdapter) Blur(ctx context.Context) {
	ctx = logging.WithField(ctx, a.cfg.Key)
	if !a.unsubscribe(ctx) {
		return
	}
	a.store.ResetInput(ctx)
	a.handle.Blur()

	logging.FromContext(ctx).Debug().Msg("field blurred")
}

// Close tears the field down. A subscribed field hides the keypad so it is
// never left rendering for a field that no longer exists.
func (a *FieldAdapter) Close(ctx context.Context) {
	ctx = logging.WithField(ctx, a.cfg.Key)

	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	a.mu.Unlock()

	if a.unsubscribe(ctx) {
		a.store.Hide(ctx)
		logging.FromContext(ctx).Debug().Msg("subscribed field closed, keyboard hidden")
	}
}

// Revoke is called by the store when another field claims the keyboard.
func (a *FieldAdapter) Revoke(ctx context.Context) {
	a.mu.Lock()
	wasSubscribed := a.phase == Subscribed
	a.phase = Unsubscribed
	a.mu.Unlock()

	if wasSubscribed {
		a.handle.Blur()
	}
}

// OnKeyboardChange reacts to store changes while the field is subscribed.
func (a *FieldAdapter) OnKeyboardChange(ctx context.Context, prev, next entity.KeyboardState) {
	if !a.Subscribed() {
		return
	}
	ctx = logging.WithField(ctx, a.cfg.Key)

	// Hiding clears the store buffer; the field keeps its own value.
	if prev.Visible && !next.Visible {
		if a.unsubscribe(ctx) {
			a.handle.Blur()
			logging.FromContext(ctx).Debug().Msg("keyboard hidden, field blurred")
		}
		return
	}

	if next.Buffer != prev.Buffer {
		a.mirror(next.Buffer)
	}

	if next.ContinueCount != prev.ContinueCount {
		a.handOff(ctx)
	}
}

func (a *FieldAdapter) mirror(buffer string) {
	a.mu.Lock()
	a.value = buffer
	a.mu.Unlock()
	a.cfg.OnChangeText(buffer)
}

// handOff moves focus to the next field, or ends input when there is none.
func (a *FieldAdapter) handOff(ctx context.Context) {
	log := logging.FromContext(ctx)

	if !a.unsubscribe(ctx) {
		return
	}

	a.handle.Blur()

	next := a.cfg.NextFieldKey
	if next != "" && a.fields != nil {
		err := a.fields.Focus(ctx, next)
		if err == nil {
			log.Debug().Str("next", string(next)).Msg("continue handed off")
			return
		}
		log.Warn().Err(err).Str("next", string(next)).Msg("continue target unavailable, ending input")
	}

	a.store.Hide(ctx)
	log.Debug().Msg("continue ended input")
}

// unsubscribe leaves the Subscribed phase and releases the store slot.
// It reports whether the adapter was subscribed.
func (a *FieldAdapter) unsubscribe(ctx context.Context) bool {
	a.mu.Lock()
	if a.phase != Subscribed {
		a.mu.Unlock()
		return false
	}
	a.phase = Unsubscribed
	a.mu.Unlock()

	a.store.Release(ctx, a.cfg.Key)
	return true
}
