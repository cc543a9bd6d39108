// Package keyboard coordinates many text fields sharing one on-screen keypad.
//
// A Store holds the single keyboard state and applies events through the pure
// reducers in entity. At most one field, the subscriber, owns the store at a
// time; FieldAdapter implements the per-field subscription protocol and
// Registry resolves continue hand-off targets by key.
package keyboard

import (
	"context"
	"sync"

	"github.com/GameraCC/gym/internal/application/port"
	"github.com/GameraCC/gym/internal/domain/entity"
	"github.com/GameraCC/gym/internal/logging"
)

// Subscriber owns the exclusive keyboard slot.
type Subscriber interface {
	port.KeyboardObserver
	// Revoke is called when another owner claims the slot.
	Revoke(ctx context.Context)
}

type observerEntry struct {
	id       uint64
	observer port.KeyboardObserver
}

// Store is the process-wide keyboard coordination store.
//
// Dispatch is run-to-completion: events dispatched from inside a callback are
// queued and applied, in order, before the outermost Dispatch returns.
// Callbacks always run without the lock held.
type Store struct {
	mu sync.Mutex

	state entity.KeyboardState

	owner      entity.FieldKey
	subscriber Subscriber

	observers []observerEntry
	nextObsID uint64

	queue    []entity.KeyboardEvent
	draining bool
}

// Compile-time interface check.
var _ port.KeyboardDispatcher = (*Store)(nil)

// NewStore creates a store with the keypad hidden.
func NewStore() *Store {
	return &Store{state: entity.NewKeyboardState()}
}

// State returns the current snapshot.
func (s *Store) State() entity.KeyboardState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Owner returns the key of the current subscriber, if any.
func (s *Store) Owner() (entity.FieldKey, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.owner, s.subscriber != nil
}

// Dispatch applies ev and notifies the subscriber and observers when the
// state changed. Keypad edits with no subscriber are dropped so the buffer
// never holds text that belongs to no field.
func (s *Store) Dispatch(ctx context.Context, ev entity.KeyboardEvent) {
	if ev == nil {
		return
	}

	s.mu.Lock()
	s.queue = append(s.queue, ev)
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true
	s.mu.Unlock()

	// A panicking callback must not leave the store stuck in draining mode.
	defer func() {
		s.mu.Lock()
		s.queue = nil
		s.draining = false
		s.mu.Unlock()
	}()

	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			s.mu.Unlock()
			return
		}
		next := s.queue[0]
		s.queue[0] = nil
		s.queue = s.queue[1:]

		sub := s.subscriber
		prev := s.state
		if sub != nil || !editsBuffer(next) {
			s.state = entity.Reduce(prev, next)
		}
		changed := s.state != prev
		cur := s.state
		observers := make([]port.KeyboardObserver, len(s.observers))
		for i, entry := range s.observers {
			observers[i] = entry.observer
		}
		s.mu.Unlock()

		logging.FromContext(ctx).Trace().
			Str("event", next.Name()).
			Bool("changed", changed).
			Msg("keyboard event")

		if changed {
			if sub != nil {
				sub.OnKeyboardChange(ctx, prev, cur)
			}
			for _, obs := range observers {
				obs.OnKeyboardChange(ctx, prev, cur)
			}
		}
	}
}

// editsBuffer reports whether ev is keypad editing, which only applies while
// some field owns the buffer.
func editsBuffer(ev entity.KeyboardEvent) bool {
	switch ev.(type) {
	case entity.InputEvent, entity.RemoveInputEvent, entity.IncrementEvent:
		return true
	default:
		return false
	}
}

// Show dispatches a show event.
func (s *Store) Show(ctx context.Context, kind entity.KeyboardKind) {
	s.Dispatch(ctx, entity.ShowEvent{Kind: kind})
}

// Hide dispatches a hide event.
func (s *Store) Hide(ctx context.Context) { s.Dispatch(ctx, entity.HideEvent{}) }

// AppendInput dispatches an input event.
func (s *Store) AppendInput(ctx context.Context, token string) {
	s.Dispatch(ctx, entity.InputEvent{Token: token})
}

// RemoveLastInput dispatches a remove event.
func (s *Store) RemoveLastInput(ctx context.Context) { s.Dispatch(ctx, entity.RemoveInputEvent{}) }

// ResetInput dispatches a reset event.
func (s *Store) ResetInput(ctx context.Context) { s.Dispatch(ctx, entity.ResetInputEvent{}) }

// Increment dispatches an increment event. Negative amounts decrement.
func (s *Store) Increment(ctx context.Context, amount float64) {
	s.Dispatch(ctx, entity.IncrementEvent{Amount: amount})
}

// Continue dispatches a continue event.
func (s *Store) Continue(ctx context.Context) { s.Dispatch(ctx, entity.ContinueEvent{}) }

// Observe registers a read-only observer. The returned func removes it.
func (s *Store) Observe(obs port.KeyboardObserver) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextObsID++
	id := s.nextObsID
	s.observers = append(s.observers, observerEntry{id: id, observer: obs})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, entry := range s.observers {
			if entry.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// Claim makes owner the only subscriber. A different current holder is
// revoked before owner is installed, so two subscribers never coexist.
// Claiming again with the same owner is a no-op.
func (s *Store) Claim(ctx context.Context, owner entity.FieldKey, sub Subscriber) {
	log := logging.FromContext(ctx)

	s.mu.Lock()
	if s.subscriber != nil && s.owner == owner {
		s.mu.Unlock()
		return
	}
	prevOwner, prevSub := s.owner, s.subscriber
	s.owner, s.subscriber = "", nil
	s.mu.Unlock()

	if prevSub != nil {
		log.Debug().
			Str("from", string(prevOwner)).
			Str("to", string(owner)).
			Msg("revoking keyboard subscriber")
		prevSub.Revoke(ctx)
	}

	s.mu.Lock()
	s.owner, s.subscriber = owner, sub
	s.mu.Unlock()

	log.Debug().Str("field", string(owner)).Msg("keyboard subscriber claimed")
}

// Release clears the slot if owner holds it and reports whether it did.
func (s *Store) Release(ctx context.Context, owner entity.FieldKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subscriber == nil || s.owner != owner {
		return false
	}
	s.owner, s.subscriber = "", nil

	logging.FromContext(ctx).Debug().Str("field", string(owner)).Msg("keyboard subscriber released")
	return true
}
