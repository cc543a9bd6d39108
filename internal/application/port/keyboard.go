// Package port defines interfaces for infrastructure adapters.
package port

import (
	"context"

	"github.com/GameraCC/gym/internal/domain/entity"
)

// FieldHandle is the native text field behind a field adapter.
// Focus and Blur only change the field's visual focus; implementations must
// not call back into the adapter from them.
type FieldHandle interface {
	Focus()
	Blur()
}

// KeyboardObserver is notified after every keyboard state change.
type KeyboardObserver interface {
	OnKeyboardChange(ctx context.Context, prev, next entity.KeyboardState)
}

// KeyboardObserverFunc adapts a function to KeyboardObserver.
type KeyboardObserverFunc func(ctx context.Context, prev, next entity.KeyboardState)

// OnKeyboardChange calls f.
func (f KeyboardObserverFunc) OnKeyboardChange(ctx context.Context, prev, next entity.KeyboardState) {
	f(ctx, prev, next)
}

// KeyboardDispatcher is the write side of the keyboard store used by keypad UIs.
// The keypad never learns which field is active.
type KeyboardDispatcher interface {
	Dispatch(ctx context.Context, ev entity.KeyboardEvent)
	State() entity.KeyboardState
}

// FieldSet is one screen of keypad-driven fields addressed by key.
type FieldSet interface {
	Focus(ctx context.Context, key entity.FieldKey) error
	Blur(ctx context.Context, key entity.FieldKey) error
	Unregister(ctx context.Context, key entity.FieldKey)
	CloseAll(ctx context.Context)
	Keys() []entity.FieldKey
	Active() (entity.FieldKey, bool)
	Value(key entity.FieldKey) (string, bool)
}
