package keyboard

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/GameraCC/gym/internal/application/port"
	"github.com/GameraCC/gym/internal/domain/entity"
	"github.com/GameraCC/gym/internal/logging"
)

// Registry owns the field adapters of one screen, keyed by FieldKey.
// Continue hand-off looks targets up here, so a field never holds a live
// reference to another.
type Registry struct {
	store *Store

	mu     sync.RWMutex
	fields map[entity.FieldKey]*FieldAdapter
	order  []entity.FieldKey
}

// Compile-time interface checks.
var (
	_ focuser       = (*Registry)(nil)
	_ port.FieldSet = (*Registry)(nil)
)

// NewRegistry creates an empty registry bound to store.
func NewRegistry(store *Store) *Registry {
	return &Registry{
		store:  store,
		fields: make(map[entity.FieldKey]*FieldAdapter),
	}
}

// Store returns the coordination store the registry's fields share.
func (r *Registry) Store() *Store { return r.store }

// Register creates and stores an adapter for cfg.
func (r *Registry) Register(cfg FieldConfig, handle port.FieldHandle) (*FieldAdapter, error) {
	adapter, err := NewFieldAdapter(cfg, handle, r.store, r)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.fields[adapter.Key()]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateField, adapter.Key())
	}
	r.fields[adapter.Key()] = adapter
	r.order = append(r.order, adapter.Key())
	return adapter, nil
}

// Unregister removes a field and tears it down, hiding the keypad if it was
// the subscribed field.
func (r *Registry) Unregister(ctx context.Context, key entity.FieldKey) {
	r.mu.Lock()
	adapter, ok := r.fields[key]
	if ok {
		delete(r.fields, key)
		r.order = slices.DeleteFunc(r.order, func(k entity.FieldKey) bool { return k == key })
	}
	r.mu.Unlock()

	if ok {
		adapter.Close(ctx)
		logging.FromContext(ctx).Debug().Str("field", string(key)).Msg("field unregistered")
	}
}

// CloseAll unregisters every field, as when the hosting screen unmounts.
func (r *Registry) CloseAll(ctx context.Context) {
	for _, key := range r.Keys() {
		r.Unregister(ctx, key)
	}
}

// Get returns the adapter for key.
func (r *Registry) Get(key entity.FieldKey) (*FieldAdapter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	adapter, ok := r.fields[key]
	return adapter, ok
}

// Keys returns field keys in registration order.
func (r *Registry) Keys() []entity.FieldKey {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// Focus focuses the field registered under key.
func (r *Registry) Focus(ctx context.Context, key entity.FieldKey) error {
	adapter, ok := r.Get(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrFieldNotFound, key)
	}
	adapter.Focus(ctx)
	return nil
}

// Blur blurs the field registered under key.
func (r *Registry) Blur(ctx context.Context, key entity.FieldKey) error {
	adapter, ok := r.Get(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrFieldNotFound, key)
	}
	adapter.Blur(ctx)
	return nil
}

// Active returns the key of the subscribed field, if any.
func (r *Registry) Active() (entity.FieldKey, bool) {
	return r.store.Owner()
}

// Value returns the current text of the field registered under key.
func (r *Registry) Value(key entity.FieldKey) (string, bool) {
	adapter, ok := r.Get(key)
	if !ok {
		return "", false
	}
	return adapter.Value(), true
}
