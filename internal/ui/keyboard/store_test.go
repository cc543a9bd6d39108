package keyboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GameraCC/gym/internal/application/port"
	"github.com/GameraCC/gym/internal/application/port/mocks"
	"github.com/GameraCC/gym/internal/domain/entity"
)

// recordingSubscriber records the states it is shown and whether it was revoked.
type recordingSubscriber struct {
	seen     []entity.KeyboardState
	revoked  int
	onChange func(ctx context.Context, prev, next entity.KeyboardState)
}

func (r *recordingSubscriber) OnKeyboardChange(ctx context.Context, prev, next entity.KeyboardState) {
	r.seen = append(r.seen, next)
	if r.onChange != nil {
		r.onChange(ctx, prev, next)
	}
}

func (r *recordingSubscriber) Revoke(context.Context) { r.revoked++ }

func TestStore_InitialState(t *testing.T) {
	s := NewStore()
	st := s.State()
	assert.False(t, st.Visible)
	assert.Equal(t, entity.KeyboardNumeric, st.Kind)
	assert.Equal(t, "", st.Buffer)
	assert.Equal(t, uint64(0), st.ContinueCount)

	_, ok := s.Owner()
	assert.False(t, ok)
}

func TestStore_AppendInputConcatenatesForSubscriber(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.Claim(ctx, "sets", &recordingSubscriber{})

	tokens := []string{"1", "0", ".", "5", "00"}
	for _, tok := range tokens {
		s.AppendInput(ctx, tok)
	}
	assert.Equal(t, "10.500", s.State().Buffer)
}

func TestStore_DropsEditsWithoutSubscriber(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.Show(ctx, entity.KeyboardNumeric)

	s.AppendInput(ctx, "5")
	s.Increment(ctx, 2.5)
	s.RemoveLastInput(ctx)
	assert.Equal(t, "", s.State().Buffer)

	s.Continue(ctx)
	assert.Equal(t, uint64(1), s.State().ContinueCount, "continue is not an edit")
}

func TestStore_RemoveLastInputOnEmptyBuffer(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.Claim(ctx, "sets", &recordingSubscriber{})

	assert.NotPanics(t, func() { s.RemoveLastInput(ctx) })
	assert.Equal(t, "", s.State().Buffer)
}

func TestStore_NotifiesSubscriberBeforeObservers(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	obs := mocks.NewMockKeyboardObserver(ctrl)

	s := NewStore()
	var order []string
	sub := &recordingSubscriber{onChange: func(context.Context, entity.KeyboardState, entity.KeyboardState) {
		order = append(order, "subscriber")
	}}
	s.Claim(ctx, "sets", sub)
	s.Observe(obs)

	obs.EXPECT().
		OnKeyboardChange(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, prev, next entity.KeyboardState) {
			order = append(order, "observer")
			assert.False(t, prev.Visible)
			assert.True(t, next.Visible)
		}).
		Times(1)

	s.Show(ctx, entity.KeyboardNumeric)
	assert.Equal(t, []string{"subscriber", "observer"}, order)
}

func TestStore_NoNotificationWhenUnchanged(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	obs := mocks.NewMockKeyboardObserver(ctrl)

	s := NewStore()
	s.Observe(obs)

	obs.EXPECT().OnKeyboardChange(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

	s.Show(ctx, entity.KeyboardNumeric)
	s.Show(ctx, entity.KeyboardNumeric)
	s.ResetInput(ctx)
}

func TestStore_ObserveCancel(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	var calls int
	cancel := s.Observe(port.KeyboardObserverFunc(func(context.Context, entity.KeyboardState, entity.KeyboardState) {
		calls++
	}))
	s.Show(ctx, entity.KeyboardNumeric)
	cancel()
	s.Hide(ctx)

	assert.Equal(t, 1, calls)
	assert.NotPanics(t, cancel, "cancel twice is harmless")
}

func TestStore_DispatchFromCallbackIsQueued(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	var observed []string
	s.Observe(port.KeyboardObserverFunc(func(_ context.Context, _, next entity.KeyboardState) {
		observed = append(observed, next.Buffer)
	}))

	sub := &recordingSubscriber{}
	sub.onChange = func(ctx context.Context, prev, next entity.KeyboardState) {
		// React to the first keystroke with a second one.
		if next.Buffer == "1" {
			s.AppendInput(ctx, "2")
			assert.Equal(t, "1", s.State().Buffer, "nested dispatch must wait for the current turn")
		}
	}
	s.Claim(ctx, "sets", sub)

	s.AppendInput(ctx, "1")

	assert.Equal(t, "12", s.State().Buffer)
	assert.Equal(t, []string{"1", "12"}, observed, "observers see every state in order")
}

func TestStore_ClaimRevokesPreviousSubscriber(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	a := &recordingSubscriber{}
	b := &recordingSubscriber{}

	s.Claim(ctx, "a", a)
	s.Claim(ctx, "a", a)
	assert.Equal(t, 0, a.revoked, "re-claim by the same owner is a no-op")

	s.Claim(ctx, "b", b)
	assert.Equal(t, 1, a.revoked)

	owner, ok := s.Owner()
	require.True(t, ok)
	assert.Equal(t, entity.FieldKey("b"), owner)

	s.Show(ctx, entity.KeyboardNumeric)
	assert.Empty(t, a.seen, "revoked subscriber is no longer notified")
	assert.Len(t, b.seen, 1)
}

func TestStore_ReleaseOnlyByOwner(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.Claim(ctx, "a", &recordingSubscriber{})

	assert.False(t, s.Release(ctx, "b"))
	assert.True(t, s.Release(ctx, "a"))
	assert.False(t, s.Release(ctx, "a"))

	_, ok := s.Owner()
	assert.False(t, ok)
}

func TestStore_IncrementFloorsAtZero(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.Claim(ctx, "weight", &recordingSubscriber{})

	s.AppendInput(ctx, "5")
	s.Increment(ctx, -2.5)
	s.Increment(ctx, -2.5)
	assert.Equal(t, "0", s.State().Buffer)
	s.Increment(ctx, -2.5)
	assert.Equal(t, "0", s.State().Buffer)
}

func TestStore_NilEventIgnored(t *testing.T) {
	s := NewStore()
	s.Dispatch(context.Background(), nil)
	assert.Equal(t, entity.NewKeyboardState(), s.State())
}

func TestStore_RecoversAfterPanickingObserver(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	panicking := true
	cancel := s.Observe(port.KeyboardObserverFunc(func(context.Context, entity.KeyboardState, entity.KeyboardState) {
		if panicking {
			panic("observer failed")
		}
	}))
	defer cancel()

	assert.Panics(t, func() { s.Show(ctx, entity.KeyboardNumeric) })
	assert.True(t, s.State().Visible, "the reduction itself was applied")

	panicking = false
	s.Hide(ctx)
	assert.False(t, s.State().Visible, "later dispatches still run")

	sub := &recordingSubscriber{}
	s.Claim(ctx, "sets", sub)
	s.Show(ctx, entity.KeyboardNumeric)
	s.AppendInput(ctx, "7")
	assert.Equal(t, "7", s.State().Buffer)
	assert.Len(t, sub.seen, 2)
}
