package keyboard

import (
	"context"

	"github.com/GameraCC/gym/internal/application/port"
	"github.com/GameraCC/gym/internal/domain/entity"
	"github.com/GameraCC/gym/internal/logging"
)

// NewLoggingObserver returns an observer that logs every state transition at
// debug level.
func NewLoggingObserver() port.KeyboardObserver {
	return port.KeyboardObserverFunc(func(ctx context.Context, prev, next entity.KeyboardState) {
		log := logging.FromContext(ctx)
		log.Debug().
			Bool("visible", next.Visible).
			Str("kind", string(next.Kind)).
			Str("buffer", next.Buffer).
			Str("prev_buffer", prev.Buffer).
			Uint64("continue", next.ContinueCount).
			Msg("keyboard state changed")
	})
}
