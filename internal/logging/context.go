package logging

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/GameraCC/gym/internal/domain/entity"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithField creates a child logger with a field key
func WithField(ctx context.Context, key entity.FieldKey) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("field", string(key)).Logger()
	return WithContext(ctx, childLogger)
}
