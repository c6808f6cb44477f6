package middleware

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const RunIDKey contextKey = "run_id"

// Step is one unit of CLI work.
type Step func(ctx context.Context) error

// RunID tags the context and its logger with a fresh run id and logs the
// start, end and duration of the wrapped step.
func RunID(logger zerolog.Logger) func(Step) Step {
	return func(next Step) Step {
		return func(ctx context.Context) error {
			start := time.Now()

			runID := GetRunID(ctx)
			if runID == "" {
				runID = uuid.New().String()
			}

			ctx = context.WithValue(ctx, RunIDKey, runID)

			loggerWithID := logger.With().Str("run_id", runID).Logger()
			ctx = loggerWithID.WithContext(ctx)

			loggerWithID.Info().Msg("run started")

			err := next(ctx)

			duration := time.Since(start)
			var event *zerolog.Event
			if err != nil {
				event = loggerWithID.Error().Err(err)
			} else {
				event = loggerWithID.Info()
			}
			event.
				Int64("duration_ms", duration.Milliseconds()).
				Dur("duration", duration).
				Msg("run completed")

			return err
		}
	}
}

func GetRunID(ctx context.Context) string {
	if id, ok := ctx.Value(RunIDKey).(string); ok {
		return id
	}
	return ""
}
