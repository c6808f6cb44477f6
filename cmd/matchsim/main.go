package main

import (
	"context"
	"fmt"
	"matchsim/internal/constants"
	fxmodules "matchsim/internal/fx"
	"matchsim/internal/middleware"
	"matchsim/internal/service"
	"matchsim/internal/view"
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// Failures are reported on stderr; the exit code is always 0.
func main() {
	app := fx.New(
		fxmodules.Module,
		fx.NopLogger,
		fx.Invoke(runDemo),
	)
	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "matchsim: %v\n", err)
		return
	}

	startCtx, cancel := context.WithTimeout(context.Background(), constants.StartTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		fmt.Fprintf(os.Stderr, "matchsim: %v\n", err)
		return
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		fmt.Fprintf(os.Stderr, "matchsim: %v\n", err)
	}
}

func runDemo(
	lc fx.Lifecycle,
	svc *service.MatchService,
	console *view.Console,
	logger zerolog.Logger,
) {
	demo := middleware.RunID(logger)(func(ctx context.Context) error {
		if err := console.RenderIntro(); err != nil {
			return err
		}

		report, err := svc.PlayDemo(ctx)
		if err != nil {
			return err
		}

		if err := console.RenderRosters(report.TeamA, report.TeamB); err != nil {
			return err
		}
		if err := console.RenderMatch(report); err != nil {
			return err
		}
		return console.RenderOutro()
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return demo(ctx)
		},
		OnStop: func(ctx context.Context) error {
			logger.Debug().Msg("matchsim stopped")
			return nil
		},
	})
}
