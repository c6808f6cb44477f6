package fx

import (
	"fmt"
	"matchsim/internal/config"
	"matchsim/internal/engine"
	"matchsim/internal/logger"
	"matchsim/internal/random"
	"matchsim/internal/roster"
	"matchsim/internal/service"
	"matchsim/internal/view"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// ProvideGenerator seeds the shared generator from config, picking a fresh
// seed when none is configured. The seed is logged so a run can be replayed.
func ProvideGenerator(cfg *config.Config, logger zerolog.Logger) (*random.Generator, error) {
	seed := cfg.Seed
	if seed == 0 {
		var err error
		seed, err = random.NewSeed()
		if err != nil {
			return nil, fmt.Errorf("failed to seed generator: %w", err)
		}
	}
	logger.Info().Int64("seed", seed).Msg("random generator seeded")
	return random.New(seed), nil
}

func ProvideEngine(rng *random.Generator, logger zerolog.Logger) *engine.Engine {
	return engine.New(rng, logger)
}

var Module = fx.Options(
	fx.Provide(config.Load),
	fx.Provide(logger.New),
	fx.Provide(ProvideGenerator),
	fx.Provide(roster.NewSequence),
	fx.Provide(ProvideEngine),
	// svc
	fx.Provide(service.NewMatchService),
	// presentation
	fx.Provide(view.NewConsole),
)
