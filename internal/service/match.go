package service

import (
	"context"
	"fmt"
	"matchsim/internal/config"
	"matchsim/internal/constants"
	"matchsim/internal/domain"
	"matchsim/internal/engine"
	"matchsim/internal/middleware"
	"matchsim/internal/random"
	"matchsim/internal/roster"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Report is everything presentation needs about one played match.
type Report struct {
	MatchID string
	TeamA   *domain.Team
	TeamB   *domain.Team
	Result  domain.Result
}

type MatchService struct {
	cfg    *config.Config
	rng    *random.Generator
	ids    *roster.Sequence
	engine *engine.Engine
	logger zerolog.Logger
}

func NewMatchService(cfg *config.Config, rng *random.Generator, ids *roster.Sequence, eng *engine.Engine, logger zerolog.Logger) *MatchService {
	return &MatchService{cfg: cfg, rng: rng, ids: ids, engine: eng, logger: logger}
}

// PlayDemo builds two random teams sized within the configured bounds and
// plays them against each other.
func (s *MatchService) PlayDemo(ctx context.Context) (*Report, error) {
	sizeA, err := s.rng.RandomInRange(s.cfg.MinPlayers, s.cfg.MaxPlayers)
	if err != nil {
		return nil, fmt.Errorf("failed to draw roster size: %w", err)
	}
	sizeB, err := s.rng.RandomInRange(s.cfg.MinPlayers, s.cfg.MaxPlayers)
	if err != nil {
		return nil, fmt.Errorf("failed to draw roster size: %w", err)
	}

	s.logger.Info().
		Str("team_a", s.cfg.TeamAName).
		Int("size_a", sizeA).
		Str("team_b", s.cfg.TeamBName).
		Int("size_b", sizeB).
		Msg("building teams")

	teamA, teamB, err := s.BuildTeams(ctx, sizeA, sizeB)
	if err != nil {
		return nil, err
	}

	return s.Play(ctx, teamA, teamB)
}

// BuildTeams assembles both teams in parallel. Random sources and id blocks
// are handed out before the goroutines start, so a fixed seed always yields
// the same rosters.
func (s *MatchService) BuildTeams(ctx context.Context, sizeA, sizeB int) (*domain.Team, *domain.Team, error) {
	for _, n := range []int{sizeA, sizeB} {
		if n < constants.MinTeamSize {
			return nil, nil, fmt.Errorf("%w: need at least %d players, got %d",
				roster.ErrInvalidTeamSize, constants.MinTeamSize, n)
		}
	}

	rngA, rngB := s.rng.Child(), s.rng.Child()
	idsA, idsB := s.ids.Reserve(sizeA), s.ids.Reserve(sizeB)

	g, gCtx := errgroup.WithContext(ctx)
	var teamA, teamB *domain.Team

	g.Go(func() error {
		var err error
		teamA, err = s.buildTeam(gCtx, rngA, idsA, s.cfg.TeamAName, sizeA)
		return err
	})

	g.Go(func() error {
		var err error
		teamB, err = s.buildTeam(gCtx, rngB, idsB, s.cfg.TeamBName, sizeB)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("failed to build teams")
		return nil, nil, fmt.Errorf("failed to build teams: %w", err)
	}

	return teamA, teamB, nil
}

func (s *MatchService) buildTeam(ctx context.Context, rng *random.Generator, ids *roster.Block, name string, size int) (*domain.Team, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	team, err := roster.CreateRandomTeam(roster.NewFactory(rng, ids), rng, name, size)
	if err != nil {
		return nil, fmt.Errorf("failed to create team %s: %w", name, err)
	}

	counts := team.CountByPosition()
	s.logger.Debug().
		Str("team", name).
		Int("defenders", counts[domain.Defender]).
		Int("midfielders", counts[domain.Midfielder]).
		Int("forwards", counts[domain.Forward]).
		Msg("team created")

	return team, nil
}

// Play simulates a match between two already built teams.
func (s *MatchService) Play(ctx context.Context, teamA, teamB *domain.Team) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matchID, err := gonanoid.New(constants.MatchIDLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate match id: %w", err)
	}

	logCtx := s.logger.With().Str("match_id", matchID)
	if runID := middleware.GetRunID(ctx); runID != "" {
		logCtx = logCtx.Str("run_id", runID)
	}
	log := logCtx.Logger()
	log.Info().Str("team_a", teamA.Name()).Str("team_b", teamB.Name()).Msg("kick-off")

	result := s.engine.Simulate(teamA, teamB)

	log.Info().
		Str("score", result.Score.String()).
		Str("first_attacker", result.FirstAttacker).
		Int("confrontations", len(result.Events)).
		Msg("full time")

	return &Report{
		MatchID: matchID,
		TeamA:   teamA,
		TeamB:   teamB,
		Result:  result,
	}, nil
}
