package service

import (
	"context"
	"errors"
	"matchsim/internal/config"
	"matchsim/internal/constants"
	"matchsim/internal/domain"
	"matchsim/internal/engine"
	"matchsim/internal/random"
	"matchsim/internal/roster"
	"testing"

	"github.com/rs/zerolog"
)

func newTestService(seed int64) *MatchService {
	cfg := &config.Config{
		Seed:       seed,
		TeamAName:  "Tigers",
		TeamBName:  "Lions",
		MinPlayers: constants.DefaultMinPlayers,
		MaxPlayers: constants.DefaultMaxPlayers,
	}
	rng := random.New(seed)
	return NewMatchService(cfg, rng, roster.NewSequence(), engine.New(rng, zerolog.Nop()), zerolog.Nop())
}

// TestPlayDemoRespectsRosterBounds ensures both rosters fall in the configured range.
func TestPlayDemoRespectsRosterBounds(t *testing.T) {
	svc := newTestService(1)
	for i := 0; i < 50; i++ {
		report, err := svc.PlayDemo(context.Background())
		if err != nil {
			t.Fatalf("PlayDemo returned error: %v", err)
		}
		for _, team := range []*domain.Team{report.TeamA, report.TeamB} {
			if team.Size() < constants.DefaultMinPlayers || team.Size() > constants.DefaultMaxPlayers {
				t.Fatalf("%s has %d players", team.Name(), team.Size())
			}
		}
		if len(report.Result.Events) != min(report.TeamA.Size(), report.TeamB.Size()) {
			t.Fatalf("got %d events for %d vs %d", len(report.Result.Events), report.TeamA.Size(), report.TeamB.Size())
		}
		if len(report.MatchID) != constants.MatchIDLength {
			t.Fatalf("MatchID = %q", report.MatchID)
		}
	}
}

// TestPlayDemoIsReproducible ensures the full pipeline is deterministic for a fixed seed.
func TestPlayDemoIsReproducible(t *testing.T) {
	first, err := newTestService(2024).PlayDemo(context.Background())
	if err != nil {
		t.Fatalf("PlayDemo returned error: %v", err)
	}
	second, err := newTestService(2024).PlayDemo(context.Background())
	if err != nil {
		t.Fatalf("PlayDemo returned error: %v", err)
	}

	samePlayers := func(a, b []domain.Player) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}
	if !samePlayers(first.TeamA.Players(), second.TeamA.Players()) ||
		!samePlayers(first.TeamB.Players(), second.TeamB.Players()) {
		t.Fatal("rosters differ between runs with the same seed")
	}
	if first.Result.Score != second.Result.Score || len(first.Result.Events) != len(second.Result.Events) {
		t.Fatalf("results differ: %s vs %s", first.Result.Score, second.Result.Score)
	}
	for i := range first.Result.Events {
		if first.Result.Events[i] != second.Result.Events[i] {
			t.Fatalf("event %d differs: %+v vs %+v", i, first.Result.Events[i], second.Result.Events[i])
		}
	}
}

// TestBuildTeamsUsesDisjointIDs ensures parallel assembly never shares an id.
func TestBuildTeamsUsesDisjointIDs(t *testing.T) {
	svc := newTestService(5)
	a, b, err := svc.BuildTeams(context.Background(), 6, 9)
	if err != nil {
		t.Fatalf("BuildTeams returned error: %v", err)
	}
	if a.Name() != "Tigers" || b.Name() != "Lions" {
		t.Fatalf("names = %q, %q", a.Name(), b.Name())
	}

	seen := map[int]bool{}
	for _, p := range append(a.Players(), b.Players()...) {
		if seen[p.ID] {
			t.Fatalf("duplicate id %d", p.ID)
		}
		seen[p.ID] = true
	}
	if len(seen) != 15 {
		t.Fatalf("got %d ids, want 15", len(seen))
	}
}

// TestBuildTeamsRejectsSmallTeams ensures the size check happens before any work.
func TestBuildTeamsRejectsSmallTeams(t *testing.T) {
	_, _, err := newTestService(1).BuildTeams(context.Background(), 5, 2)
	if !errors.Is(err, roster.ErrInvalidTeamSize) {
		t.Fatalf("BuildTeams error = %v, want %v", err, roster.ErrInvalidTeamSize)
	}
}

// TestPlayHonoursCancellation ensures a cancelled context stops before kick-off.
func TestPlayHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := domain.NewTeam("Tigers", nil)
	b := domain.NewTeam("Lions", nil)
	if _, err := newTestService(1).Play(ctx, a, b); !errors.Is(err, context.Canceled) {
		t.Fatalf("Play error = %v, want %v", err, context.Canceled)
	}
}
