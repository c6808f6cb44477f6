// Package engine runs the confrontation simulation between two teams.
//
// A match draws one player from each side per confrontation, without
// replacement, and alternates which side attacks. An attacker scores when
// its attack is strictly greater than the defender's defense. The match ends
// as soon as either side has no players left; the other side's leftover
// players never play.
package engine

import (
	"matchsim/internal/constants"
	"matchsim/internal/domain"

	"github.com/rs/zerolog"
)

// Rand is the random source the engine draws turns and players from.
type Rand interface {
	Intn(n int) int
}

type Engine struct {
	rng    Rand
	logger zerolog.Logger
}

func New(rng Rand, logger zerolog.Logger) *Engine {
	return &Engine{rng: rng, logger: logger}
}

// Simulate plays a and b against each other. Both teams' scores are reset
// first and hold the final score afterwards. The rosters are not modified.
func (e *Engine) Simulate(a, b *domain.Team) domain.Result {
	a.ResetScore()
	b.ResetScore()

	indexA := index(a)
	indexB := index(b)
	availableA := ids(a)
	availableB := ids(b)

	result := domain.Result{
		TeamA:  a.Name(),
		TeamB:  b.Name(),
		Events: make([]domain.Event, 0, min(len(availableA), len(availableB))),
	}

	turn := e.rng.Intn(2)
	if turn == constants.TeamATurn {
		result.FirstAttacker = a.Name()
	} else {
		result.FirstAttacker = b.Name()
	}

	for len(availableA) > 0 && len(availableB) > 0 {
		var idA, idB int
		idA, availableA = e.extract(availableA)
		idB, availableB = e.extract(availableB)

		playerA := indexA[idA]
		playerB := indexB[idB]

		attackingTeam, attacker, defender := a, playerA, playerB
		if turn == constants.TeamBTurn {
			attackingTeam, attacker, defender = b, playerB, playerA
		}

		scored := attacker.Attack > defender.Defense
		if scored {
			attackingTeam.AddGoal()
		}

		event := domain.Event{
			Number:        len(result.Events) + 1,
			AttackerID:    attacker.ID,
			DefenderID:    defender.ID,
			AttackingTeam: attackingTeam.Name(),
			Scored:        scored,
			Score:         domain.Score{A: a.Score(), B: b.Score()},
		}
		result.Events = append(result.Events, event)

		e.logger.Debug().
			Int("number", event.Number).
			Str("attacking_team", event.AttackingTeam).
			Int("attacker_id", attacker.ID).
			Int("attack", attacker.Attack).
			Int("defender_id", defender.ID).
			Int("defense", defender.Defense).
			Bool("scored", scored).
			Msg("confrontation resolved")

		turn = 1 - turn
	}

	result.Score = domain.Score{A: a.Score(), B: b.Score()}
	result.UnusedA = availableA
	result.UnusedB = availableB

	e.logger.Info().
		Str("team_a", result.TeamA).
		Str("team_b", result.TeamB).
		Str("score", result.Score.String()).
		Int("confrontations", len(result.Events)).
		Int("unused_a", len(result.UnusedA)).
		Int("unused_b", len(result.UnusedB)).
		Msg("match simulated")

	return result
}

// extract removes and returns a uniformly drawn id, keeping the remaining ids in order.
func (e *Engine) extract(available []int) (int, []int) {
	i := e.rng.Intn(len(available))
	id := available[i]
	return id, append(available[:i], available[i+1:]...)
}

func index(t *domain.Team) map[int]domain.Player {
	players := t.Players()
	m := make(map[int]domain.Player, len(players))
	for _, p := range players {
		m[p.ID] = p
	}
	return m
}

func ids(t *domain.Team) []int {
	players := t.Players()
	out := make([]int, len(players))
	for i, p := range players {
		out[i] = p.ID
	}
	return out
}
