package domain

import (
	"errors"
	"fmt"
	"matchsim/internal/constants"
)

var ErrInvalidStats = errors.New("invalid player stats")

type Position int

const (
	Defender Position = iota
	Midfielder
	Forward
)

// Positions lists every position in roster order.
var Positions = []Position{Defender, Midfielder, Forward}

func (p Position) String() string {
	switch p {
	case Defender:
		return "Defender"
	case Midfielder:
		return "Midfielder"
	case Forward:
		return "Forward"
	default:
		return "Unknown"
	}
}

type Player struct {
	ID       int
	Position Position
	Attack   int
	Defense  int
}

// NewPlayer validates that both stats are in range and add up to the stat total.
func NewPlayer(id int, pos Position, attack, defense int) (Player, error) {
	if attack < constants.StatMin || attack > constants.StatMax ||
		defense < constants.StatMin || defense > constants.StatMax {
		return Player{}, fmt.Errorf("%w: attack %d defense %d out of [%d,%d]",
			ErrInvalidStats, attack, defense, constants.StatMin, constants.StatMax)
	}
	if attack+defense != constants.StatTotal {
		return Player{}, fmt.Errorf("%w: attack %d + defense %d != %d",
			ErrInvalidStats, attack, defense, constants.StatTotal)
	}
	return Player{ID: id, Position: pos, Attack: attack, Defense: defense}, nil
}

type Team struct {
	name    string
	players []Player
	score   int
}

func NewTeam(name string, players []Player) *Team {
	roster := make([]Player, len(players))
	copy(roster, players)
	return &Team{name: name, players: roster}
}

func (t *Team) Name() string { return t.name }

// Players returns a copy of the roster.
func (t *Team) Players() []Player {
	out := make([]Player, len(t.players))
	copy(out, t.players)
	return out
}

func (t *Team) Size() int { return len(t.players) }

func (t *Team) Score() int { return t.score }

func (t *Team) AddGoal() { t.score++ }

func (t *Team) ResetScore() { t.score = 0 }

func (t *Team) CountByPosition() map[Position]int {
	counts := make(map[Position]int, len(Positions))
	for _, p := range t.players {
		counts[p.Position]++
	}
	return counts
}

type Score struct {
	A int
	B int
}

func (s Score) String() string {
	return fmt.Sprintf("%d-%d", s.A, s.B)
}

type Event struct {
	Number        int
	AttackerID    int
	DefenderID    int
	AttackingTeam string
	Scored        bool
	Score         Score // cumulative, after this event
}

type Result struct {
	TeamA         string
	TeamB         string
	FirstAttacker string
	Score         Score
	Events        []Event

	// ids never drawn because the other roster ran out first
	UnusedA []int
	UnusedB []int
}
