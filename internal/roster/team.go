package roster

import (
	"errors"
	"fmt"
	"matchsim/internal/constants"
	"matchsim/internal/domain"
)

var ErrInvalidTeamSize = errors.New("invalid team size")

// Composition is how many players a roster has per position.
type Composition struct {
	Defenders   int
	Midfielders int
	Forwards    int
}

func (c Composition) Total() int {
	return c.Defenders + c.Midfielders + c.Forwards
}

// Split draws a composition for total players with at least one per position.
// Defenders are drawn first from the widest range, so rosters lean towards
// defenders.
func Split(rng RangeSource, total int) (Composition, error) {
	if total < constants.MinTeamSize {
		return Composition{}, fmt.Errorf("%w: need at least %d players, got %d",
			ErrInvalidTeamSize, constants.MinTeamSize, total)
	}

	defenders, err := rng.RandomInRange(constants.MinPerPosition, total-2)
	if err != nil {
		return Composition{}, fmt.Errorf("failed to draw defenders: %w", err)
	}
	remaining := total - defenders

	midfielders, err := rng.RandomInRange(constants.MinPerPosition, remaining-1)
	if err != nil {
		return Composition{}, fmt.Errorf("failed to draw midfielders: %w", err)
	}

	return Composition{
		Defenders:   defenders,
		Midfielders: midfielders,
		Forwards:    remaining - midfielders,
	}, nil
}

// CreateRandomTeam builds a team of total players. The composition is drawn
// from rng and players are created by f in defender, midfielder, forward order.
func CreateRandomTeam(f *Factory, rng RangeSource, name string, total int) (*domain.Team, error) {
	comp, err := Split(rng, total)
	if err != nil {
		return nil, err
	}

	players := make([]domain.Player, 0, total)
	groups := []struct {
		pos   domain.Position
		count int
	}{
		{domain.Defender, comp.Defenders},
		{domain.Midfielder, comp.Midfielders},
		{domain.Forward, comp.Forwards},
	}
	for _, g := range groups {
		for i := 0; i < g.count; i++ {
			p, err := f.New(g.pos)
			if err != nil {
				return nil, fmt.Errorf("failed to create %s for %s: %w", g.pos, name, err)
			}
			players = append(players, p)
		}
	}

	return domain.NewTeam(name, players), nil
}
