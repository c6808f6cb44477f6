package roster

import (
	"fmt"
	"matchsim/internal/constants"
	"matchsim/internal/domain"
)

// RangeSource draws integers from a closed interval.
type RangeSource interface {
	RandomInRange(low, high int) (int, error)
}

// Rule is the stat-generation rule for a position: the drawn stat is taken
// from [Low, High] and the other stat is whatever remains of the stat total.
type Rule struct {
	DrawsAttack bool
	Low         int
	High        int
}

var rules = map[domain.Position]Rule{
	domain.Defender:   {DrawsAttack: false, Low: 5, High: 9},
	domain.Midfielder: {DrawsAttack: false, Low: 4, High: 6},
	domain.Forward:    {DrawsAttack: true, Low: 5, High: 9},
}

func RuleFor(pos domain.Position) (Rule, bool) {
	r, ok := rules[pos]
	return r, ok
}

// Stats turns a drawn value into an (attack, defense) pair.
func (r Rule) Stats(drawn int) (attack, defense int) {
	if r.DrawsAttack {
		return drawn, constants.StatTotal - drawn
	}
	return constants.StatTotal - drawn, drawn
}

type Factory struct {
	rng RangeSource
	ids IDSource
}

func NewFactory(rng RangeSource, ids IDSource) *Factory {
	return &Factory{rng: rng, ids: ids}
}

func (f *Factory) New(pos domain.Position) (domain.Player, error) {
	rule, ok := RuleFor(pos)
	if !ok {
		return domain.Player{}, fmt.Errorf("unknown position %d", pos)
	}

	drawn, err := f.rng.RandomInRange(rule.Low, rule.High)
	if err != nil {
		return domain.Player{}, fmt.Errorf("failed to draw %s stat: %w", pos, err)
	}

	attack, defense := rule.Stats(drawn)
	return domain.NewPlayer(f.ids.NextID(), pos, attack, defense)
}
