package counting

import (
	"errors"
	"fmt"
	"sort"

	"blackjack/game"
)

var (
	ErrUnknownStrategy    = errors.New("unknown counting strategy")
	ErrIncompleteStrategy = errors.New("incomplete counting strategy")
)

// DemotedAce is the table key for an ace that has been re-valued to 1.
const DemotedAce = "A."

const demotedSlot = game.NumRanks

// Strategy assigns a count weight to every rank, with a separate weight for a demoted ace.
type Strategy struct {
	Name    string
	weights [game.NumRanks + 1]float64
}

// NewStrategy builds a strategy from weights keyed by rank name ("2".."10", "J", "Q", "K", "A")
// plus DemotedAce. Every key must be present and no other key is accepted.
func NewStrategy(name string, weights map[string]float64) (Strategy, error) {
	if name == "" {
		return Strategy{}, fmt.Errorf("%w: empty name", ErrIncompleteStrategy)
	}

	s := Strategy{Name: name}
	for _, r := range game.Ranks() {
		w, ok := weights[r.String()]
		if !ok {
			return Strategy{}, fmt.Errorf("%w: %s has no weight for %s", ErrIncompleteStrategy, name, r)
		}
		s.weights[r] = w
	}
	w, ok := weights[DemotedAce]
	if !ok {
		return Strategy{}, fmt.Errorf("%w: %s has no weight for %s", ErrIncompleteStrategy, name, DemotedAce)
	}
	s.weights[demotedSlot] = w

	if len(weights) != len(s.weights) {
		for key := range weights {
			if _, err := game.ParseRank(key); err != nil && key != DemotedAce {
				return Strategy{}, fmt.Errorf("strategy %s: %w", name, err)
			}
		}
	}
	return s, nil
}

// Weight returns the count contribution of a single card.
func (s Strategy) Weight(r game.Rank, demoted bool) float64 {
	if demoted && r == game.Ace {
		return s.weights[demotedSlot]
	}
	return s.weights[r]
}

// Weights returns the strategy in the same keyed form NewStrategy accepts.
func (s Strategy) Weights() map[string]float64 {
	weights := make(map[string]float64, len(s.weights))
	for _, r := range game.Ranks() {
		weights[r.String()] = s.weights[r]
	}
	weights[DemotedAce] = s.weights[demotedSlot]
	return weights
}

// Table is the read-only set of strategies a comparison run can choose from.
type Table struct {
	strategies map[string]Strategy
}

func NewTable(strategies ...Strategy) (Table, error) {
	t := Table{strategies: make(map[string]Strategy, len(strategies))}
	for _, s := range strategies {
		if _, ok := t.strategies[s.Name]; ok {
			return Table{}, fmt.Errorf("duplicate counting strategy %q", s.Name)
		}
		t.strategies[s.Name] = s
	}
	return t, nil
}

func (t Table) Lookup(name string) (Strategy, error) {
	s, ok := t.strategies[name]
	if !ok {
		return Strategy{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s, nil
}

func (t Table) Weight(name string, r game.Rank, demoted bool) (float64, error) {
	s, err := t.Lookup(name)
	if err != nil {
		return 0, err
	}
	return s.Weight(r, demoted), nil
}

// Names lists the registered strategies in sorted order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t.strategies))
	for name := range t.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t Table) Len() int {
	return len(t.strategies)
}
