package counting

import "blackjack/game"

// Weights per rank 2,3,4,5,6,7,8,9,10,J,Q,K,A and the demoted ace.
var defaultRows = []struct {
	name string
	row  [game.NumRanks + 1]float64
}{
	{"Hi-Lo", [14]float64{1, 1, 1, 1, 1, 0, 0, 0, -1, -1, -1, -1, -1, -1}},
	{"Hi-Opt I", [14]float64{0, 1, 1, 1, 1, 0, 0, 0, -1, -1, -1, -1, 0, 0}},
	{"Hi-Opt II", [14]float64{1, 1, 2, 2, 1, 1, 0, 0, -2, -2, -2, -2, 0, 0}},
	{"KO", [14]float64{1, 1, 1, 1, 1, 1, 0, 0, -1, -1, -1, -1, -1, -1}},
	{"Omega II", [14]float64{1, 1, 2, 2, 2, 1, 0, -1, -2, -2, -2, -2, 0, 0}},
	{"Red 7", [14]float64{1, 1, 1, 1, 1, 0, 0, 0, -1, -1, -1, -1, -1, -1}},
	{"Halves", [14]float64{.5, 1, 1, 1.5, 1, .5, 0, -.5, -1, -1, -1, -1, -1, -1}},
	{"Zen Count", [14]float64{1, 1, 2, 2, 2, 1, 0, 0, -2, -2, -2, -2, -1, -1}},
	{"Double It", [14]float64{2, 2, 2, 2, 2, 0, 0, 0, -2, -2, -2, -2, -2, -2}},
	{"No Strategy", [14]float64{}},
}

// DefaultTable returns the built-in counting systems.
func DefaultTable() Table {
	strategies := make([]Strategy, len(defaultRows))
	for i, d := range defaultRows {
		strategies[i] = Strategy{Name: d.name, weights: d.row}
	}
	t, err := NewTable(strategies...)
	if err != nil {
		panic(err)
	}
	return t
}
