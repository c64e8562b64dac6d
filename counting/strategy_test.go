package counting

import (
	"bytes"
	"strings"
	"testing"

	"blackjack/game"

	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()
	require.Equal(t, 10, table.Len())
	require.Contains(t, table.Names(), "Hi-Lo")
	require.Contains(t, table.Names(), "No Strategy")

	w, err := table.Weight("Halves", game.Five, false)
	require.NoError(t, err)
	require.Equal(t, 1.5, w)

	w, err = table.Weight("Zen Count", game.Ace, true)
	require.NoError(t, err)
	require.Equal(t, -1.0, w)
}

func TestTableLookup(t *testing.T) {
	_, err := DefaultTable().Lookup("Wong Halves")
	require.ErrorIs(t, err, ErrUnknownStrategy)

	_, err = DefaultTable().Weight("", game.Two, false)
	require.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestNewStrategy(t *testing.T) {
	complete := func() map[string]float64 {
		return map[string]float64{
			"2": 1, "3": 1, "4": 1, "5": 1, "6": 1, "7": 0, "8": 0, "9": 0,
			"10": -1, "J": -1, "Q": -1, "K": -1, "A": -1, DemotedAce: -1,
		}
	}

	t.Run("complete weights", func(t *testing.T) {
		s, err := NewStrategy("Hi-Lo", complete())
		require.NoError(t, err)
		require.Equal(t, complete(), s.Weights())
	})

	t.Run("missing rank", func(t *testing.T) {
		weights := complete()
		delete(weights, "Q")
		_, err := NewStrategy("Hi-Lo", weights)
		require.ErrorIs(t, err, ErrIncompleteStrategy)
	})

	t.Run("missing demoted ace", func(t *testing.T) {
		weights := complete()
		delete(weights, DemotedAce)
		_, err := NewStrategy("Hi-Lo", weights)
		require.ErrorIs(t, err, ErrIncompleteStrategy)
	})

	t.Run("unknown rank", func(t *testing.T) {
		weights := complete()
		weights["Joker"] = 3
		_, err := NewStrategy("Hi-Lo", weights)
		require.Error(t, err)
	})

	t.Run("duplicate names in a table", func(t *testing.T) {
		s, err := NewStrategy("Hi-Lo", complete())
		require.NoError(t, err)
		_, err = NewTable(s, s)
		require.Error(t, err)
	})
}

func TestLoadTable(t *testing.T) {
	t.Run("round trips the default table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, DefaultTable().Write(&buf))

		loaded, err := LoadTable(&buf)
		require.NoError(t, err)
		require.Equal(t, DefaultTable().Names(), loaded.Names())
		for _, name := range loaded.Names() {
			want, _ := DefaultTable().Lookup(name)
			got, _ := loaded.Lookup(name)
			require.Equal(t, want, got, name)
		}
	})

	t.Run("rejects incomplete rows", func(t *testing.T) {
		doc := `
strategies:
  - name: Broken
    weights: {"2": 1, "3": 1}
`
		_, err := LoadTable(strings.NewReader(doc))
		require.ErrorIs(t, err, ErrIncompleteStrategy)
	})

	t.Run("rejects empty tables", func(t *testing.T) {
		_, err := LoadTable(strings.NewReader("strategies: []\n"))
		require.ErrorIs(t, err, ErrIncompleteStrategy)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTableFile("does/not/exist.yaml")
		require.Error(t, err)
	})
}
