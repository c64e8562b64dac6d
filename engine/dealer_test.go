package engine

import (
	"testing"

	"blackjack/counting"
	"blackjack/game"

	"github.com/stretchr/testify/require"
)

func TestPlayDealer(t *testing.T) {
	hiLo := mustStrategy(t, "Hi-Lo")

	t.Run("dealer busts", func(t *testing.T) {
		shoe := game.NewStackedShoe(game.King)
		dealer := game.NewHand(game.Ten, game.Six)

		got, count, err := PlayDealer(shoe, &dealer, 12, counting.State{}, hiLo)
		require.NoError(t, err)
		require.Equal(t, Win, got)
		require.Equal(t, -1.0, count.Running, "Drawn card should be counted")
		require.Equal(t, 0, shoe.Remaining())
	})

	t.Run("dealer reaching 21 beats the player", func(t *testing.T) {
		shoe := game.NewStackedShoe(game.Five)
		dealer := game.NewHand(game.Ten, game.Six)

		got, count, err := PlayDealer(shoe, &dealer, 20, counting.State{Running: 2}, hiLo)
		require.NoError(t, err)
		require.Equal(t, Loss, got)
		require.Equal(t, 3.0, count.Running)
	})

	t.Run("soft bust demotes the ace and keeps drawing", func(t *testing.T) {
		shoe := game.NewStackedShoe(game.King, game.Two, game.Two, game.Ten)
		dealer := game.NewHand(game.Ace, game.Five)

		got, _, err := PlayDealer(shoe, &dealer, 19, counting.State{}, hiLo)
		require.NoError(t, err)
		// A5 K -> 26, demoted to 16, then 2 -> 18
		require.Equal(t, Win, got)
		require.Equal(t, 18, dealer.Total())
		require.Equal(t, 2, shoe.Remaining())
	})

	t.Run("stands on soft 17", func(t *testing.T) {
		shoe := game.NewStackedShoe(game.Two)
		dealer := game.NewHand(game.Ace, game.Six)

		got, _, err := PlayDealer(shoe, &dealer, 17, counting.State{}, hiLo)
		require.NoError(t, err)
		require.Equal(t, Draw, got)
		require.Equal(t, 1, shoe.Remaining(), "Dealer should not draw on 17")
	})

	t.Run("compares totals", func(t *testing.T) {
		tests := []struct {
			player int
			want   Result
		}{
			{19, Win},
			{18, Draw},
			{17, Loss},
		}
		for _, tt := range tests {
			dealer := game.NewHand(game.Ten, game.Eight)
			got, _, err := PlayDealer(game.NewStackedShoe(), &dealer, tt.player, counting.State{}, hiLo)
			require.NoError(t, err)
			require.Equal(t, tt.want, got, "player total %d", tt.player)
		}
	})

	t.Run("fails on an exhausted shoe", func(t *testing.T) {
		dealer := game.NewHand(game.Ten, game.Two)
		_, _, err := PlayDealer(game.NewStackedShoe(), &dealer, 15, counting.State{}, hiLo)
		require.ErrorIs(t, err, game.ErrExhaustedShoe)
	})
}
