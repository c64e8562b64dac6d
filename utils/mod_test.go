package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	items := []string{"2", "3", "A"}
	require.Equal(t, 2, FindIndex(items, "A"))
	require.Equal(t, -1, FindIndex(items, "A."))
}

func TestLast(t *testing.T) {
	t.Run("shorter than window", func(t *testing.T) {
		require.Equal(t, []int{1, 2}, Last([]int{1, 2}, 10))
	})

	t.Run("trailing elements", func(t *testing.T) {
		require.Equal(t, []int{3, 4}, Last([]int{1, 2, 3, 4}, 2))
	})

	t.Run("empty window", func(t *testing.T) {
		require.Empty(t, Last([]int{1, 2}, 0))
	})
}
