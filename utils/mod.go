package utils

// FindIndex returns the position of item in slice, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Last returns the trailing n elements of slice (all of it when shorter).
func Last[T any](slice []T, n int) []T {
	if n <= 0 {
		return slice[:0]
	}
	if n >= len(slice) {
		return slice
	}
	return slice[len(slice)-n:]
}
