package engine

import "golang.org/x/exp/constraints"

// Min returns the smaller of two ordered values.
func Min[T constraints.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of two ordered values.
func Max[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// Clamp pins v into [low, high].
func Clamp[T constraints.Ordered](v, low, high T) T {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
