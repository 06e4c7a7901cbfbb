package utils

import "golang.org/x/exp/constraints"

// Min returns the smallest of its arguments.
func Min[T constraints.Ordered](x T, rest ...T) T {
	for _, v := range rest {
		if v < x {
			x = v
		}
	}
	return x
}

// Max returns the largest of its arguments.
func Max[T constraints.Ordered](x T, rest ...T) T {
	for _, v := range rest {
		if v > x {
			x = v
		}
	}
	return x
}

// Clamp restricts x to [lo, hi].
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	return Max(lo, Min(x, hi))
}
