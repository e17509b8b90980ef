package internal

import (
	"iter"
	"slices"
)

// Permutations yields every ordering of values, using Heap's algorithm.
// Each yielded slice is a fresh copy owned by the consumer.
func Permutations[T any](values []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		perm := slices.Clone(values)
		if !yield(slices.Clone(perm)) {
			return
		}

		c := make([]int, len(perm))
		for i := 1; i < len(perm); {
			if c[i] < i {
				k := 0
				if i%2 == 1 {
					k = c[i]
				}
				perm[i], perm[k] = perm[k], perm[i]
				c[i]++
				i = 1
				if !yield(slices.Clone(perm)) {
					return
				}
			} else {
				c[i] = 0
				i++
			}
		}
	}
}
