package internal

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermutations(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		values []int
		count  int
	}{
		{[]int{}, 1},
		{[]int{7}, 1},
		{[]int{1, 2}, 2},
		{[]int{1, 2, 3}, 6},
		{[]int{0, 1, 2, 3, 4}, 120},
	}

	for _, entry := range table {
		seen := map[string]bool{}
		for perm := range Permutations(entry.values) {
			assert.Len(perm, len(entry.values))
			sorted := slices.Clone(perm)
			slices.Sort(sorted)
			assert.Equal(entry.values, sorted)
			seen[fmt.Sprint(perm)] = true
		}
		assert.Len(seen, entry.count, "%v", entry.values)
	}
}

func TestPermutationsCopies(t *testing.T) {
	assert := assert.New(t)

	values := []int{1, 2, 3}
	var all [][]int
	for perm := range Permutations(values) {
		all = append(all, perm)
	}
	assert.Equal([]int{1, 2, 3}, values)
	assert.Equal([]int{1, 2, 3}, all[0])
	assert.NotEqual(all[0], all[1])
}
