package systems

import (
	"fmt"
	"math/rand/v2"
)

// Select draws k distinct elements uniformly at random without replacement
// Returns the winners in draw order and the remaining pool in its original order
// The pool must hold more than k elements; anything else is a caller bug and panics
func Select[T any](pool []T, k int) (winners, rest []T) {
	if k < 1 || len(pool) <= k {
		panic(fmt.Sprintf("systems: select %d winners from %d participants", k, len(pool)))
	}

	rest = make([]T, len(pool))
	copy(rest, pool)
	winners = make([]T, 0, k)

	for i := 0; i < k; i++ {
		idx := rand.IntN(len(rest))
		winners = append(winners, rest[idx])
		rest = append(rest[:idx], rest[idx+1:]...)
	}
	return winners, rest
}
