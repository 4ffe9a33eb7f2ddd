package systems

import (
	"testing"
)

func TestSelectReturnsDistinctWinners(t *testing.T) {
	pool := []int{10, 11, 12, 13, 14, 15, 16}

	for k := 1; k < len(pool); k++ {
		winners, rest := Select(pool, k)
		if len(winners) != k || len(rest) != len(pool)-k {
			t.Fatalf("k=%d: winners %d rest %d", k, len(winners), len(rest))
		}

		seen := make(map[int]bool)
		for _, w := range append(append([]int{}, winners...), rest...) {
			if seen[w] {
				t.Fatalf("k=%d: %d appears twice", k, w)
			}
			seen[w] = true
		}
		if len(seen) != len(pool) {
			t.Fatalf("k=%d: lost elements, got %v", k, seen)
		}
	}
}

func TestSelectKeepsInputAndRestOrder(t *testing.T) {
	pool := []int{1, 2, 3, 4, 5}
	_, rest := Select(pool, 2)

	for i, v := range pool {
		if v != i+1 {
			t.Fatalf("input mutated: %v", pool)
		}
	}
	for i := 1; i < len(rest); i++ {
		if rest[i-1] > rest[i] {
			t.Errorf("rest out of order: %v", rest)
		}
	}
}

func TestSelectPanicsOnPrecondition(t *testing.T) {
	cases := []struct {
		pool []int
		k    int
	}{
		{[]int{1, 2}, 2},
		{[]int{1, 2}, 3},
		{[]int{1, 2, 3}, 0},
		{nil, 1},
	}
	for _, c := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Select(%v, %d) did not panic", c.pool, c.k)
				}
			}()
			Select(c.pool, c.k)
		}()
	}
}

// chiSquare returns the statistic of observed counts against a uniform expectation
func chiSquare(counts []int, expected float64) float64 {
	var x2 float64
	for _, c := range counts {
		d := float64(c) - expected
		x2 += d * d / expected
	}
	return x2
}

func TestSelectUniform(t *testing.T) {
	const (
		n      = 6
		k      = 2
		trials = 30000
		// chi-square critical value, 5 degrees of freedom, p = 0.001
		critical = 20.52
	)

	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}

	chosen := make([]int, n)
	first := make([]int, n)
	for i := 0; i < trials; i++ {
		winners, _ := Select(pool, k)
		first[winners[0]]++
		for _, w := range winners {
			chosen[w]++
		}
	}

	if x2 := chiSquare(chosen, float64(trials*k)/n); x2 > critical {
		t.Errorf("selection counts %v not uniform: chi2 = %.2f", chosen, x2)
	}
	if x2 := chiSquare(first, float64(trials)/n); x2 > critical {
		t.Errorf("first-draw counts %v not uniform: chi2 = %.2f", first, x2)
	}
}
