// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps math/rand so that mine layouts can be reproduced from a seed.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService creates a service with the given seed.
// A zero seed means "use the current time".
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		seed: seed,
		rng:  rand.New(source),
	}
}

// Seed returns the seed the service was created with.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn returns a random integer in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// SampleIndices picks k distinct values from [0, n) uniformly at random.
// It runs a partial Fisher–Yates shuffle, so the cost is O(n) regardless of k.
func (s *PRNGService) SampleIndices(n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + s.rng.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
