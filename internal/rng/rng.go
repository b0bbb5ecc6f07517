package rng

import "math"

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// generator draws the seeds returned by Seed
var generator Generator = Crypto{}

// Seed returns a positive int64 suitable for seeding a math/rand source
func Seed() int64 {
	return int64(generator.Intn(math.MaxInt32)) + 1
}
