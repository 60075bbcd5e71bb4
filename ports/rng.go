package ports

import (
	"hash/fnv"
	"math/rand"
)

// SeededStream creates a deterministic random number generator for a named
// operation. Deriving per-operation streams from one base seed keeps every
// randomized step (noise generation, coordinate shuffling) reproducible while
// avoiding accidental stream sharing between steps.
func SeededStream(name string, baseSeed int64) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(name))
	return rand.New(rand.NewSource(baseSeed ^ int64(h.Sum64())))
}
