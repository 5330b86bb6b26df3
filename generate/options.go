// SPDX-License-Identifier: MIT
// Package: mazebot/generate
//
// options.go — functional options and sentinel errors.

package generate

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrTooSmall indicates a size parameter below the constructor's minimum.
var ErrTooSmall = errors.New("generate: size too small")

// ErrNeedRand indicates a stochastic constructor without an RNG.
var ErrNeedRand = errors.New("generate: rng is required")

// Option customizes a constructor by mutating its config.
type Option func(*config)

type config struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Probability of removing a wall that Kruskal kept, in [0,1].
	loops float64
}

func newConfig(opts ...Option) config {
	cfg := config{rng: nil, loops: 0}
	// last-wins
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRand uses r for every random choice. Panics if r is nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed seeds a private RNG, making output reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithLoops removes each surplus wall between two rooms with probability p,
// turning a perfect maze into one with cycles. Panics if p ∉ [0,1].
func WithLoops(p float64) Option {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("generate: WithLoops(%v) outside [0,1]", p))
	}
	return func(c *config) { c.loops = p }
}
