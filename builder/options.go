// SPDX-License-Identifier: MIT
// Package: costar/builder
//
// options.go: functional options for Casts.
//
// Option constructors validate and panic on nil functions; the generator
// itself returns errors.

package builder

import (
	"math/rand"
	"strings"
)

// Option customizes a Casts call by mutating builderConfig before generation.
type Option func(*builderConfig)

// WithIDScheme sets how performer names are derived from their pool index.
// The function must be injective over [0, actors) or performers merge.
// Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithGroupScheme sets how movie titles are derived from their index.
// Panics on nil.
func WithGroupScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithGroupScheme(nil)")
	}

	return func(c *builderConfig) {
		c.groupFn = fn
	}
}

// WithRand provides an explicit random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a seeded random source so that runs are reproducible.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithReference places name in the first movie, in the first cast slot.
// A blank name clears the setting.
func WithReference(name string) Option {
	return func(c *builderConfig) {
		c.reference = strings.TrimSpace(name)
	}
}
