// SPDX-License-Identifier: MIT
// Package: costar/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Defaults:
//   • idFn    = SymbolNumberIDFn("Actor ")  ("Actor 0","Actor 1",...)
//   • groupFn = SymbolNumberIDFn("Movie ")  ("Movie 0","Movie 1",...)
//   • rng     = nil                          (Casts rejects it)
//   • reference unset

package builder

import (
	"math/rand"
)

const (
	defaultActorPrefix = "Actor "
	defaultMoviePrefix = "Movie "
)

// builderConfig aggregates all knobs used by Casts. It is passed by value.
type builderConfig struct {
	idFn      IDFn
	groupFn   IDFn
	rng       *rand.Rand
	reference string
}

// newBuilderConfig applies opts over the defaults in order.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:    SymbolNumberIDFn(defaultActorPrefix),
		groupFn: SymbolNumberIDFn(defaultMoviePrefix),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
