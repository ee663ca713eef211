// SPDX-License-Identifier: MIT
// Package: costar/builder
//
// casts.go: Casts(movies, castSize, actors) generator.
//
// Model:
//   - A pool of actors performer indices [0, actors).
//   - Each movie draws castSize distinct indices by a partial Fisher-Yates
//     shuffle of the pool; the pool is not reset between movies.
//   - With WithReference, the first cast slot of the first movie is the
//     reference performer instead of a pool draw.
//
// Contract:
//   - movies ≥ 1, castSize ≥ 2, actors ≥ castSize (else ErrTooFew).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(actors + movies·castSize).
//   - Space: O(actors) for the pool plus the output.
//
// Determinism:
//   - Movies are emitted in index order; members in draw order.

package builder

import (
	"github.com/katalvlaran/costar/collab"
)

const (
	methodCasts  = "Casts"
	minMovies    = 1
	minCastSize  = 2
	firstCastIdx = 0
)

// Casts returns movies synthetic groups of castSize distinct performers each.
func Casts(movies, castSize, actors int, opts ...Option) ([]collab.Group, error) {
	if movies < minMovies {
		return nil, builderErrorf(methodCasts, ErrTooFew, "movies=%d < min=%d", movies, minMovies)
	}
	if castSize < minCastSize {
		return nil, builderErrorf(methodCasts, ErrTooFew, "cast=%d < min=%d", castSize, minCastSize)
	}
	if actors < castSize {
		return nil, builderErrorf(methodCasts, ErrTooFew, "actors=%d < cast=%d", actors, castSize)
	}

	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(methodCasts, ErrNeedRandSource, "use WithSeed or WithRand")
	}

	pool := make([]int, actors)
	for i := range pool {
		pool[i] = i
	}

	groups := make([]collab.Group, 0, movies)
	for m := 0; m < movies; m++ {
		members := make([]string, 0, castSize)
		for k := 0; k < castSize; k++ {
			j := k + cfg.rng.Intn(actors-k)
			pool[k], pool[j] = pool[j], pool[k]
			members = append(members, cfg.idFn(pool[k]))
		}
		if m == 0 && cfg.reference != "" {
			members[firstCastIdx] = cfg.reference
		}
		groups = append(groups, collab.Group{Key: cfg.groupFn(m), Members: members})
	}

	return groups, nil
}
