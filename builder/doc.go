// SPDX-License-Identifier: MIT

// Package builder generates synthetic cast lists for benchmarks, fixtures and
// the datagen command.
//
// Casts(movies, castSize, actors) draws castSize distinct performers for each
// of movies groups out of a pool of actors names. Generation is stochastic but
// reproducible: the same seed and options always produce the same groups in
// the same order.
//
// Knobs are functional options applied in order (last wins):
//
//   - WithSeed / WithRand: the random source (required).
//   - WithIDScheme:        performer names from a pool index.
//   - WithGroupScheme:     movie titles from a movie index.
//   - WithReference:       a named performer placed in the first movie.
//
// Option constructors panic on meaningless input (nil functions); Casts itself
// never panics and reports bad sizes through ErrTooFew.
package builder
