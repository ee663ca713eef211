// SPDX-License-Identifier: MIT
// Package: costar/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Call sites attach context (method, parameter values) with %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFew indicates that a size parameter (movies, cast size, actor pool)
// is below the minimum the generator can honor.
var ErrTooFew = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that no random source was configured.
// Supply WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf prefixes a formatted message with the method name and wraps
// the given sentinel.
func builderErrorf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
