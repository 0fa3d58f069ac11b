// SPDX-License-Identifier: MIT
// Package: ratapprox/farey
//
// errors.go — sentinel errors for the farey package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Entry points attach the offending arguments with %w wrapping.
//   • The search itself never fails once the input passed validation.

package farey

import "errors"

// ErrZeroDenominator indicates the target was given with den == 0.
var ErrZeroDenominator = errors.New("farey: zero denominator")

// ErrZeroBound indicates maxDen == 0; no fraction has a denominator ≤ 0.
var ErrZeroBound = errors.New("farey: denominator bound must be at least 1")

// ErrOutOfRange indicates num > den. The search starts from the bracket
// 0/1, 1/1 and only covers the unit interval; use ClosestMixed for targets
// above one.
// Usage: if errors.Is(err, ErrOutOfRange) { /* split the integer part */ }.
var ErrOutOfRange = errors.New("farey: target outside [0, 1]")

// ErrOverflow indicates the integer type is too narrow for the products the
// search has to form (den·maxDen and 2·maxDen must be representable).
// Usage: if errors.Is(err, ErrOverflow) { /* retry with a wider type */ }.
var ErrOverflow = errors.New("farey: integer type too narrow")
