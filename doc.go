// Package ratapprox finds best rational approximations under a denominator
// bound: for a target num/den and a limit maxDen it returns the closest
// fractions below and above the target whose denominators stay within the
// limit.
//
// 🚀 Where is it useful?
//
//	Anywhere a real ratio has to be realised with small integers:
//		• clock dividers and PLL multipliers
//		• gear trains
//		• sample-rate conversion and display timing
//
// ✨ How is it different?
//
//   - Stern–Brocot bisection with multi-level mediant jumps, located by
//     binary search, instead of an explicit continued-fraction expansion
//   - generic over every built-in unsigned integer type
//   - overflow is detected up front and reported as an error
//   - pure Go, deterministic, allocation-free on the hot path
//
// Layout:
//
//	farey/         — Fraction type, Closest/Nearest and their mixed variants
//	cmd/ratapprox/ — command-line front end
//	examples/      — divider and gear-ratio walkthrough
//
//	go get github.com/katalvlaran/ratapprox/farey
package ratapprox
