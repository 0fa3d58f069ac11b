// Package farey finds the best rational approximations of a target fraction
// under a denominator bound.
//
// 🚀 What does it compute?
//
//	Given a target num/den in [0, 1] and a bound maxDen, Closest returns the
//	pair lower ≤ num/den ≤ upper of fractions with denominators ≤ maxDen
//	that sit closest to the target on each side. When the target itself has
//	a small enough denominator both ends equal the (reduced) target;
//	otherwise lower and upper are neighbours in the Farey sequence of order
//	maxDen, i.e. upper.Num·lower.Den − lower.Num·upper.Den = 1.
//
//	Typical uses: gear ratios, clock-divider ratios, display timing.
//
// ⚙️ How?
//
//	The search walks the Stern–Brocot tree from the root bracket 0/1, 1/1.
//	Instead of taking one mediant at a time it jumps k levels at once
//	(from + to·k) and locates the best k by binary search, alternating the
//	right and the left side of the bracket until neither moves.
//
// Usage:
//
//	import "github.com/katalvlaran/ratapprox/farey"
//
//	lo, hi, err := farey.Closest[uint64](1, 3, 2)
//	// lo = 0/1, hi = 1/2
//
// Numeric width:
//
//	Fraction is generic over the built-in unsigned integers. Cross
//	products of size den·maxDen must fit in T; Closest checks this up front
//	and returns ErrOverflow instead of silently wrapping around.
//
// Complexity: O(log²(maxDen)) comparisons, no allocations.
package farey
