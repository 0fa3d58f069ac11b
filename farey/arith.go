package farey

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// gcd returns the greatest common divisor of x and y (Euclid).
// gcd(0, y) == y.
func gcd[T constraints.Unsigned](x, y T) T {
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

// reduce brings num/den to lowest terms. den must be non-zero.
func reduce[T constraints.Unsigned](num, den T) Fraction[T] {
	g := gcd(num, den)
	return Fraction[T]{Num: num / g, Den: den / g}
}

// push is the generalised mediant: it moves k Stern–Brocot levels from
// `from` towards `to` in one step. k == 1 is the ordinary mediant.
func push[T constraints.Unsigned](from, to Fraction[T], k T) Fraction[T] {
	return Fraction[T]{
		Num: from.Num + to.Num*k,
		Den: from.Den + to.Den*k,
	}
}

// isBeyond reports whether even the plain mediant of f1 and f2 would exceed
// the denominator bound.
func isBeyond[T constraints.Unsigned](f1, f2 Fraction[T], bound T) bool {
	return f1.Den+f2.Den > bound
}

// mulFits reports whether a·b is representable in T.
func mulFits[T constraints.Unsigned](a, b T) bool {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	return hi == 0 && lo <= uint64(^T(0))
}

// addFits reports whether a+b is representable in T.
func addFits[T constraints.Unsigned](a, b T) bool {
	return a <= ^T(0)-b
}
