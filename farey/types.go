package farey

import "golang.org/x/exp/constraints"

// Fraction is a numerator/denominator pair over an unsigned integer type.
//
// Fraction does not keep itself in lowest terms and does not forbid Den == 0;
// the entry points validate and reduce their input, and every bracket the
// search produces is a Farey pair and therefore already reduced.
//
// Two relations are defined and they are NOT interchangeable:
//   - Same — exact field equality (1/2 and 2/4 differ).
//   - Cmp / Less — value order by cross multiplication (1/2 and 2/4 are equal).
type Fraction[T constraints.Unsigned] struct {
	Num T
	Den T
}

// Same reports whether f and g have identical fields.
// The squeeze loop uses it to detect its fixed point.
func (f Fraction[T]) Same(g Fraction[T]) bool {
	return f.Num == g.Num && f.Den == g.Den
}

// Cmp compares f and g by value and returns -1, 0 or +1.
//
// The comparison is f.Num·g.Den versus g.Num·f.Den, so T must be wide enough
// to hold both products; Closest verifies that for every product it forms.
// Both denominators are assumed to be positive.
func (f Fraction[T]) Cmp(g Fraction[T]) int {
	lhs := f.Num * g.Den
	rhs := g.Num * f.Den
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

// Less reports whether f < g by value.
func (f Fraction[T]) Less(g Fraction[T]) bool {
	return f.Cmp(g) < 0
}

// Float64 returns the nearest float64 to f. Den == 0 yields ±Inf or NaN.
func (f Fraction[T]) Float64() float64 {
	return float64(f.Num) / float64(f.Den)
}
