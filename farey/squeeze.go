package farey

import "golang.org/x/exp/constraints"

// squeeze narrows the bracket (*lower, *upper) around target until neither
// side can move any more, then leaves the result in place.
//
// Each round re-derives the right side first and then the left side against
// the new right side: tightening one end shrinks the search range of the
// other, so both are recomputed until a fixed point is reached. Termination
// uses Same, which is sound because every bracket produced here is a Farey
// pair (determinant 1) and therefore already in lowest terms.
func squeeze[T constraints.Unsigned](lower *Fraction[T], target Fraction[T], upper *Fraction[T], bound T, onRound func(int, Fraction[T], Fraction[T])) {
	for round := 1; ; round++ {
		nu := approxRight(*lower, target, *upper, bound, true)
		nl := approxLeft(*lower, target, nu, bound, true)
		if lower.Same(nl) && upper.Same(nu) {
			return
		}
		*lower, *upper = nl, nu
		onRound(round, nl, nu)
	}
}
