package farey

import "golang.org/x/exp/constraints"

// approxRight tightens the upper end of the bracket (f1, f2) around target.
//
// Candidates are push(f2, f1, k): increasing k moves monotonically from f2
// towards f1, so "candidate ≥ target" holds for a prefix of k values and the
// largest such k is found by binary search. k is limited to the range where
// the candidate denominator stays within bound.
//
// On an exact hit the candidate is kept when allowEqual is set, otherwise the
// search stops in front of it.
//
// Preconditions: f1 ≤ target ≤ f2, f1.Den ≥ 1, f2.Den ≤ bound.
func approxRight[T constraints.Unsigned](f1, target, f2 Fraction[T], bound T, allowEqual bool) Fraction[T] {
	if isBeyond(f1, f2, bound) {
		return f2
	}

	// push(f2, f1, k).Den ≤ bound  ⇔  k < r
	l, r := T(0), (bound-f2.Den+f1.Den)/f1.Den
	for l+1 < r {
		c := (l + r) / 2
		switch target.Cmp(push(f2, f1, c)) {
		case -1:
			// candidate still above target: step further
			l = c
		case 0:
			if allowEqual {
				l = c
			} else {
				r = c
			}
		default:
			r = c
		}
	}

	return push(f2, f1, l)
}

// approxLeft is the mirror of approxRight: it tightens the lower end of
// (f1, f2) with candidates push(f1, f2, k), keeping the largest k whose
// candidate is still ≤ target.
//
// Preconditions: f1 ≤ target ≤ f2, f2.Den ≥ 1, f1.Den ≤ bound.
func approxLeft[T constraints.Unsigned](f1, target, f2 Fraction[T], bound T, allowEqual bool) Fraction[T] {
	if isBeyond(f1, f2, bound) {
		return f1
	}

	// push(f1, f2, k).Den ≤ bound  ⇔  k < r
	l, r := T(0), (bound-f1.Den+f2.Den)/f2.Den
	for l+1 < r {
		c := (l + r) / 2
		switch target.Cmp(push(f1, f2, c)) {
		case 1:
			// candidate still below target: step further
			l = c
		case 0:
			if allowEqual {
				l = c
			} else {
				r = c
			}
		default:
			r = c
		}
	}

	return push(f1, f2, l)
}
