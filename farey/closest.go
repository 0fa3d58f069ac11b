package farey

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"
)

// Closest returns the best lower and upper approximations of num/den among
// fractions whose denominator does not exceed maxDen.
//
// Algorithm Outline:
//  1. Validate 0 ≤ num ≤ den, den > 0, maxDen ≥ 1.
//  2. Reduce num/den by its gcd.
//  3. If the reduced denominator is ≤ maxDen the target is representable
//     and (target, target) is returned.
//  4. Otherwise squeeze the Stern–Brocot root bracket 0/1, 1/1 around the
//     target until it stops moving.
//
// Guarantees (for err == nil):
//   - lower.Den ≤ maxDen and upper.Den ≤ maxDen
//   - lower ≤ num/den ≤ upper by value
//   - if !lower.Same(upper): upper.Num·lower.Den − lower.Num·upper.Den = 1
//
// Errors:
//   - ErrZeroDenominator — den == 0.
//   - ErrZeroBound       — maxDen == 0.
//   - ErrOutOfRange      — num > den.
//   - ErrOverflow        — den·maxDen (after reduction) or 2·maxDen does not fit in T.
//
// Complexity: O(log²(maxDen)) time, O(1) memory.
func Closest[T constraints.Unsigned](num, den, maxDen T, opts ...Option[T]) (lower, upper Fraction[T], err error) {
	if err = validate(num, den, maxDen); err != nil {
		return lower, upper, err
	}
	if num > den {
		return lower, upper, fmt.Errorf("%w: %d/%d", ErrOutOfRange, num, den)
	}

	target := reduce(num, den)
	if target.Den <= maxDen {
		return target, target, nil
	}
	if !mulFits(target.Den, maxDen) || !addFits(maxDen, maxDen) {
		return lower, upper, fmt.Errorf("%w: %d/%d with maxDen %d", ErrOverflow, target.Num, target.Den, maxDen)
	}

	o := resolveOptions(opts)
	lower = Fraction[T]{Num: 0, Den: 1}
	upper = Fraction[T]{Num: 1, Den: 1}
	squeeze(&lower, target, &upper, maxDen, o.OnRound)

	return lower, upper, nil
}

// ClosestMixed is Closest for targets of any size: the integer part
// w = num / den is split off, the fractional part is approximated with
// Closest, and both results are shifted back by w.
//
// The bracket keeps the Farey determinant of Closest, since adding w to
// both ends does not change it.
//
// Errors: as Closest minus ErrOutOfRange; ErrOverflow also covers the shift.
func ClosestMixed[T constraints.Unsigned](num, den, maxDen T, opts ...Option[T]) (lower, upper Fraction[T], err error) {
	if err = validate(num, den, maxDen); err != nil {
		return lower, upper, err
	}

	w := num / den
	lower, upper, err = Closest(num%den, den, maxDen, opts...)
	if err != nil {
		return Fraction[T]{}, Fraction[T]{}, err
	}
	if lower, err = shift(lower, w); err != nil {
		return Fraction[T]{}, Fraction[T]{}, err
	}
	if upper, err = shift(upper, w); err != nil {
		return Fraction[T]{}, Fraction[T]{}, err
	}

	return lower, upper, nil
}

// Nearest returns the single fraction with denominator ≤ maxDen closest to
// num/den: whichever end of the Closest bracket is nearer. Ties go to the
// lower end.
func Nearest[T constraints.Unsigned](num, den, maxDen T, opts ...Option[T]) (Fraction[T], error) {
	lower, upper, err := Closest(num, den, maxDen, opts...)
	if err != nil {
		return Fraction[T]{}, err
	}
	return nearer(Fraction[T]{Num: num, Den: den}, lower, upper), nil
}

// NearestMixed is Nearest built on ClosestMixed.
func NearestMixed[T constraints.Unsigned](num, den, maxDen T, opts ...Option[T]) (Fraction[T], error) {
	lower, upper, err := ClosestMixed(num, den, maxDen, opts...)
	if err != nil {
		return Fraction[T]{}, err
	}
	return nearer(Fraction[T]{Num: num, Den: den}, lower, upper), nil
}

func validate[T constraints.Unsigned](num, den, maxDen T) error {
	if den == 0 {
		return fmt.Errorf("%w: %d/0", ErrZeroDenominator, num)
	}
	if maxDen == 0 {
		return ErrZeroBound
	}
	return nil
}

// shift adds the integer w to f.
func shift[T constraints.Unsigned](f Fraction[T], w T) (Fraction[T], error) {
	if w == 0 {
		return f, nil
	}
	if !mulFits(w, f.Den) || !addFits(f.Num, w*f.Den) {
		return Fraction[T]{}, fmt.Errorf("%w: %d + %d/%d", ErrOverflow, w, f.Num, f.Den)
	}
	return Fraction[T]{Num: f.Num + w*f.Den, Den: f.Den}, nil
}

// nearer picks the end of lower ≤ target ≤ upper closest to target.
// The distances are compared with math/big: their cross products are
// triple products of T and do not fit T in general.
func nearer[T constraints.Unsigned](target, lower, upper Fraction[T]) Fraction[T] {
	if lower.Same(upper) {
		return lower
	}
	u := func(x T) *big.Int { return new(big.Int).SetUint64(uint64(x)) }

	var dl, du, x big.Int
	// (target − lower)·upper.Den  vs  (upper − target)·lower.Den, all over target.Den
	dl.Mul(u(target.Num), u(lower.Den))
	dl.Sub(&dl, x.Mul(u(lower.Num), u(target.Den)))
	dl.Mul(&dl, u(upper.Den))

	du.Mul(u(upper.Num), u(target.Den))
	du.Sub(&du, x.Mul(u(target.Num), u(upper.Den)))
	du.Mul(&du, u(lower.Den))

	if du.Cmp(&dl) < 0 {
		return upper
	}
	return lower
}
