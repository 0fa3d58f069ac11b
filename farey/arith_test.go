package farey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type f64 = Fraction[uint64]

// TestGCD covers the zero cases and ordinary pairs.
func TestGCD(t *testing.T) {
	assert.Equal(t, uint64(6), gcd[uint64](12, 18))
	assert.Equal(t, uint64(6), gcd[uint64](18, 12))
	assert.Equal(t, uint64(7), gcd[uint64](0, 7), "gcd(0, y) == y")
	assert.Equal(t, uint64(7), gcd[uint64](7, 0))
	assert.Equal(t, uint64(1), gcd[uint64](13, 8))
	assert.Equal(t, uint8(5), gcd[uint8](250, 5))
}

// TestReduce verifies lowest terms, including the zero numerator.
func TestReduce(t *testing.T) {
	assert.Equal(t, f64{Num: 2, Den: 3}, reduce[uint64](4, 6))
	assert.Equal(t, f64{Num: 0, Den: 1}, reduce[uint64](0, 9))
	assert.Equal(t, f64{Num: 1, Den: 1}, reduce[uint64](5, 5))
	assert.Equal(t, f64{Num: 7, Den: 11}, reduce[uint64](7, 11))
}

// TestPush checks the plain mediant and multi-level jumps.
func TestPush(t *testing.T) {
	zero, one := f64{Num: 0, Den: 1}, f64{Num: 1, Den: 1}

	assert.Equal(t, f64{Num: 1, Den: 2}, push(zero, one, 1), "mediant of 0/1 and 1/1")
	assert.Equal(t, f64{Num: 1, Den: 4}, push(one, zero, 3), "three steps from 1/1 towards 0/1")
	assert.Equal(t, f64{Num: 3, Den: 4}, push(zero, one, 3))
	assert.Equal(t, one, push(one, zero, 0), "k == 0 leaves from unchanged")
}

// TestIsBeyond checks the guard right at the bound.
func TestIsBeyond(t *testing.T) {
	a, b := f64{Num: 1, Den: 3}, f64{Num: 2, Den: 5}
	assert.True(t, isBeyond(a, b, 7))
	assert.False(t, isBeyond(a, b, 8), "3+5 == 8 is still inside the bound")
}

// TestOverflowHelpers exercises mulFits and addFits on a narrow type.
func TestOverflowHelpers(t *testing.T) {
	assert.True(t, mulFits[uint8](15, 17))
	assert.False(t, mulFits[uint8](16, 16))
	assert.True(t, mulFits[uint8](0, 255))
	assert.True(t, addFits[uint8](200, 55))
	assert.False(t, addFits[uint8](200, 56))
	assert.True(t, mulFits[uint64](1<<32-1, 1<<32+1))
	assert.False(t, mulFits[uint64](1<<32, 1<<32))
}

// TestShift covers the integer shift used by ClosestMixed.
func TestShift(t *testing.T) {
	got, err := shift(f64{Num: 1, Den: 3}, 2)
	require.NoError(t, err)
	assert.Equal(t, f64{Num: 7, Den: 3}, got)

	_, err = shift(Fraction[uint8]{Num: 1, Den: 2}, 200)
	assert.ErrorIs(t, err, ErrOverflow)
}

// TestApproxRight covers the guard, an ordinary search and both
// treatments of an exact hit.
func TestApproxRight(t *testing.T) {
	zero, one := f64{Num: 0, Den: 1}, f64{Num: 1, Den: 1}
	half := f64{Num: 1, Den: 2}

	assert.Equal(t, half, approxRight(zero, f64{Num: 1, Den: 3}, one, 2, true))
	assert.Equal(t, half, approxRight(zero, half, one, 10, true), "exact hit kept")
	assert.Equal(t, one, approxRight(zero, half, one, 10, false), "exact hit not stepped onto")

	// 1/3 and 2/5 cannot be split with denominators ≤ 7.
	a, b := f64{Num: 1, Den: 3}, f64{Num: 2, Den: 5}
	assert.Equal(t, b, approxRight(a, f64{Num: 3, Den: 8}, b, 7, true))
}

// TestApproxLeft mirrors TestApproxRight.
func TestApproxLeft(t *testing.T) {
	zero, one := f64{Num: 0, Den: 1}, f64{Num: 1, Den: 1}
	half := f64{Num: 1, Den: 2}

	assert.Equal(t, f64{Num: 1, Den: 3}, approxLeft(zero, f64{Num: 3, Den: 8}, half, 7, true))
	assert.Equal(t, half, approxLeft(zero, half, one, 10, true), "exact hit kept")
	assert.Equal(t, zero, approxLeft(zero, half, one, 10, false), "exact hit not stepped onto")

	a, b := f64{Num: 1, Den: 3}, f64{Num: 2, Den: 5}
	assert.Equal(t, a, approxLeft(a, f64{Num: 3, Den: 8}, b, 7, true))
}

// TestSqueeze_Rounds records every round of a two-round search and checks
// that each intermediate bracket is a Farey pair around the target.
func TestSqueeze_Rounds(t *testing.T) {
	target := f64{Num: 3, Den: 8}
	lower, upper := f64{Num: 0, Den: 1}, f64{Num: 1, Den: 1}

	type round struct {
		n      int
		lo, hi f64
	}
	var rounds []round
	squeeze(&lower, target, &upper, 7, func(n int, lo, hi f64) {
		rounds = append(rounds, round{n, lo, hi})
		assert.Equal(t, uint64(1), hi.Num*lo.Den-lo.Num*hi.Den, "round %d is not a Farey pair", n)
		assert.False(t, target.Less(lo), "round %d: lower above target", n)
		assert.False(t, hi.Less(target), "round %d: upper below target", n)
	})

	require.Len(t, rounds, 2)
	assert.Equal(t, round{1, f64{Num: 1, Den: 3}, f64{Num: 1, Den: 2}}, rounds[0])
	assert.Equal(t, round{2, f64{Num: 1, Den: 3}, f64{Num: 2, Den: 5}}, rounds[1])
	assert.Equal(t, f64{Num: 1, Den: 3}, lower)
	assert.Equal(t, f64{Num: 2, Den: 5}, upper)
}

// TestNearer checks both sides and the tie rule.
func TestNearer(t *testing.T) {
	zero, one := f64{Num: 0, Den: 1}, f64{Num: 1, Den: 1}
	assert.Equal(t, zero, nearer(f64{Num: 1, Den: 2}, zero, one), "tie resolves to lower")
	assert.Equal(t, one, nearer(f64{Num: 3, Den: 5}, zero, one))
	assert.Equal(t, zero, nearer(f64{Num: 2, Den: 5}, zero, one))
}
