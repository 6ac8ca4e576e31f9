// Copyright 2023 The bigprime Authors
// This file is part of the bigprime library.
//
// The bigprime library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The bigprime library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the bigprime library. If not, see <http://www.gnu.org/licenses/>.

// Package math provides the integer helpers underpinning the Montgomery
// engine: 2-adic valuation, binary gcd and the right-shift inversion of a
// power of two modulo an odd number.
package math

import "math/big"

// TwoAdicity returns the multiplicity of the factor two in n, i.e. the
// largest k such that 2^k divides n. The valuation of zero is defined to be
// zero so that callers never spin on an empty value. The sign of n is
// ignored.
func TwoAdicity(n *big.Int) uint {
	if n.Sign() == 0 {
		return 0
	}
	return n.TrailingZeroBits()
}

// BinaryGCD returns the greatest common divisor of a and b, computed with
// Stein's algorithm: only shifts, comparisons and subtraction, no division.
// Either operand may be zero, in which case the other one is returned.
// See Knuth, The Art of Computer Programming, Vol. 2, Section 4.5.2,
// Algorithm B.
func BinaryGCD(a, b *big.Int) *big.Int {
	u := new(big.Int).Abs(a)
	v := new(big.Int).Abs(b)
	if u.Sign() == 0 {
		return v
	}
	if v.Sign() == 0 {
		return u
	}
	// Strip the common factors of two; they re-enter via the final shift.
	k := u.TrailingZeroBits()
	if vk := v.TrailingZeroBits(); vk < k {
		k = vk
	}
	u.Rsh(u, k)
	v.Rsh(v, k)

	// t carries the signed difference u-v; its sign picks the side to
	// replace, and the loop ends exactly when the two sides meet.
	t := new(big.Int)
	if u.Bit(0) == 1 {
		t.Neg(v)
	} else {
		t.Set(u)
	}
	for t.Sign() != 0 {
		t.Rsh(t, t.TrailingZeroBits())
		if t.Sign() < 0 {
			v.Neg(t)
		} else {
			u.Set(t)
		}
		t.Sub(u, v)
	}
	return u.Lsh(u, k)
}

// InversePowerOfTwo returns the modular inverse of 2^exp modulo the odd
// modulus m, using Penk's right-shift method: a value that is odd before a
// halving step has the modulus added first, which keeps it even without
// changing its residue class. The result is undefined for even m.
func InversePowerOfTwo(exp uint, m *big.Int) *big.Int {
	inv := big.NewInt(1)
	for i := uint(0); i < exp; i++ {
		if inv.Bit(0) == 1 {
			inv.Add(inv, m)
		}
		inv.Rsh(inv, 1)
	}
	return inv
}
