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

// Package montgomery implements modular multiplication, squaring and
// exponentiation in the Montgomery domain. Residues mod an odd modulus m are
// represented as x*r mod m for the auxiliary modulus r = 2^shift, which turns
// every reduction step into masks and shifts (REDC); no division by m is ever
// performed after context construction.
package montgomery

import (
	"errors"
	"math/big"

	bigmath "github.com/primelabs/bigprime/common/math"
)

// ErrEvenModulus is returned when a context is requested for an even (or
// non-positive) modulus. Montgomery reduction needs the modulus to be
// invertible mod r, a power of two.
var ErrEvenModulus = errors.New("montgomery: modulus must be odd and positive")

var big1 = big.NewInt(1)

// Context carries the constants precomputed for one modulus. It is immutable
// after construction and safe for concurrent use.
type Context struct {
	m     *big.Int // the odd modulus
	shift uint     // bit length of m; the auxiliary modulus is r = 2^shift
	r     *big.Int // 1 << shift, the smallest power of two exceeding m
	mask  *big.Int // r - 1, reduces mod r with a single AND
	rInv  *big.Int // r^-1 mod m
	nInv  *big.Int // m^-1 mod r
	one   *big.Int // the Montgomery form of 1, cached for Exp
}

// NewContext precomputes the reduction constants for the given odd modulus.
func NewContext(modulus *big.Int) (*Context, error) {
	if modulus.Sign() <= 0 || modulus.Bit(0) == 0 {
		return nil, ErrEvenModulus
	}
	c := &Context{
		m:     new(big.Int).Set(modulus),
		shift: uint(modulus.BitLen()),
	}
	c.r = new(big.Int).Lsh(big1, c.shift)
	c.mask = new(big.Int).Sub(c.r, big1)
	c.rInv = bigmath.InversePowerOfTwo(c.shift, c.m)

	// From m*nInv + r*rInv = 1 (mod r): rInv*r - 1 is an exact multiple of
	// m, so the quotient below is plain integer division, not a modular
	// inverse.
	k := new(big.Int).Mul(c.rInv, c.r)
	k.Sub(k, big1)
	k.Div(k, c.m)
	k.And(k, c.mask)
	c.nInv = new(big.Int).Sub(c.r, k)

	c.one = c.ToMont(big1)
	return c, nil
}

// Modulus returns a copy of the context's modulus.
func (c *Context) Modulus() *big.Int {
	return new(big.Int).Set(c.m)
}

// ToMont maps x into the Montgomery domain: (x << shift) mod m.
func (c *Context) ToMont(x *big.Int) *big.Int {
	z := new(big.Int).Lsh(x, c.shift)
	return z.Mod(z, c.m)
}

// FromMont maps x back out of the Montgomery domain: x * r^-1 mod m.
func (c *Context) FromMont(x *big.Int) *big.Int {
	z := new(big.Int).Mul(x, c.rInv)
	return z.Mod(z, c.m)
}

// Mul returns the Montgomery product of a and b: a * b * r^-1 mod m, reduced
// to [0, m). Both operands must already be in Montgomery form. Zero is its
// own representation, so either operand being zero short-circuits.
func (c *Context) Mul(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return new(big.Int)
	}
	t := new(big.Int).Mul(a, b)
	// REDC: u = ((t mod r) * nInv) mod r makes t - u*m divisible by r.
	u := new(big.Int).And(t, c.mask)
	u.Mul(u, c.nInv)
	u.And(u, c.mask)
	u.Mul(u, c.m)
	u.Sub(t, u)
	u.Rsh(u, c.shift)
	if u.Cmp(c.m) >= 0 {
		u.Sub(u, c.m)
	} else if u.Sign() < 0 {
		u.Add(u, c.m)
	}
	return u
}

// Square returns the Montgomery square of a.
func (c *Context) Square(a *big.Int) *big.Int {
	return c.Mul(a, a)
}

// Exp raises base (in Montgomery form) to the given ordinary, non-negative
// exponent, scanning the exponent from its least significant bit upwards and
// squaring the running power once per bit.
func (c *Context) Exp(base, exponent *big.Int) *big.Int {
	result := new(big.Int).Set(c.one)
	power := new(big.Int).Set(base)
	for i, n := 0, exponent.BitLen(); i < n; i++ {
		if exponent.Bit(i) == 1 {
			result = c.Mul(result, power)
		}
		power = c.Mul(power, power)
	}
	return result
}
