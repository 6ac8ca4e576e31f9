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

// Package primality implements the Miller-Rabin probabilistic primality test
// over Montgomery arithmetic. A composite verdict comes with the witness
// base that proved it and, opportunistically, a non-trivial divisor of the
// input recovered from a shared factor or a non-trivial square root of one.
package primality

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/log"

	bigmath "github.com/primelabs/bigprime/common/math"
	"github.com/primelabs/bigprime/montgomery"
	"github.com/primelabs/bigprime/params"
)

var (
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
	big3 = big.NewInt(3)
)

// Test runs the Miller-Rabin test on n and returns the verdict. A nil cfg
// selects DefaultConfig. The call is synchronous and shares no state with
// concurrent calls; offloading it to a goroutine is safe.
//
// Negative inputs are permitted: the sign is stripped for testing and
// reattached to the result's N.
func Test(n *big.Int, cfg *Config) (*Result, error) {
	conf := cfg.withDefaults()

	abs := new(big.Int).Abs(n)
	result := &Result{N: new(big.Int).Set(n)}

	// Trivial cases: below two is composite by convention, two and three
	// are prime, and any larger even number is settled by its factor two
	// before a single round runs.
	switch {
	case abs.Cmp(big2) < 0:
		return result, nil
	case abs.Cmp(big3) <= 0:
		result.ProbablePrime = true
		return result, nil
	case abs.Bit(0) == 0:
		result.Divisor = big.NewInt(2)
		return result, nil
	}

	// Decompose |n|-1 = d * 2^r with d odd.
	nMinus1 := new(big.Int).Sub(abs, big1)
	r := bigmath.TwoAdicity(nMinus1)
	d := new(big.Int).Rsh(nMinus1, r)

	ctx, err := montgomery.NewContext(abs)
	if err != nil {
		// Unreachable through the even short-circuit above, kept as a
		// guard against drift between the two checks.
		return nil, err
	}
	montOne := ctx.ToMont(big1)
	montMinusOne := ctx.ToMont(nMinus1)

	bases, rounds, err := resolveBases(abs, &conf)
	if err != nil {
		return nil, err
	}

	for i := 0; i < rounds; i++ {
		var a *big.Int
		if bases != nil {
			a = bases[i]
		} else {
			if a, err = randomBase(conf.Rand, abs); err != nil {
				return nil, err
			}
		}
		witness, divisor := testRound(ctx, abs, a, d, r, montOne, montMinusOne, !conf.SkipDivisor)
		if witness {
			// A single witness is definitive; no further rounds.
			result.Witness = new(big.Int).Set(a)
			result.Divisor = divisor
			log.Debug("Compositeness witness found", "n", result.N, "witness", a, "divisor", divisor, "round", i)
			return result, nil
		}
		log.Trace("Miller-Rabin round passed", "n", result.N, "base", a, "round", i)
	}
	result.ProbablePrime = true
	return result, nil
}

// TestString coerces a decimal string and tests it. An unparsable string
// fails with ErrInputFormat before any arithmetic.
func TestString(s string, cfg *Config) (*Result, error) {
	n, ok := bigmath.ParseBig(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInputFormat, s)
	}
	return Test(n, cfg)
}

// TestUint64 tests a fixed-width integer.
func TestUint64(v uint64, cfg *Config) (*Result, error) {
	return Test(new(big.Int).SetUint64(v), cfg)
}

// resolveBases validates an explicit base list or fixes the number of random
// rounds. The returned slice is nil when bases are to be drawn at random.
func resolveBases(n *big.Int, conf *Config) ([]*big.Int, int, error) {
	if len(conf.Bases) > 0 {
		max := new(big.Int).Sub(n, big2)
		for _, b := range conf.Bases {
			if b == nil {
				return nil, 0, ErrNilBase
			}
			if b.Cmp(big2) < 0 || b.Cmp(max) > 0 {
				return nil, 0, &BaseRangeError{Base: new(big.Int).Set(b), N: new(big.Int).Set(n)}
			}
		}
		return conf.Bases, len(conf.Bases), nil
	}
	if conf.Rounds > 0 {
		return nil, conf.Rounds, nil
	}
	return nil, params.MillerRabinRounds(n.BitLen()), nil
}

// randomBase draws a uniform base in [2, n-2]. Requires n >= 5, which holds
// for every input surviving the trivial cases.
func randomBase(rnd io.Reader, n *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(n, big3) // |[2, n-2]| = n-3
	a, err := rand.Int(rnd, span)
	if err != nil {
		return nil, err
	}
	return a.Add(a, big2), nil
}

// testRound runs one Miller-Rabin round for base a. It reports whether a is
// a witness to the compositeness of n and, when divisor recovery is enabled,
// a non-trivial divisor of n if one fell out of the round.
//
// Returning from here is the single exit shared by the gcd early-out, the
// inner squaring chain and its exhaustion, which keeps the two-level loop
// termination of the search explicit.
func testRound(ctx *montgomery.Context, n, a, d *big.Int, r uint, montOne, montMinusOne *big.Int, findDivisor bool) (bool, *big.Int) {
	if findDivisor {
		// A shared factor is a stronger result than a Miller-Rabin
		// witness and ends the round immediately. gcd(n, a) < n holds
		// because a <= n-2.
		if g := bigmath.BinaryGCD(n, a); g.Cmp(big1) != 0 {
			return true, g
		}
	}

	x := ctx.Exp(ctx.ToMont(a), d)
	if x.Cmp(montOne) == 0 || x.Cmp(montMinusOne) == 0 {
		return false, nil
	}

	for i := uint(0); i < r; i++ {
		prev := x
		x = ctx.Square(x)
		if x.Cmp(montOne) == 0 {
			// prev is a square root of 1 other than +-1, so
			// gcd(prev-1, n) splits n.
			return true, recoverDivisor(ctx, prev, n, findDivisor)
		}
		if x.Cmp(montMinusOne) == 0 {
			return false, nil
		}
	}
	// The chain never reached +-1: a is a witness by exhaustion. The final
	// value is a^(n-1); when it is 1 mod a prime factor only, the same gcd
	// trick still splits n.
	return true, recoverDivisor(ctx, x, n, findDivisor)
}

// recoverDivisor attempts to extract a non-trivial divisor of n from a value
// y (in Montgomery form) with y^2 = 1-ish structure, via gcd(y-1, n).
// Trivial outcomes are discarded.
func recoverDivisor(ctx *montgomery.Context, y, n *big.Int, findDivisor bool) *big.Int {
	if !findDivisor {
		return nil
	}
	v := ctx.FromMont(y)
	v.Sub(v, big1)
	g := bigmath.BinaryGCD(v, n)
	if g.Cmp(big1) == 0 || g.Cmp(n) == 0 {
		return nil
	}
	return g
}
