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

package primality_test

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bigmath "github.com/primelabs/bigprime/common/math"
	"github.com/primelabs/bigprime/primality"
)

func testInt64(t *testing.T, n int64, cfg *primality.Config) *primality.Result {
	t.Helper()
	res, err := primality.Test(big.NewInt(n), cfg)
	if err != nil {
		t.Fatalf("Test(%d): %v", n, err)
	}
	return res
}

func withBases(bases ...int64) *primality.Config {
	cfg := primality.DefaultConfig
	for _, b := range bases {
		cfg.Bases = append(cfg.Bases, big.NewInt(b))
	}
	return &cfg
}

func TestTrivialCases(t *testing.T) {
	for _, n := range []int64{0, 1} {
		res := testInt64(t, n, nil)
		if res.ProbablePrime || res.Witness != nil || res.Divisor != nil {
			t.Errorf("Test(%d) = %v, want bare composite", n, res)
		}
	}
	for _, n := range []int64{2, 3, -2, -3} {
		res := testInt64(t, n, nil)
		if !res.ProbablePrime {
			t.Errorf("Test(%d) = %v, want prime", n, res)
		}
		if res.N.Int64() != n {
			t.Errorf("Test(%d): result N = %v, sign not preserved", n, res.N)
		}
	}
}

func TestEvenShortCircuit(t *testing.T) {
	for _, n := range []int64{4, 100, 1000000, -8} {
		res := testInt64(t, n, nil)
		if res.ProbablePrime {
			t.Fatalf("Test(%d): declared prime", n)
		}
		if res.Divisor == nil || res.Divisor.Int64() != 2 {
			t.Errorf("Test(%d): divisor = %v, want 2", n, res.Divisor)
		}
		if res.Witness != nil {
			t.Errorf("Test(%d): unexpected witness %v", n, res.Witness)
		}
	}
}

func TestSmallNumbers(t *testing.T) {
	primes := map[int64]bool{
		2: true, 3: true, 5: true, 7: true, 11: true, 13: true, 17: true,
		19: true, 23: true, 29: true, 31: true, 37: true, 41: true, 43: true,
		47: true, 53: true, 59: true, 61: true, 67: true, 71: true, 73: true,
		79: true, 83: true, 89: true, 97: true,
	}
	for n := int64(0); n < 100; n++ {
		res := testInt64(t, n, nil)
		if res.ProbablePrime != primes[n] {
			t.Errorf("Test(%d): prime = %v, want %v", n, res.ProbablePrime, primes[n])
		}
	}
}

// The default configuration draws random bases and runs a gcd per round for
// divisor recovery; the verdict on a small composite must come back promptly
// rather than riding on the package test timeout.
func TestDefaultConfig(t *testing.T) {
	type outcome struct {
		res *primality.Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := primality.Test(big.NewInt(91), nil)
		done <- outcome{res, err}
	}()
	select {
	case out := <-done:
		require.NoError(t, out.err)
		require.False(t, out.res.ProbablePrime)
	case <-time.After(time.Minute):
		t.Fatal("Test(91, nil) did not return")
	}
}

// The worked example from the package documentation: 7 divides 91, and base
// 23 exposes it through a non-trivial square root of one.
func TestComposite91(t *testing.T) {
	res := testInt64(t, 91, withBases(23))
	require.False(t, res.ProbablePrime)
	require.NotNil(t, res.Witness)
	require.Equal(t, int64(23), res.Witness.Int64())
	require.NotNil(t, res.Divisor)
	require.Equal(t, int64(7), res.Divisor.Int64())
}

// 341 = 11 * 31 is a Fermat pseudoprime to base 2, but the squaring chain
// hits one early and recovers a factor.
func TestDivisorFromSquareRoot(t *testing.T) {
	res := testInt64(t, 341, withBases(2))
	require.False(t, res.ProbablePrime)
	require.Equal(t, int64(2), res.Witness.Int64())
	require.NotNil(t, res.Divisor)
	require.Equal(t, int64(31), res.Divisor.Int64())
}

// 561 = 3 * 11 * 17 is a Carmichael number; base 2 still splits it.
func TestCarmichael(t *testing.T) {
	res := testInt64(t, 561, withBases(2))
	require.False(t, res.ProbablePrime)
	require.NotNil(t, res.Divisor)
	require.Equal(t, int64(33), res.Divisor.Int64())
}

func TestDivisorFromSharedFactor(t *testing.T) {
	// gcd(91, 26) = 13: the round ends before any exponentiation.
	res := testInt64(t, 91, withBases(26))
	if res.ProbablePrime {
		t.Fatal("91 declared prime")
	}
	if res.Divisor == nil || res.Divisor.Int64() != 13 {
		t.Fatalf("divisor = %v, want 13", res.Divisor)
	}
	if res.Witness.Int64() != 26 {
		t.Fatalf("witness = %v, want 26", res.Witness)
	}
}

func TestSkipDivisor(t *testing.T) {
	cfg := withBases(23)
	cfg.SkipDivisor = true
	res := testInt64(t, 91, cfg)
	if res.ProbablePrime {
		t.Fatal("91 declared prime")
	}
	if res.Witness == nil || res.Witness.Int64() != 23 {
		t.Fatalf("witness = %v, want 23", res.Witness)
	}
	if res.Divisor != nil {
		t.Fatalf("divisor = %v, want none", res.Divisor)
	}
}

// Squares of primes always give up their root: every witness round ends in
// exhaustion with a^(n-1) = 1 mod p but not mod p^2, so the gcd is exactly p.
func TestPrimeSquare(t *testing.T) {
	for _, p := range []int64{3, 5, 101, 10007} {
		n := new(big.Int).Mul(big.NewInt(p), big.NewInt(p))
		res, err := primality.Test(n, nil)
		if err != nil {
			t.Fatalf("Test(%d^2): %v", p, err)
		}
		if res.ProbablePrime {
			t.Fatalf("%d^2 declared prime", p)
		}
		if res.Divisor == nil || res.Divisor.Int64() != p {
			t.Errorf("Test(%d^2): divisor = %v, want %d", p, res.Divisor, p)
		}
	}
}

func TestKnownPrimes(t *testing.T) {
	primes := []string{
		"3847201213",
		"67280421310721",              // factor of 2^64 + 1
		"2305843009213693951",         // 2^61 - 1
		"618970019642690137449562111", // 2^89 - 1
	}
	for _, ps := range primes {
		res, err := primality.TestString(ps, nil)
		if err != nil {
			t.Fatalf("TestString(%s): %v", ps, err)
		}
		if !res.ProbablePrime || res.Witness != nil || res.Divisor != nil {
			t.Errorf("TestString(%s) = %v, want clean prime verdict", ps, res)
		}
	}
}

func TestHugePrime(t *testing.T) {
	// 2^521 - 1, a 157-digit Mersenne prime.
	n := new(big.Int).Lsh(big.NewInt(1), 521)
	n.Sub(n, big.NewInt(1))
	res, err := primality.Test(n, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !res.ProbablePrime {
		t.Fatalf("2^521-1 declared composite, witness %v", res.Witness)
	}
}

func TestKnownComposites(t *testing.T) {
	// In order: 2^67 - 1 = 193707721 * 761838257287 (Cole, 1903), the
	// strong pseudoprimes to the individual bases 2, 3 and 5 resp. 2..7,
	// 101 * 103, and 10^24 - 1.
	composites := []string{
		"147573952589676412927",
		"25326001",
		"3215031751",
		"10403",
		"999999999999999999999999",
	}
	for _, cs := range composites {
		n := bigmath.MustParseBig(cs)
		res, err := primality.Test(n, nil)
		if err != nil {
			t.Fatalf("Test(%s): %v", cs, err)
		}
		if res.ProbablePrime {
			t.Errorf("Test(%s): declared prime", cs)
			continue
		}
		if res.Divisor != nil {
			if rem := new(big.Int).Mod(n, res.Divisor); rem.Sign() != 0 {
				t.Errorf("Test(%s): divisor %v does not divide n", cs, res.Divisor)
			}
			if res.Divisor.Cmp(big.NewInt(1)) == 0 || res.Divisor.Cmp(n) == 0 {
				t.Errorf("Test(%s): trivial divisor %v", cs, res.Divisor)
			}
		}
	}
}

func TestNegativeInput(t *testing.T) {
	res := testInt64(t, -7, nil)
	if !res.ProbablePrime {
		t.Fatal("-7: primality must be judged on the absolute value")
	}
	if res.N.Int64() != -7 {
		t.Fatalf("result N = %v, want -7", res.N)
	}
}

func TestExplicitBasesDeterministic(t *testing.T) {
	cfg := withBases(2, 7, 61)
	first := testInt64(t, 4759123141, cfg)
	for i := 0; i < 3; i++ {
		again := testInt64(t, 4759123141, cfg)
		requireSameResult(t, first, again)
	}
}

func requireSameResult(t *testing.T, a, b *primality.Result) {
	t.Helper()
	require.Zero(t, a.N.Cmp(b.N))
	require.Equal(t, a.ProbablePrime, b.ProbablePrime)
	require.Equal(t, a.Witness == nil, b.Witness == nil)
	if a.Witness != nil {
		require.Zero(t, a.Witness.Cmp(b.Witness))
	}
	require.Equal(t, a.Divisor == nil, b.Divisor == nil)
	if a.Divisor != nil {
		require.Zero(t, a.Divisor.Cmp(b.Divisor))
	}
}

func TestBaseRange(t *testing.T) {
	for _, b := range []int64{0, 1, 100, 101, 500} {
		_, err := primality.Test(big.NewInt(101), withBases(b))
		var rangeErr *primality.BaseRangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("base %d: error = %v, want BaseRangeError", b, err)
			continue
		}
		if rangeErr.Base.Int64() != b {
			t.Errorf("base %d: error reports base %v", b, rangeErr.Base)
		}
	}
	// n-2 is the last admissible base.
	if _, err := primality.Test(big.NewInt(101), withBases(99)); err != nil {
		t.Fatalf("base 99 for n=101 rejected: %v", err)
	}
}

func TestNilBase(t *testing.T) {
	cfg := primality.DefaultConfig
	cfg.Bases = []*big.Int{big.NewInt(2), nil}
	_, err := primality.Test(big.NewInt(101), &cfg)
	if !errors.Is(err, primality.ErrNilBase) {
		t.Fatalf("error = %v, want ErrNilBase", err)
	}
}

func TestBasesOverrideRounds(t *testing.T) {
	// With explicit bases the round count request is ignored: exactly one
	// round runs for the single base, and the verdict is reproducible.
	cfg := withBases(2)
	cfg.Rounds = 50
	first := testInt64(t, 341, cfg)
	second := testInt64(t, 341, cfg)
	requireSameResult(t, first, second)
	require.False(t, first.ProbablePrime)
}

func TestStringInput(t *testing.T) {
	res, err := primality.TestString("91", nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.ProbablePrime {
		t.Fatal("91 declared prime")
	}
	for _, bad := range []string{"", "12abc", "ninety-one"} {
		if _, err := primality.TestString(bad, nil); !errors.Is(err, primality.ErrInputFormat) {
			t.Errorf("TestString(%q): error = %v, want ErrInputFormat", bad, err)
		}
	}
}

func TestUint64Input(t *testing.T) {
	res, err := primality.TestUint64(3847201213, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !res.ProbablePrime {
		t.Fatal("3847201213 declared composite")
	}
}

// zeroReader stands in for the randomness capability: all-zero bits make
// every drawn base equal to 2, so the random path becomes reproducible.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func TestRandSource(t *testing.T) {
	cfg := primality.DefaultConfig
	cfg.Rounds = 1
	cfg.Rand = zeroReader{}
	res, err := primality.Test(big.NewInt(341), &cfg)
	if err != nil {
		t.Fatal(err)
	}
	// Base 2 is drawn deterministically and splits 341 as in
	// TestDivisorFromSquareRoot.
	require.False(t, res.ProbablePrime)
	require.Equal(t, int64(2), res.Witness.Int64())
	require.Equal(t, int64(31), res.Divisor.Int64())
}
