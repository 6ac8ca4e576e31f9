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

package primality

import (
	"fmt"
	"math/big"
)

// Result is the immutable outcome of one primality test. Witness and Divisor
// are independent optional facts: Witness is set whenever a composite
// verdict was established by a testing round, Divisor only when one of the
// gcd checks found a non-trivial factor of |N| along the way.
type Result struct {
	// N is the tested integer with its original sign. Primality is always
	// evaluated on the absolute value.
	N *big.Int

	// ProbablePrime is the verdict. False positives are possible but
	// exponentially unlikely in the number of rounds; false negatives are
	// not.
	ProbablePrime bool

	// Witness is a base proving |N| composite, or nil.
	Witness *big.Int

	// Divisor is a non-trivial divisor of |N|, or nil. When set, it always
	// divides N exactly.
	Divisor *big.Int
}

func (r *Result) String() string {
	if r.ProbablePrime {
		return fmt.Sprintf("%v is probably prime", r.N)
	}
	switch {
	case r.Witness != nil && r.Divisor != nil:
		return fmt.Sprintf("%v is composite (witness %v, divisor %v)", r.N, r.Witness, r.Divisor)
	case r.Witness != nil:
		return fmt.Sprintf("%v is composite (witness %v)", r.N, r.Witness)
	case r.Divisor != nil:
		return fmt.Sprintf("%v is composite (divisor %v)", r.N, r.Divisor)
	default:
		return fmt.Sprintf("%v is composite", r.N)
	}
}
