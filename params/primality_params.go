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

// Package params holds the tuning constants of the primality tester.
package params

// Adaptive Miller-Rabin round counts. The per-round false positive rate for
// a random odd candidate shrinks exponentially with the bit length, so fewer
// rounds are needed for larger inputs. The schedule mirrors the error bounds
// tabulated in Menezes et al., Handbook of Applied Cryptography, Table 4.4.
const (
	RoundsOver1000Bits = 2
	RoundsOver500Bits  = 3
	RoundsOver250Bits  = 4
	RoundsOver150Bits  = 5
	RoundsDefault      = 6
)

// MillerRabinRounds returns the number of random-base rounds for a candidate
// of the given bit length.
func MillerRabinRounds(bits int) int {
	switch {
	case bits > 1000:
		return RoundsOver1000Bits
	case bits > 500:
		return RoundsOver500Bits
	case bits > 250:
		return RoundsOver250Bits
	case bits > 150:
		return RoundsOver150Bits
	default:
		return RoundsDefault
	}
}
