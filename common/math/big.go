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

package math

import "math/big"

// ParseBig parses s as a decimal integer, optionally signed. It returns nil
// and false if s is not a valid decimal representation.
func ParseBig(s string) (*big.Int, bool) {
	if s == "" {
		return nil, false
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, false
	}
	return n, true
}

// MustParseBig parses s as a decimal integer and panics if the string is
// invalid. Intended for hard-coded constants and tests.
func MustParseBig(s string) *big.Int {
	n, ok := ParseBig(s)
	if !ok {
		panic("invalid decimal integer: " + s)
	}
	return n
}
