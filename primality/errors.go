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
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrInputFormat is returned when an input cannot be coerced to an
	// integer.
	ErrInputFormat = errors.New("input is not a valid integer")

	// ErrNilBase is returned when an explicit base list contains a nil
	// entry.
	ErrNilBase = errors.New("explicit base list contains a nil entry")
)

// BaseRangeError is returned when an explicitly supplied base falls outside
// [2, n-2]. It aborts the test before any arithmetic rounds run.
type BaseRangeError struct {
	Base *big.Int
	N    *big.Int
}

func (e *BaseRangeError) Error() string {
	max := new(big.Int).Sub(e.N, big.NewInt(2))
	return fmt.Sprintf("base %v outside [2, %v] for n = %v", e.Base, max, e.N)
}
