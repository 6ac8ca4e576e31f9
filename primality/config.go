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
	"crypto/rand"
	"io"
	"math/big"
)

// Config controls a single primality test. The zero value selects the
// defaults: the adaptive round schedule, random bases from crypto/rand and
// divisor recovery enabled.
type Config struct {
	// Rounds is the number of random-base rounds. Zero selects the adaptive
	// schedule from the params package. Ignored when Bases is non-empty.
	Rounds int

	// Bases, when non-empty, are tested verbatim, one round per base, in
	// order. Every base must lie in [2, n-2]. No randomness is consulted,
	// so the verdict is fully deterministic.
	Bases []*big.Int

	// SkipDivisor disables the opportunistic gcd checks that can attach a
	// non-trivial divisor of n to a composite verdict. Recovery is on by
	// default, matching the nodivisor flag of the command line tool.
	SkipDivisor bool

	// Rand supplies the random bits for base selection. Nil selects
	// crypto/rand.Reader.
	Rand io.Reader
}

// DefaultConfig is the configuration used when Test is called with nil.
var DefaultConfig = Config{}

// withDefaults returns a self-contained copy of the configuration with all
// absent fields filled in.
func (cfg *Config) withDefaults() Config {
	var c Config
	if cfg == nil {
		c = DefaultConfig
	} else {
		c = *cfg
	}
	if c.Rounds < 0 {
		c.Rounds = 0
	}
	if c.Rand == nil {
		c.Rand = rand.Reader
	}
	return c
}
