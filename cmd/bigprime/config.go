// Copyright 2023 The bigprime Authors
// This file is part of bigprime.
//
// bigprime is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// bigprime is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with bigprime. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"unicode"

	"github.com/naoina/toml"

	"github.com/primelabs/bigprime/primality"
)

// fileConfig is the TOML shape of persistent defaults. Only knobs that make
// sense in a file are exposed; bases and randomness stay on the command line.
type fileConfig struct {
	Rounds    int
	NoDivisor bool
}

// These settings ensure that TOML keys use the same names as Go struct
// fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), fieldUsageHint(rt, field))
	},
}

func fieldUsageHint(rt reflect.Type, field string) string {
	if len(field) > 0 && unicode.IsLower(rune(field[0])) {
		return " (did you mean to capitalize it?)"
	}
	return ""
}

func loadConfig(file string, cfg *primality.Config) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	var fc fileConfig
	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(&fc)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	if err != nil {
		return err
	}

	if fc.Rounds > 0 {
		cfg.Rounds = fc.Rounds
	}
	if fc.NoDivisor {
		cfg.SkipDivisor = true
	}
	return nil
}
