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

// bigprime is the command-line front end of the primality tester.
package main

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	cli "gopkg.in/urfave/cli.v1"

	bigmath "github.com/primelabs/bigprime/common/math"
	"github.com/primelabs/bigprime/params"
	"github.com/primelabs/bigprime/primality"
)

type flagConfig struct {
	Rounds     int
	Bases      string
	NoDivisor  bool
	ConfigFile string
	Verbosity  int
}

var gitCommit = "" // Git SHA1 commit hash of the release (set via linker flags)

func main() {
	var conf flagConfig
	app := cli.NewApp()
	app.Name = "bigprime"
	app.Version = params.VersionWithCommit(gitCommit)
	app.Usage = "Miller-Rabin primality testing for arbitrarily large integers"
	app.ArgsUsage = "N [N...]"

	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:        "rounds",
			Usage:       "number of random-base rounds (0 = pick by input size)",
			Destination: &conf.Rounds,
		},
		cli.StringFlag{
			Name:        "bases",
			Usage:       "comma-separated bases to test instead of random ones",
			Destination: &conf.Bases,
		},
		cli.BoolFlag{
			Name:        "nodivisor",
			Usage:       "disable opportunistic divisor recovery",
			Destination: &conf.NoDivisor,
		},
		cli.StringFlag{
			Name:        "config",
			Usage:       "TOML configuration file",
			Destination: &conf.ConfigFile,
		},
		cli.IntFlag{
			Name:        "verbosity",
			Value:       3,
			Usage:       "log verbosity (0-5)",
			Destination: &conf.Verbosity,
		},
	}

	app.Action = func(c *cli.Context) error {
		return run(c, &conf)
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context, conf *flagConfig) error {
	usecolor := isatty.IsTerminal(os.Stderr.Fd())
	log.Root().SetHandler(log.LvlFilterHandler(log.Lvl(conf.Verbosity), log.StreamHandler(os.Stderr, log.TerminalFormat(usecolor))))

	if c.NArg() == 0 {
		return fmt.Errorf("no numbers given, see 'bigprime --help'")
	}

	cfg, err := makeConfig(conf)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"N", "Verdict", "Witness", "Divisor"})
	for _, arg := range c.Args() {
		result, err := primality.TestString(arg, cfg)
		if err != nil {
			return err
		}
		table.Append(resultRow(result))
	}
	table.Render()
	return nil
}

// makeConfig assembles the test configuration, file settings first, command
// line flags on top.
func makeConfig(conf *flagConfig) (*primality.Config, error) {
	cfg := primality.DefaultConfig
	if conf.ConfigFile != "" {
		if err := loadConfig(conf.ConfigFile, &cfg); err != nil {
			return nil, err
		}
	}
	if conf.Rounds > 0 {
		cfg.Rounds = conf.Rounds
	}
	if conf.NoDivisor {
		cfg.SkipDivisor = true
	}
	if conf.Bases != "" {
		bases, err := parseBases(conf.Bases)
		if err != nil {
			return nil, err
		}
		cfg.Bases = bases
	}
	return &cfg, nil
}

func parseBases(s string) ([]*big.Int, error) {
	parts := strings.Split(s, ",")
	bases := make([]*big.Int, 0, len(parts))
	for _, p := range parts {
		b, ok := bigmath.ParseBig(strings.TrimSpace(p))
		if !ok {
			return nil, fmt.Errorf("invalid base %q", p)
		}
		bases = append(bases, b)
	}
	return bases, nil
}

func resultRow(r *primality.Result) []string {
	verdict := "composite"
	if r.ProbablePrime {
		verdict = "probably prime"
	}
	witness, divisor := "-", "-"
	if r.Witness != nil {
		witness = r.Witness.String()
	}
	if r.Divisor != nil {
		divisor = r.Divisor.String()
	}
	return []string{r.N.String(), verdict, witness, divisor}
}
