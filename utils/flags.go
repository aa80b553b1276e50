// Copyright 2024 rzaliznyak-math
// This file is part of the random simulation toolkit.
//
// The toolkit is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The toolkit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the toolkit. If not, see <http://www.gnu.org/licenses/>.

package utils

import (
	"github.com/rzaliznyak-math/random/simulation"
	"github.com/urfave/cli/v2"
)

// Command line options for common flags of the simulation commands.
var (
	VisitorsFlag = cli.Int64Flag{
		Name:    "visitors",
		Aliases: []string{"n"},
		Usage:   "Number of visitors (trials) of a single experiment",
		Value:   simulation.DefaultVisitors,
	}
	RateFlag = cli.Float64Flag{
		Name:    "rate",
		Aliases: []string{"p"},
		Usage:   "Success rate of a single visitor",
		Value:   simulation.DefaultRate,
	}
	ExperimentsFlag = cli.IntFlag{
		Name:    "experiments",
		Aliases: []string{"e"},
		Usage:   "Number of simulated experiments",
		Value:   simulation.DefaultExperiments,
	}
	IntervalFlag = cli.StringSliceFlag{
		Name:    "interval",
		Aliases: []string{"i"},
		Usage:   "Success-count interval to estimate, e.g. \"x<=950\" or \"950<x<1050\"; repeatable",
	}
	RandomSeedFlag = cli.Int64Flag{
		Name:  "random-seed",
		Usage: "Set random seed",
		Value: -1,
	}
	WorkersFlag = cli.IntFlag{
		Name:    "workers",
		Aliases: []string{"w"},
		Usage:   "Number of worker threads that execute in parallel",
		Value:   4,
	}
	OutputFlag = cli.StringFlag{
		Name:  "output",
		Usage: "Output path of the result file",
	}
	ArchiveFlag = cli.StringFlag{
		Name:  "archive",
		Usage: "Path of the gzip-compressed sample archive",
	}
	PortFlag = cli.StringFlag{
		Name:  "port",
		Usage: "Port of the visualization web server",
		Value: "8080",
	}
	RegisterRunFlag = cli.StringFlag{
		Name:  "register-db",
		Usage: "Registers the run into the given sqlite3 database",
	}
	OverwriteRunIdFlag = cli.StringFlag{
		Name:  "overwrite-run-id",
		Usage: "Use the given run id instead of the generated one",
	}
	QuietFlag = cli.BoolFlag{
		Name:    "quiet",
		Aliases: []string{"q"},
		Usage:   "Disable progress report",
		Value:   false,
	}
)
