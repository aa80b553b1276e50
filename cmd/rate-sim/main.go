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

package main

import (
	"log"
	"os"

	"github.com/rzaliznyak-math/random/cmd/rate-sim/experiment"
	"github.com/urfave/cli/v2"
)

// RateSimApp data structure
var RateSimApp = cli.App{
	Name:      "Binomial Interval Estimator",
	HelpName:  "rate-sim",
	Usage:     "estimate interval probabilities of repeated binomial experiments",
	Copyright: "(c) 2024 rzaliznyak-math",
	Commands: []*cli.Command{
		&experiment.SimulateCommand,
		&experiment.EstimateCommand,
		&experiment.VisualizeCommand,
	},
}

// main implements the rate-sim commands
func main() {
	if err := RateSimApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
