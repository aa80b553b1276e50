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

package experiment

import (
	"os"

	"github.com/rzaliznyak-math/random/logger"
	"github.com/rzaliznyak-math/random/register"
	"github.com/rzaliznyak-math/random/simulation/archive"
	"github.com/rzaliznyak-math/random/simulation/recorder"
	"github.com/rzaliznyak-math/random/utils"
	"github.com/urfave/cli/v2"
)

// SimulateCommand data structure for the simulate app.
var SimulateCommand = cli.Command{
	Action:    simulateAction,
	Name:      "simulate",
	Usage:     "draw binomial experiments and estimate interval probabilities",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&utils.VisitorsFlag,
		&utils.RateFlag,
		&utils.ExperimentsFlag,
		&utils.IntervalFlag,
		&utils.RandomSeedFlag,
		&utils.WorkersFlag,
		&utils.OutputFlag,
		&utils.ArchiveFlag,
		&utils.RegisterRunFlag,
		&utils.OverwriteRunIdFlag,
		&utils.QuietFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The simulate command draws the configured number of experiments, each counting
the successes of the configured visitors, and estimates the probability of
every requested success-count interval. Without --interval the canonical
intervals around the expected count are evaluated.`,
}

// simulateAction runs the experiments and writes the requested outputs.
func simulateAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.NoArgs)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Simulate")
	result, err := recorder.RunTrial(cfg, log)
	if err != nil {
		return err
	}
	result.Render(os.Stdout)

	if cfg.Output == "" {
		cfg.Output = "./result.json"
	}
	log.Noticef("Write result file %v", cfg.Output)
	if err := result.Write(cfg.Output); err != nil {
		return err
	}

	if cfg.Archive != "" {
		log.Noticef("Write sample archive %v", cfg.Archive)
		if err := archive.WriteSampleFile(cfg.Archive, result.Trial(), result.Seed(), result.Samples()); err != nil {
			return err
		}
	}

	if cfg.RegisterRun != "" {
		if err := registerRun(cfg, result); err != nil {
			return err
		}
		log.Noticef("Registered run in %v", cfg.RegisterRun)
	}
	return nil
}

// registerRun records the run facts and its interval estimates in the
// register database.
func registerRun(cfg *utils.Config, result *recorder.Result) error {
	resultJSON := result.JSON()
	id := register.MakeRunIdentity(resultJSON.CreatedAt, cfg)
	rm, err := register.MakeRunMetadata(cfg.RegisterRun, id, register.FetchUnixInfo)
	if err != nil {
		return err
	}
	rm.RecordEstimates(cfg.RegisterRun, resultJSON.Estimates)
	rm.Print()
	rm.Close()
	return nil
}
