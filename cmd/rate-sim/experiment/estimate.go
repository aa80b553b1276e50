// Copyright 2025 rzaliznyak-math
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
	"fmt"
	"io"
	"os"

	"github.com/rzaliznyak-math/random/logger"
	"github.com/rzaliznyak-math/random/simulation/archive"
	"github.com/rzaliznyak-math/random/simulation/recorder"
	"github.com/rzaliznyak-math/random/simulation/statistics/interval"
	"github.com/rzaliznyak-math/random/utils"
	"github.com/urfave/cli/v2"
)

// EstimateCommand data structure for the estimate app.
var EstimateCommand = cli.Command{
	Action:    estimateAction,
	Name:      "estimate",
	Usage:     "evaluate intervals against a stored run",
	ArgsUsage: "<file>",
	Flags: []cli.Flag{
		&utils.IntervalFlag,
		&utils.WorkersFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The estimate command requires one argument: <file>

<file> is either a sample archive or a result file of an earlier run.
Empirical estimates need the drawn samples of an archive; a result file
yields the analytical and exact reference probabilities of its trial.`,
}

// estimateAction evaluates the requested intervals for a stored run.
func estimateAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.PathArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Estimate")
	ivs, err := interval.ParseAll(cfg.Intervals)
	if err != nil {
		return err
	}

	gzipped, err := isGzipped(cfg.ArgPath)
	if err != nil {
		return err
	}
	if gzipped {
		log.Infof("Read sample archive %v", cfg.ArgPath)
		sf, err := archive.ReadSampleFile(cfg.ArgPath)
		if err != nil {
			return err
		}
		if len(ivs) == 0 {
			ivs = interval.Defaults(sf.Trial)
		}
		log.Noticef("evaluating %d intervals against %d samples", len(ivs), len(sf.Samples))
		result, err := recorder.NewResult(sf.Trial, sf.Seed, cfg.Workers, sf.Samples, ivs)
		if err != nil {
			return err
		}
		result.Render(os.Stdout)
		return nil
	}

	log.Infof("Read result file %v", cfg.ArgPath)
	resultJSON, err := recorder.Read(cfg.ArgPath)
	if err != nil {
		return err
	}
	trial, err := resultJSON.Trial()
	if err != nil {
		return err
	}
	if len(ivs) == 0 {
		ivs = interval.Defaults(trial)
	}
	log.Noticef("computing %d reference probabilities; empirical estimates need a sample archive", len(ivs))
	return recorder.RenderReference(os.Stdout, trial, ivs)
}

// isGzipped reports whether the file starts with the two ID bytes of
// RFC 1952, marking a sample archive rather than a result file.
func isGzipped(filename string) (bool, error) {
	file, err := os.Open(filename)
	if err != nil {
		return false, fmt.Errorf("could not open file: %s, %w", filename, err)
	}
	defer func() {
		_ = file.Close()
	}()

	var magic [2]byte
	if _, err := io.ReadFull(file, magic[:]); err != nil {
		return false, fmt.Errorf("could not read file header: %s, %w", filename, err)
	}
	return magic[0] == 0x1f && magic[1] == 0x8b, nil
}
