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
	"github.com/rzaliznyak-math/random/logger"
	"github.com/rzaliznyak-math/random/simulation/recorder"
	"github.com/rzaliznyak-math/random/simulation/visualizer"
	"github.com/rzaliznyak-math/random/utils"
	"github.com/urfave/cli/v2"
)

// VisualizeCommand data structure for the visualize app.
var VisualizeCommand = cli.Command{
	Action:    visualizeAction,
	Name:      "visualize",
	Usage:     "serve charts of a recorded run",
	ArgsUsage: "<result.json>",
	Flags: []cli.Flag{
		&utils.PortFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The visualize command requires one argument: <result.json>

<result.json> is the result file of an earlier simulate run. The command
serves the density, cumulative distribution and convergence charts of the
run on the configured port.`,
}

// visualizeAction serves the charts of a recorded run.
func visualizeAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.PathArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Visualize")
	log.Infof("Read result file %v", cfg.ArgPath)
	result, err := recorder.Read(cfg.ArgPath)
	if err != nil {
		return err
	}
	log.Noticef("Open web browser on http://localhost:%v", cfg.Port)
	log.Notice("Cancel the visualizer with Ctrl-C")
	return visualizer.FireUpWeb(result, cfg.Port)
}
