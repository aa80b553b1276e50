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
	"errors"
	"fmt"
	"time"

	"github.com/rzaliznyak-math/random/logger"
	"github.com/rzaliznyak-math/random/simulation"
	"github.com/rzaliznyak-math/random/simulation/statistics/interval"
	"github.com/urfave/cli/v2"
)

// ArgumentMode determines the arguments of a command.
type ArgumentMode int

const (
	NoArgs  ArgumentMode = iota // command takes no arguments
	PathArg                     // command takes a single file path argument
)

// Config of the simulation commands. Default values of the
// command line options are stored here.
type Config struct {
	AppName     string
	CommandName string

	ArgPath        string   // positional file path argument of the command
	Archive        string   // path of the written sample archive
	Experiments    int      // number of simulated experiments
	Intervals      []string // interval notations to estimate
	LogLevel       string   // level of the logging of the app action
	Output         string   // output path of the result file
	OverwriteRunId string   // overwrite run id of the registration
	Port           string   // port of the visualization web server
	Quiet          bool     // disable progress report
	Rate           float64  // success rate of a single visitor
	RandomSeed     int64    // set random seed
	RegisterRun    string   // sqlite3 connection string registering the run
	Visitors       int64    // number of visitors (trials) of a single experiment
	Workers        int      // number of worker threads
}

// ConfigContext carries the config and the cli context while the
// config is completed.
type ConfigContext struct {
	cfg *Config       // configuration for the command
	ctx *cli.Context  // command line context
	log logger.Logger // logger for the config completion
}

func NewConfigContext(cfg *Config, ctx *cli.Context) *ConfigContext {
	return &ConfigContext{
		cfg: cfg,
		ctx: ctx,
		log: logger.NewLogger(cfg.LogLevel, "Config"),
	}
}

// NewConfig creates and initializes Config with commandline arguments.
func NewConfig(ctx *cli.Context, mode ArgumentMode) (*Config, error) {
	// create config with user flag values, if not set default values are used
	cfg := createConfigFromFlags(ctx)

	// create config context for sharing common arguments
	cc := NewConfigContext(cfg, ctx)

	// process arguments and flags
	err := cc.updateConfigArguments(ctx.Args().Slice(), mode)
	if err != nil {
		return cfg, fmt.Errorf("cannot parse command line arguments; %v", err)
	}

	// adjust configuration values and plausibility check
	err = cc.adjustMissingConfigValues()
	if err != nil {
		return cfg, fmt.Errorf("cannot adjust missing config values; %v", err)
	}

	return cfg, nil
}

// createConfigFromFlags returns Config instance with user specified values or the default ones
func createConfigFromFlags(ctx *cli.Context) *Config {
	cfg := &Config{
		AppName:     ctx.App.HelpName,
		CommandName: ctx.Command.Name,

		Archive:        getFlagValue(ctx, ArchiveFlag).(string),
		Experiments:    getFlagValue(ctx, ExperimentsFlag).(int),
		Intervals:      getFlagValue(ctx, IntervalFlag).([]string),
		LogLevel:       getFlagValue(ctx, logger.LogLevelFlag).(string),
		Output:         getFlagValue(ctx, OutputFlag).(string),
		OverwriteRunId: getFlagValue(ctx, OverwriteRunIdFlag).(string),
		Port:           getFlagValue(ctx, PortFlag).(string),
		Quiet:          getFlagValue(ctx, QuietFlag).(bool),
		Rate:           getFlagValue(ctx, RateFlag).(float64),
		RandomSeed:     getFlagValue(ctx, RandomSeedFlag).(int64),
		RegisterRun:    getFlagValue(ctx, RegisterRunFlag).(string),
		Visitors:       getFlagValue(ctx, VisitorsFlag).(int64),
		Workers:        getFlagValue(ctx, WorkersFlag).(int),
	}

	return cfg
}

// getFlagValue returns value specified by user if flag is present in cli context, otherwise return default flag value
func getFlagValue(ctx *cli.Context, flag interface{}) interface{} {
	cmdFlags := ctx.Command.Flags
	for _, cmdFlag := range cmdFlags {
		switch f := flag.(type) {
		case cli.IntFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Int(f.Name)
			}

		case cli.Int64Flag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Int64(f.Name)
			}

		case cli.Float64Flag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Float64(f.Name)
			}

		case cli.StringFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.String(f.Name)
			}

		case cli.BoolFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Bool(f.Name)
			}

		case cli.StringSliceFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.StringSlice(f.Name)
			}
		}
	}

	// If flag not found, return the default value of the flag
	switch f := flag.(type) {
	case cli.IntFlag:
		return f.Value
	case cli.Int64Flag:
		return f.Value
	case cli.Float64Flag:
		return f.Value
	case cli.StringFlag:
		return f.Value
	case cli.BoolFlag:
		return f.Value
	case cli.StringSliceFlag:
		if f.Value == nil {
			return []string{}
		}
		return f.Value.Value()
	}

	return nil
}

// updateConfigArguments parses the positional arguments of the command
// depending on the argument mode.
func (cc *ConfigContext) updateConfigArguments(args []string, mode ArgumentMode) error {
	switch mode {
	case NoArgs:
	case PathArg:
		if len(args) != 1 {
			return fmt.Errorf("command requires exactly 1 argument")
		}
		cc.cfg.ArgPath = args[0]
	default:
		return errors.New("unknown mode; unable to process commandline arguments")
	}
	return nil
}

// adjustMissingConfigValues fills the missing values in the config
// and rejects implausible parameter combinations.
func (cc *ConfigContext) adjustMissingConfigValues() error {
	// set random seed of the run
	if cc.cfg.RandomSeed < 0 {
		cc.cfg.RandomSeed = int64(time.Now().UnixNano())
		cc.log.Infof("random seed derived from the clock: %d", cc.cfg.RandomSeed)
	}

	// plausibility check of the trial parameters
	if _, err := simulation.NewTrial(cc.cfg.Visitors, cc.cfg.Rate); err != nil {
		return err
	}
	if cc.cfg.Experiments < 1 {
		return fmt.Errorf("number of experiments (%d) must be at least one: %w", cc.cfg.Experiments, simulation.ErrInvalidParameter)
	}
	if cc.cfg.Workers < 1 {
		return fmt.Errorf("number of workers (%d) must be at least one: %w", cc.cfg.Workers, simulation.ErrInvalidParameter)
	}

	// reject malformed interval notations before any sampling happens
	if _, err := interval.ParseAll(cc.cfg.Intervals); err != nil {
		return err
	}
	return nil
}
