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

package recorder

import (
	"github.com/rzaliznyak-math/random/logger"
	"github.com/rzaliznyak-math/random/simulation"
	"github.com/rzaliznyak-math/random/simulation/sampler"
	"github.com/rzaliznyak-math/random/simulation/statistics/interval"
	"github.com/rzaliznyak-math/random/utils"
)

// RunTrial draws the configured number of experiments and evaluates the
// configured intervals against the sample set. Without interval notations
// the canonical intervals of the trial are evaluated. A single worker draws
// sequentially with a progress report; more workers draw in parallel.
func RunTrial(cfg *utils.Config, log logger.Logger) (*Result, error) {
	trial, err := simulation.NewTrial(cfg.Visitors, cfg.Rate)
	if err != nil {
		return nil, err
	}
	ivs, err := interval.ParseAll(cfg.Intervals)
	if err != nil {
		return nil, err
	}
	if len(ivs) == 0 {
		ivs = interval.Defaults(trial)
		log.Infof("no intervals given; evaluating the canonical intervals of the trial")
	}

	seed := uint64(cfg.RandomSeed)
	log.Noticef("using random seed %d", cfg.RandomSeed)
	log.Noticef("simulating %d experiments of %d visitors at success rate %v", cfg.Experiments, trial.Visitors, trial.Rate)

	var samples simulation.SampleSet
	if cfg.Workers > 1 {
		samples, err = sampler.DrawParallel(trial, cfg.Experiments, seed, cfg.Workers)
		if err != nil {
			return nil, err
		}
	} else {
		s, err := sampler.New(trial, seed)
		if err != nil {
			return nil, err
		}
		samples = make(simulation.SampleSet, cfg.Experiments)
		tracker := utils.NewProgressTracker(cfg.Experiments, log)
		for i := range samples {
			samples[i] = s.Draw()
			if !cfg.Quiet {
				tracker.PrintProgress()
			}
		}
	}

	log.Noticef("evaluating %d intervals against %d samples", len(ivs), len(samples))
	return NewResult(trial, seed, cfg.Workers, samples, ivs)
}
