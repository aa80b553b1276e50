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

package sampler

import (
	"fmt"

	"github.com/rzaliznyak-math/random/simulation"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws success counts of repeated binomial experiments. All draws
// of one sampler form a reproducible stream determined by the seed.
type Sampler struct {
	trial simulation.Trial
	dist  distuv.Binomial
}

// New creates a sampler for the given trial parameters and seed.
func New(trial simulation.Trial, seed uint64) (*Sampler, error) {
	if err := trial.Check(); err != nil {
		return nil, err
	}
	return &Sampler{
		trial: trial,
		dist: distuv.Binomial{
			N:   float64(trial.Visitors),
			P:   trial.Rate,
			Src: rand.NewSource(seed),
		},
	}, nil
}

// Draw samples the number of successes of a single experiment.
func (s *Sampler) Draw() int64 {
	// The outcome of a degenerate rate is constant; distuv cannot
	// evaluate its probability mass.
	if s.trial.Rate == 0.0 {
		return 0
	}
	if s.trial.Rate == 1.0 {
		return s.trial.Visitors
	}
	return int64(s.dist.Rand())
}

// DrawN samples the success counts of the given number of experiments.
func (s *Sampler) DrawN(count int) (simulation.SampleSet, error) {
	if count < 1 {
		return nil, fmt.Errorf("number of experiments (%d) must be at least one: %w", count, simulation.ErrInvalidParameter)
	}
	samples := make(simulation.SampleSet, count)
	for i := range samples {
		samples[i] = s.Draw()
	}
	return samples, nil
}

// Trial returns the trial parameters of the sampler.
func (s *Sampler) Trial() simulation.Trial {
	return s.trial
}
