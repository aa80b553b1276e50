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

package sampler

import (
	"fmt"
	"sync"

	"github.com/rzaliznyak-math/random/simulation"
	"golang.org/x/exp/rand"
)

// DrawParallel partitions the experiments across the given number of workers
// and draws them concurrently. Each worker samples an own stream whose seed
// is derived from the master seed, so the result is reproducible for a fixed
// seed and worker count. Experiments are independent; the partitioning does
// not change the distribution of the sample set.
func DrawParallel(trial simulation.Trial, count int, seed uint64, workers int) (simulation.SampleSet, error) {
	if err := trial.Check(); err != nil {
		return nil, err
	}
	if count < 1 {
		return nil, fmt.Errorf("number of experiments (%d) must be at least one: %w", count, simulation.ErrInvalidParameter)
	}
	if workers < 1 {
		return nil, fmt.Errorf("number of workers (%d) must be at least one: %w", workers, simulation.ErrInvalidParameter)
	}

	// derive an independent seed for every worker from the master seed
	master := rand.New(rand.NewSource(seed))
	seeds := make([]uint64, workers)
	for i := range seeds {
		seeds[i] = master.Uint64()
	}

	samples := make(simulation.SampleSet, count)
	chunk := (count + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		begin := w * chunk
		end := min(begin+chunk, count)
		if begin >= end {
			break
		}
		s, err := New(trial, seeds[w])
		if err != nil {
			return nil, err
		}
		wg.Add(1)
		go func(out simulation.SampleSet, s *Sampler) {
			defer wg.Done()
			for i := range out {
				out[i] = s.Draw()
			}
		}(samples[begin:end], s)
	}
	wg.Wait()
	return samples, nil
}
