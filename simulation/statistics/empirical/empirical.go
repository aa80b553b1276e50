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

package empirical

import (
	"fmt"

	"github.com/rzaliznyak-math/random/simulation"
	"github.com/rzaliznyak-math/random/simulation/statistics/interval"
)

// Count returns the number of samples that lie inside the interval.
func Count(samples simulation.SampleSet, iv interval.Interval) int64 {
	hits := int64(0)
	for _, x := range samples {
		if iv.Contains(x) {
			hits++
		}
	}
	return hits
}

// Probability estimates the interval probability as the fraction of samples
// that lie inside the interval.
func Probability(samples simulation.SampleSet, iv interval.Interval) (float64, error) {
	if len(samples) == 0 {
		return 0, fmt.Errorf("cannot estimate a probability from an empty sample set: %w", simulation.ErrInvalidParameter)
	}
	if err := iv.Check(); err != nil {
		return 0, err
	}
	return float64(Count(samples, iv)) / float64(len(samples)), nil
}

// Convergence returns the running empirical estimate after growing sample
// prefixes. The series has about the given number of points and always ends
// with the estimate of the full sample set; the x value of a point is the
// number of experiments it covers.
func Convergence(samples simulation.SampleSet, iv interval.Interval, points int) ([][2]float64, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("cannot estimate a probability from an empty sample set: %w", simulation.ErrInvalidParameter)
	}
	if points < 1 {
		return nil, fmt.Errorf("number of convergence points (%d) must be at least one: %w", points, simulation.ErrInvalidParameter)
	}
	if err := iv.Check(); err != nil {
		return nil, err
	}
	if points > len(samples) {
		points = len(samples)
	}
	stride := len(samples) / points
	series := make([][2]float64, 0, points+1)
	hits := int64(0)
	for i, x := range samples {
		if iv.Contains(x) {
			hits++
		}
		if (i+1)%stride == 0 || i == len(samples)-1 {
			series = append(series, [2]float64{float64(i + 1), float64(hits) / float64(i+1)})
		}
	}
	return series, nil
}
