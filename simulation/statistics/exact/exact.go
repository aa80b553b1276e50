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

// Package exact computes interval probabilities of the binomial distribution
// by summing its probability mass function. Unlike the normal approximation,
// the result honors the discreteness of the outcome space and the inclusion
// of the interval bounds.
package exact

import (
	"math"

	"github.com/rzaliznyak-math/random/simulation"
	"github.com/rzaliznyak-math/random/simulation/statistics/interval"
	"gonum.org/v1/gonum/stat/distuv"
)

// Probability computes the exact interval probability of a trial by summing
// the binomial probability mass over the success counts inside the interval.
func Probability(trial simulation.Trial, iv interval.Interval) (float64, error) {
	if err := trial.Check(); err != nil {
		return 0, err
	}
	if err := iv.Check(); err != nil {
		return 0, err
	}
	lo, hi, ok := iv.CountRange(trial.Visitors)
	if !ok {
		return 0.0, nil
	}
	// A degenerate rate puts the whole probability mass on a single outcome;
	// distuv cannot evaluate its probability mass.
	if trial.Rate == 0.0 {
		if iv.Contains(0) {
			return 1.0, nil
		}
		return 0.0, nil
	}
	if trial.Rate == 1.0 {
		if iv.Contains(trial.Visitors) {
			return 1.0, nil
		}
		return 0.0, nil
	}
	dist := distuv.Binomial{N: float64(trial.Visitors), P: trial.Rate}
	sum := float64(0.0)
	// Compensation term of Kahn's algorithm
	c := float64(0.0)
	for x := lo; x <= hi; x++ {
		// Implement Kahan's summation to avoid errors
		// for accumulated probabilities (they might be very small)
		// https://en.wikipedia.org/wiki/Kahan_summation_algorithm
		y := dist.Prob(float64(x)) - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	// rounding may push the sum of a full domain slightly above one
	return math.Min(sum, 1.0), nil
}
