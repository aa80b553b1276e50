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

// Package normal computes interval probabilities under the normal
// approximation of the binomial distribution. The approximation works in
// proportion space: the success counts of a trial are modelled as a normal
// distribution with mean p and standard deviation sqrt(p*(1-p)/n), and an
// outcome bound b is evaluated at b/n. No continuity correction is applied.
package normal

import (
	"fmt"
	"math"

	"github.com/rzaliznyak-math/random/simulation"
	"github.com/rzaliznyak-math/random/simulation/statistics/interval"
	"gonum.org/v1/gonum/stat/distuv"
)

// StandardError returns the standard error of the observed success rate,
// sqrt(p*(1-p)/n).
func StandardError(trial simulation.Trial) (float64, error) {
	if err := trial.Check(); err != nil {
		return 0, err
	}
	if trial.Degenerate() {
		return 0, fmt.Errorf("success rate (%v) has no normal approximation; all probability mass sits on a single outcome", trial.Rate)
	}
	return math.Sqrt(trial.Rate * (1.0 - trial.Rate) / float64(trial.Visitors)), nil
}

// Probability computes the interval probability of the normal approximation.
// A bound b is translated to the proportion b/n and evaluated against the
// cumulative distribution function. The continuous model makes no
// distinction between open and closed bounds.
func Probability(trial simulation.Trial, iv interval.Interval) (float64, error) {
	se, err := StandardError(trial)
	if err != nil {
		return 0, err
	}
	if err := iv.Check(); err != nil {
		return 0, err
	}
	dist := distuv.Normal{Mu: trial.Rate, Sigma: se}
	n := float64(trial.Visitors)
	switch iv.Kind {
	case interval.AtMost:
		return dist.CDF(float64(iv.Upper) / n), nil
	case interval.AtLeast:
		return 1.0 - dist.CDF(float64(iv.Lower)/n), nil
	case interval.Between:
		// rounding may push the difference of two close CDF values below zero
		return math.Max(dist.CDF(float64(iv.Upper)/n)-dist.CDF(float64(iv.Lower)/n), 0.0), nil
	default:
		return 0, fmt.Errorf("unknown interval kind %v", iv.Kind)
	}
}
