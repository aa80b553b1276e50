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

package visualizer

import (
	"fmt"
	"math"

	"github.com/rzaliznyak-math/random/simulation"
	"github.com/rzaliznyak-math/random/simulation/recorder"
	"github.com/rzaliznyak-math/random/simulation/statistics/interval"
	"github.com/rzaliznyak-math/random/simulation/statistics/normal"
	"gonum.org/v1/gonum/stat/distuv"
)

// estimateSeries holds the chart data of one evaluated interval.
type estimateSeries struct {
	label       string       // interval notation
	empirical   float64      // final empirical estimate
	analytical  *float64     // normal approximation; nil for a degenerate rate
	convergence [][2]float64 // running empirical estimate per sample count
	shaded      [][2]float64 // density points inside the interval
}

// buildEstimateSeries derives the per-interval chart series of a result.
func buildEstimateSeries(result *recorder.ResultJSON) ([]estimateSeries, error) {
	series := make([]estimateSeries, 0, len(result.Estimates))
	for _, e := range result.Estimates {
		iv, err := interval.Parse(e.Interval)
		if err != nil {
			return nil, fmt.Errorf("visualizer: parse interval %q: %w", e.Interval, err)
		}
		series = append(series, estimateSeries{
			label:       e.Interval,
			empirical:   e.Empirical,
			analytical:  e.Analytical,
			convergence: e.Convergence,
			shaded:      shadedDensity(iv, result.Density),
		})
	}
	return series, nil
}

// shadedDensity filters the density curve down to the grid points that lie
// inside the interval, forming the shaded panel of the density chart.
func shadedDensity(iv interval.Interval, density [][2]float64) [][2]float64 {
	panel := [][2]float64{}
	for _, pair := range density {
		if covers(iv, pair[0]) {
			panel = append(panel, pair)
		}
	}
	return panel
}

// covers reports whether a continuous grid coordinate lies inside the
// interval.
func covers(iv interval.Interval, x float64) bool {
	switch iv.Kind {
	case interval.AtMost:
		if iv.IncludeUpper {
			return x <= float64(iv.Upper)
		}
		return x < float64(iv.Upper)
	case interval.AtLeast:
		if iv.IncludeLower {
			return x >= float64(iv.Lower)
		}
		return x > float64(iv.Lower)
	case interval.Between:
		aboveLower := x > float64(iv.Lower) || (iv.IncludeLower && x == float64(iv.Lower))
		belowUpper := x < float64(iv.Upper) || (iv.IncludeUpper && x == float64(iv.Upper))
		return aboveLower && belowUpper
	}
	return false
}

// normalDensity evaluates the density of the normal approximation on the x
// grid of the given curve. The density grid lives on the count scale, so the
// approximation uses mean n*p and standard deviation sqrt(n*p*(1-p)).
func normalDensity(trial simulation.Trial, grid [][2]float64) [][2]float64 {
	if len(grid) == 0 {
		return nil
	}
	dist := distuv.Normal{Mu: trial.Mean(), Sigma: math.Sqrt(trial.Variance())}
	curve := make([][2]float64, len(grid))
	for i, pair := range grid {
		curve[i] = [2]float64{pair[0], dist.Prob(pair[0])}
	}
	return curve
}

// normalProportionCDF evaluates the cumulative normal approximation on the x
// grid of the given curve. The sample ECDF lives on the proportion scale, so
// the approximation uses mean p and the standard error of the rate.
func normalProportionCDF(trial simulation.Trial, grid [][2]float64) [][2]float64 {
	if len(grid) == 0 {
		return nil
	}
	se, err := normal.StandardError(trial)
	if err != nil {
		return nil
	}
	dist := distuv.Normal{Mu: trial.Rate, Sigma: se}
	curve := make([][2]float64, len(grid))
	for i, pair := range grid {
		curve[i] = [2]float64{pair[0], dist.CDF(pair[0])}
	}
	return curve
}

// toProportionScale maps the count coordinates of a curve to proportions.
func toProportionScale(curve [][2]float64, visitors int64) [][2]float64 {
	scaled := make([][2]float64, len(curve))
	for i, pair := range curve {
		scaled[i] = [2]float64{pair[0] / float64(visitors), pair[1]}
	}
	return scaled
}
