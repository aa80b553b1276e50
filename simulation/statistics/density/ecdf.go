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

package density

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
	"github.com/rzaliznyak-math/random/simulation"
)

// SampleECDF computes the empirical cumulative distribution function of the
// sample set over the outcome space [0, visitors]. The x value of a point is
// the success count normalized by the number of visitors, so the curve runs
// from (0,0) to (1,1). The full ECDF is reduced to a fixed number of points
// (NumECDFPoints) with the Visvalingam-Whyatt algorithm. See:
// https://en.wikipedia.org/wiki/Visvalingam-Whyatt_algorithm
func SampleECDF(samples simulation.SampleSet, visitors int64) [][2]float64 {

	// determine the maximum success count and total frequency
	count := samples.Frequency()
	totalFreq := uint64(0)
	maxArg := int64(0)
	for arg, freq := range count {
		totalFreq += freq
		if maxArg < arg {
			maxArg = arg
		}
	}

	var simplified orb.LineString

	// if no data-points, nothing to plot
	if len(count) > 0 && visitors > 0 {

		// construct full eCdf as LineString
		ls := orb.LineString{}

		// print points of the empirical cumulative freq
		sumP := float64(0.0)

		// Correction term for Kahan's sum
		cP := float64(0.0)

		// add first point to line string
		ls = append(ls, orb.Point{0.0, 0.0})

		// iterate through all success counts
		for arg := int64(0); arg <= maxArg; arg++ {
			// Implement Kahan's summation to avoid errors
			// for accumulated probabilities (they might be very small)
			// https://en.wikipedia.org/wiki/Kahan_summation_algorithm
			f := float64(count[arg]) / float64(totalFreq)
			x := float64(arg) / float64(visitors)

			yP := f - cP
			tP := sumP + yP
			cP = (tP - sumP) - yP
			sumP = tP

			// add new point to Ecdf
			ls = append(ls, orb.Point{x, sumP})
		}

		// add last point
		ls = append(ls, orb.Point{1.0, 1.0})

		// reduce full ecdf using Visvalingam-Whyatt algorithm to
		// "numPoints" points
		simplifier := simplify.VisvalingamKeep(simulation.NumECDFPoints)
		simplified = simplifier.Simplify(ls).(orb.LineString)
	}

	// convert orb.LineString to [][2]float64
	ecdf := make([][2]float64, len(simplified))
	for i := range simplified {
		ecdf[i] = [2]float64(simplified[i])
	}
	return ecdf
}
