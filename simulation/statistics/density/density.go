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

// Package density computes smoothed distribution curves of a sample set for
// plotting. The curves feed charts only; reported probabilities come from
// the empirical, normal, and exact packages.
package density

import (
	"fmt"
	"math"
	"sort"

	"github.com/rzaliznyak-math/random/simulation"
	"gonum.org/v1/gonum/stat/distuv"
)

// KDE computes a Gaussian kernel density estimate of the sample set on an
// evenly spaced grid between the smallest and the largest sample. The
// bandwidth follows Scott's rule, sigma * m^(-1/5) for m samples. The
// result is a list of points (x_i, d_i) with the success count x_i and the
// density d_i.
func KDE(samples simulation.SampleSet, points int) ([][2]float64, error) {
	if len(samples) < 2 {
		return nil, fmt.Errorf("kernel density estimate needs at least two samples; got %d", len(samples))
	}
	if points < 2 {
		return nil, fmt.Errorf("number of grid points (%d) must be at least two", points)
	}

	// moments and extrema of the sample set
	m := float64(len(samples))
	sum := float64(0.0)
	minVal, maxVal := samples[0], samples[0]
	for _, x := range samples {
		sum += float64(x)
		if x < minVal {
			minVal = x
		}
		if x > maxVal {
			maxVal = x
		}
	}
	mean := sum / m
	variance := float64(0.0)
	for _, x := range samples {
		d := float64(x) - mean
		variance += d * d
	}
	variance /= m
	if variance == 0.0 {
		return nil, fmt.Errorf("cannot smooth a constant sample set; all samples are %d", samples[0])
	}

	// Scott's rule for the kernel bandwidth
	h := math.Sqrt(variance) * math.Pow(m, -0.2)
	kernel := distuv.Normal{Mu: 0.0, Sigma: h}

	// weight kernels by outcome frequency; sort the outcomes for a
	// deterministic summation order
	freq := samples.Frequency()
	args := make([]int64, 0, len(freq))
	for arg := range freq {
		args = append(args, arg)
	}
	sort.Slice(args, func(i, j int) bool { return args[i] < args[j] })

	grid := make([][2]float64, points)
	lo, hi := float64(minVal), float64(maxVal)
	for j := range grid {
		x := lo + (hi-lo)*float64(j)/float64(points-1)
		sumP := float64(0.0)
		// Compensation term of Kahn's algorithm
		cP := float64(0.0)
		for _, arg := range args {
			// Implement Kahan's summation to avoid errors
			// for accumulated densities (they might be very small)
			// https://en.wikipedia.org/wiki/Kahan_summation_algorithm
			yP := float64(freq[arg])*kernel.Prob(x-float64(arg)) - cP
			tP := sumP + yP
			cP = (tP - sumP) - yP
			sumP = tP
		}
		grid[j] = [2]float64{x, sumP / m}
	}
	return grid, nil
}

// Cumulative computes the cumulative sum of a density grid, normalized so
// that the last point is exactly one. It mirrors the cumulative curve shown
// beside a kernel density estimate; the grid truncates the kernel tails, so
// the raw sum must be rescaled.
func Cumulative(density [][2]float64) ([][2]float64, error) {
	if len(density) == 0 {
		return nil, fmt.Errorf("cannot accumulate an empty density grid")
	}
	cumulative := make([][2]float64, len(density))
	sumP := float64(0.0)
	// Compensation term of Kahn's algorithm
	cP := float64(0.0)
	for i, p := range density {
		yP := p[1] - cP
		tP := sumP + yP
		cP = (tP - sumP) - yP
		sumP = tP
		cumulative[i] = [2]float64{p[0], sumP}
	}
	if sumP <= 0.0 {
		return nil, fmt.Errorf("cannot normalize a density grid with total mass %v", sumP)
	}
	for i := range cumulative {
		cumulative[i][1] /= sumP
	}
	return cumulative, nil
}
