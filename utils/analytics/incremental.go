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

// Package analytics accumulates summary statistics of a value stream in a
// single pass without storing the stream itself.
package analytics

import (
	"encoding/json"
	"math"
)

// IncrementalStats tracks count, extrema, sum, and the first four central
// moments of a value stream. Moments are maintained with the incremental
// update formulas of Welford and Terriberry. See:
// https://en.wikipedia.org/wiki/Algorithms_for_calculating_variance
type IncrementalStats struct {
	count uint64
	min   float64
	max   float64
	ksum  float64 // Kahn's summation algorithm for the value sum
	c     float64 // Compensation term of Kahn's algorithm
	m1    float64
	m2    float64
	m3    float64
	m4    float64
}

// IncrementalStatsJSON is the JSON output format of the accumulator.
type IncrementalStatsJSON struct {
	Count    uint64  `json:"count"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Sum      float64 `json:"sum"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std-dev"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
}

// Update feeds one value into the accumulator.
func (s *IncrementalStats) Update(x float64) {
	if s.count == 0 {
		s.min, s.max = x, x
	}
	if x < s.min {
		s.min = x
	}
	if x > s.max {
		s.max = x
	}

	// Implement Kahan's summation to avoid errors of the accumulated sum
	// https://en.wikipedia.org/wiki/Kahan_summation_algorithm
	y := x - s.c
	t := s.ksum + y
	s.c = (t - s.ksum) - y
	s.ksum = t

	n1 := float64(s.count)
	s.count++
	n := float64(s.count)
	delta := x - s.m1
	deltaN := delta / n
	deltaN2 := deltaN * deltaN
	term1 := delta * deltaN * n1
	s.m1 += deltaN
	s.m4 += term1*deltaN2*(n*n-3.0*n+3.0) + 6.0*deltaN2*s.m2 - 4.0*deltaN*s.m3
	s.m3 += term1*deltaN*(n-2.0) - 3.0*deltaN*s.m2
	s.m2 += term1
}

// Count returns the number of accumulated values.
func (s *IncrementalStats) Count() uint64 {
	return s.count
}

// Min returns the smallest accumulated value.
func (s *IncrementalStats) Min() float64 {
	return s.min
}

// Max returns the largest accumulated value.
func (s *IncrementalStats) Max() float64 {
	return s.max
}

// Sum returns the compensated sum of the accumulated values.
func (s *IncrementalStats) Sum() float64 {
	return s.ksum
}

// Mean returns the arithmetic mean of the accumulated values.
func (s *IncrementalStats) Mean() float64 {
	return s.m1
}

// Variance returns the unbiased sample variance of the accumulated values.
func (s *IncrementalStats) Variance() float64 {
	if s.count < 2 {
		return 0.0
	}
	return s.m2 / float64(s.count-1)
}

// StdDev returns the sample standard deviation of the accumulated values.
func (s *IncrementalStats) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Skewness returns the sample skewness of the accumulated values.
func (s *IncrementalStats) Skewness() float64 {
	if s.m2 == 0.0 {
		return 0.0
	}
	return math.Sqrt(float64(s.count)) * s.m3 / math.Pow(s.m2, 1.5)
}

// Kurtosis returns the excess kurtosis of the accumulated values.
func (s *IncrementalStats) Kurtosis() float64 {
	if s.m2 == 0.0 {
		return 0.0
	}
	return float64(s.count)*s.m4/(s.m2*s.m2) - 3.0
}

// JSON returns the accumulator in its JSON output format.
func (s *IncrementalStats) JSON() IncrementalStatsJSON {
	return IncrementalStatsJSON{
		Count:    s.Count(),
		Min:      s.Min(),
		Max:      s.Max(),
		Sum:      s.Sum(),
		Mean:     s.Mean(),
		Variance: s.Variance(),
		StdDev:   s.StdDev(),
		Skewness: s.Skewness(),
		Kurtosis: s.Kurtosis(),
	}
}

// MarshalJSON implements the json.Marshaler interface.
func (s IncrementalStats) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.JSON())
}

// String renders the accumulator as a JSON string.
func (s IncrementalStats) String() string {
	b, err := json.Marshal(s)
	if err != nil {
		return err.Error()
	}
	return string(b)
}
