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
	"math"
	"testing"

	"github.com/rzaliznyak-math/random/simulation"
	"github.com/rzaliznyak-math/random/simulation/sampler"
	"github.com/rzaliznyak-math/random/simulation/statistics/interval"
	"github.com/rzaliznyak-math/random/simulation/statistics/normal"
)

// TestEmpirical_CountHonorsBounds checks membership counting at the interval
// bounds for strict and inclusive relations.
func TestEmpirical_CountHonorsBounds(t *testing.T) {
	samples := simulation.SampleSet{950, 951, 1000, 1049, 1050}
	if got := Count(samples, interval.NewAtMost(950)); got != 1 {
		t.Fatalf("x<=950: want 1, got %d", got)
	}
	if got := Count(samples, interval.NewAtLeast(1050)); got != 1 {
		t.Fatalf("x>=1050: want 1, got %d", got)
	}
	if got := Count(samples, interval.NewInside(950, 1050)); got != 3 {
		t.Fatalf("950<x<1050: want 3, got %d", got)
	}
	if got := Count(samples, interval.NewSpan(950, 1050)); got != 5 {
		t.Fatalf("950<=x<=1050: want 5, got %d", got)
	}
}

// TestEmpirical_Probability checks the estimate as a fraction of samples.
func TestEmpirical_Probability(t *testing.T) {
	samples := simulation.SampleSet{1, 2, 3, 4}
	p, err := Probability(samples, interval.NewAtMost(2))
	if err != nil {
		t.Fatalf("want nil, got %v", err)
	}
	if p != 0.5 {
		t.Fatalf("want 0.5, got %v", p)
	}
	if _, err := Probability(simulation.SampleSet{}, interval.NewAtMost(2)); err == nil {
		t.Fatalf("empty sample set: want error, got nil")
	}
	if _, err := Probability(samples, interval.NewInside(4, 2)); err == nil {
		t.Fatalf("invalid interval: want error, got nil")
	}
}

// TestEmpirical_PartitionSumsToOne checks that the estimates of a partition of
// the outcome space add up to one without rounding error.
func TestEmpirical_PartitionSumsToOne(t *testing.T) {
	trial := simulation.Trial{Visitors: 10000, Rate: 0.1}
	s, err := sampler.New(trial, 999)
	if err != nil {
		t.Fatalf("cannot create sampler: %v", err)
	}
	samples, err := s.DrawN(10000)
	if err != nil {
		t.Fatalf("cannot draw samples: %v", err)
	}
	intervals := []interval.Interval{
		interval.NewAtMost(950),
		interval.NewAtLeast(1050),
		interval.NewInside(950, 1050),
	}
	total := int64(0)
	for _, iv := range intervals {
		total += Count(samples, iv)
	}
	if total != int64(len(samples)) {
		t.Fatalf("partition counts: want %d, got %d", len(samples), total)
	}

	// strict bounds on all three intervals leave the boundary counts uncovered
	strict := []interval.Interval{
		{Kind: interval.AtMost, Upper: 950},
		{Kind: interval.AtLeast, Lower: 1050},
		interval.NewInside(950, 1050),
	}
	boundary := simulation.SampleSet{900, 950, 1000, 1050, 1100}
	total = 0
	for _, iv := range strict {
		total += Count(boundary, iv)
	}
	if want := int64(len(boundary)) - 2; total != want {
		t.Fatalf("strict partition counts: want %d, got %d", want, total)
	}
}

// TestEmpirical_MatchesExpectation checks the estimate of a fair coin against
// its known probability.
func TestEmpirical_MatchesExpectation(t *testing.T) {
	trial := simulation.Trial{Visitors: 1, Rate: 0.5}
	s, err := sampler.New(trial, 999)
	if err != nil {
		t.Fatalf("cannot create sampler: %v", err)
	}
	samples, err := s.DrawN(100000)
	if err != nil {
		t.Fatalf("cannot draw samples: %v", err)
	}
	p, err := Probability(samples, interval.NewAtLeast(1))
	if err != nil {
		t.Fatalf("want nil, got %v", err)
	}
	// tolerance of five standard errors of the estimate
	tolerance := 5.0 * math.Sqrt(0.5*0.5/float64(len(samples)))
	if math.Abs(p-0.5) > tolerance {
		t.Fatalf("estimate (%v) deviates from 0.5", p)
	}
}

// TestEmpirical_NormalApproximation draws a large sample set and checks the
// estimates of the default intervals against the normal approximation.
func TestEmpirical_NormalApproximation(t *testing.T) {
	trial := simulation.Trial{Visitors: 10000, Rate: 0.1}
	samples, err := sampler.DrawParallel(trial, 1000000, 999, 4)
	if err != nil {
		t.Fatalf("cannot draw samples: %v", err)
	}
	for _, iv := range interval.Defaults(trial) {
		p, err := Probability(samples, iv)
		if err != nil {
			t.Fatalf("cannot estimate %v: %v", iv, err)
		}
		want, err := normal.Probability(trial, iv)
		if err != nil {
			t.Fatalf("cannot approximate %v: %v", iv, err)
		}
		if math.Abs(p-want) > 0.01 {
			t.Fatalf("estimate of %v (%v) deviates from the approximation (%v)", iv, p, want)
		}
	}
}

// TestEmpirical_Convergence checks the running estimate series.
func TestEmpirical_Convergence(t *testing.T) {
	samples := simulation.SampleSet{0, 1, 0, 1, 0, 1, 0, 1, 0, 1}
	series, err := Convergence(samples, interval.NewAtLeast(1), 5)
	if err != nil {
		t.Fatalf("want nil, got %v", err)
	}
	if len(series) != 5 {
		t.Fatalf("series length: want 5, got %d", len(series))
	}
	last := series[len(series)-1]
	if last[0] != 10.0 || last[1] != 0.5 {
		t.Fatalf("final point: want (10,0.5), got (%v,%v)", last[0], last[1])
	}
	for i := 1; i < len(series); i++ {
		if series[i][0] <= series[i-1][0] {
			t.Fatalf("series x values must increase")
		}
	}
	// more points than samples are clamped to one point per sample
	series, err = Convergence(samples, interval.NewAtLeast(1), 100)
	if err != nil {
		t.Fatalf("want nil, got %v", err)
	}
	if len(series) != len(samples) {
		t.Fatalf("clamped series length: want %d, got %d", len(samples), len(series))
	}
	if _, err := Convergence(simulation.SampleSet{}, interval.NewAtLeast(1), 5); err == nil {
		t.Fatalf("empty sample set: want error, got nil")
	}
	if _, err := Convergence(samples, interval.NewAtLeast(1), 0); err == nil {
		t.Fatalf("zero points: want error, got nil")
	}
}
