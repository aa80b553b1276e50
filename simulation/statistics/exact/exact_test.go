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

package exact

import (
	"math"
	"testing"

	"github.com/rzaliznyak-math/random/simulation"
	"github.com/rzaliznyak-math/random/simulation/statistics/interval"
	"github.com/rzaliznyak-math/random/simulation/statistics/normal"
)

// TestExact_ClosedForm checks small trials against hand-computed
// probabilities.
func TestExact_ClosedForm(t *testing.T) {
	tests := []struct {
		trial simulation.Trial
		iv    interval.Interval
		want  float64
	}{
		{simulation.Trial{Visitors: 2, Rate: 0.5}, interval.NewAtMost(0), 0.25},
		{simulation.Trial{Visitors: 2, Rate: 0.5}, interval.NewSpan(1, 1), 0.5},
		{simulation.Trial{Visitors: 2, Rate: 0.5}, interval.NewAtMost(2), 1.0},
		{simulation.Trial{Visitors: 2, Rate: 0.5}, interval.NewInside(0, 2), 0.5},
		{simulation.Trial{Visitors: 4, Rate: 0.5}, interval.NewAtMost(1), 0.3125},
		{simulation.Trial{Visitors: 4, Rate: 0.5}, interval.NewAtLeast(3), 0.3125},
		{simulation.Trial{Visitors: 3, Rate: 0.25}, interval.NewAtLeast(3), 0.015625},
	}
	for _, test := range tests {
		p, err := Probability(test.trial, test.iv)
		if err != nil {
			t.Fatalf("probability of %v failed; %v", test.iv, err)
		}
		if math.Abs(p-test.want) > 1e-12 {
			t.Fatalf("probability of %v: want %v, got %v", test.iv, test.want, p)
		}
	}
}

// TestExact_FullDomain checks that the probability mass of the whole outcome
// space sums to one.
func TestExact_FullDomain(t *testing.T) {
	trial := simulation.Trial{Visitors: 1000, Rate: 0.3}
	p, err := Probability(trial, interval.NewSpan(0, trial.Visitors))
	if err != nil {
		t.Fatalf("probability failed; %v", err)
	}
	if math.Abs(p-1.0) > 1e-9 {
		t.Fatalf("full domain: want 1, got %v", p)
	}
}

// TestExact_Partition checks that the canonical lower tail, upper tail, and
// middle intervals partition the probability mass.
func TestExact_Partition(t *testing.T) {
	trial := simulation.Trial{Visitors: 10000, Rate: 0.1}
	lower, err := Probability(trial, interval.NewAtMost(950))
	if err != nil {
		t.Fatalf("lower tail failed; %v", err)
	}
	upper, err := Probability(trial, interval.NewAtLeast(1050))
	if err != nil {
		t.Fatalf("upper tail failed; %v", err)
	}
	middle, err := Probability(trial, interval.NewInside(950, 1050))
	if err != nil {
		t.Fatalf("middle failed; %v", err)
	}
	if sum := lower + upper + middle; math.Abs(sum-1.0) > 1e-9 {
		t.Fatalf("partition: want sum 1, got %v", sum)
	}
}

// TestExact_EmptyInterval checks intervals that admit no success count.
func TestExact_EmptyInterval(t *testing.T) {
	trial := simulation.Trial{Visitors: 100, Rate: 0.5}
	tests := []interval.Interval{
		interval.NewInside(5, 6),
		interval.NewAtMost(-1),
		interval.NewAtLeast(101),
	}
	for _, iv := range tests {
		p, err := Probability(trial, iv)
		if err != nil {
			t.Fatalf("probability of %v failed; %v", iv, err)
		}
		if p != 0.0 {
			t.Fatalf("probability of %v: want 0, got %v", iv, p)
		}
	}
}

// TestExact_Degenerate checks rates whose probability mass sits on a single
// outcome.
func TestExact_Degenerate(t *testing.T) {
	zero := simulation.Trial{Visitors: 10, Rate: 0.0}
	one := simulation.Trial{Visitors: 10, Rate: 1.0}
	tests := []struct {
		trial simulation.Trial
		iv    interval.Interval
		want  float64
	}{
		{zero, interval.NewAtMost(0), 1.0},
		{zero, interval.NewAtLeast(1), 0.0},
		{zero, interval.NewInside(0, 10), 0.0},
		{one, interval.NewAtLeast(10), 1.0},
		{one, interval.NewAtMost(9), 0.0},
		{one, interval.NewSpan(0, 10), 1.0},
	}
	for _, test := range tests {
		p, err := Probability(test.trial, test.iv)
		if err != nil {
			t.Fatalf("probability of %v failed; %v", test.iv, err)
		}
		if p != test.want {
			t.Fatalf("probability of %v: want %v, got %v", test.iv, test.want, p)
		}
	}
}

// TestExact_ApproximationGap compares the exact lower tail for 10000
// visitors with rate 0.1 against the normal approximation. The discrete
// tail carries more mass than the continuity-uncorrected normal value of
// about 0.0478.
func TestExact_ApproximationGap(t *testing.T) {
	trial := simulation.Trial{Visitors: 10000, Rate: 0.1}
	iv := interval.NewAtMost(950)
	p, err := Probability(trial, iv)
	if err != nil {
		t.Fatalf("exact probability failed; %v", err)
	}
	if math.Abs(p-0.0487) > 5e-4 {
		t.Fatalf("lower tail: want about 0.0487, got %v", p)
	}
	approx, err := normal.Probability(trial, iv)
	if err != nil {
		t.Fatalf("normal approximation failed; %v", err)
	}
	if p <= approx {
		t.Fatalf("lower tail: exact mass (%v) must exceed the normal approximation (%v)", p, approx)
	}
}

// TestExact_Fails checks the rejection of invalid trials and intervals.
func TestExact_Fails(t *testing.T) {
	if _, err := Probability(simulation.Trial{Visitors: 0, Rate: 0.5}, interval.NewAtMost(5)); err == nil {
		t.Fatalf("invalid trial: want error, got nil")
	}
	if _, err := Probability(simulation.Trial{Visitors: 10, Rate: 0.5}, interval.NewInside(6, 5)); err == nil {
		t.Fatalf("crossed bounds: want error, got nil")
	}
}
