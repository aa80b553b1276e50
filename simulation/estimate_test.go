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

package simulation

import (
	"errors"
	"math"
	"testing"
)

// TestEstimate_Check validates the probability ranges of an estimate.
func TestEstimate_Check(t *testing.T) {
	if err := (Estimate{Empirical: 0.047, Analytical: 0.0478}).Check(); err != nil {
		t.Fatalf("valid estimate: want nil, got %v", err)
	}
	if err := (Estimate{Empirical: 0.0, Analytical: 1.0}).Check(); err != nil {
		t.Fatalf("boundary probabilities are valid: want nil, got %v", err)
	}
	invalid := []Estimate{
		{Empirical: -0.1, Analytical: 0.5},
		{Empirical: 1.1, Analytical: 0.5},
		{Empirical: 0.5, Analytical: -0.1},
		{Empirical: 0.5, Analytical: 1.1},
		{Empirical: math.NaN(), Analytical: 0.5},
		{Empirical: 0.5, Analytical: math.NaN()},
	}
	for _, e := range invalid {
		if err := e.Check(); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("estimate %v: want ErrInvalidParameter, got %v", e, err)
		}
	}
}

// TestEstimate_Gap checks the absolute difference of an estimate pair.
func TestEstimate_Gap(t *testing.T) {
	e := Estimate{Empirical: 0.047, Analytical: 0.0478}
	if got := e.Gap(); math.Abs(got-0.0008) > 1e-12 {
		t.Fatalf("gap: want 0.0008, got %v", got)
	}
	e = Estimate{Empirical: 0.05, Analytical: 0.04}
	if got := e.Gap(); math.Abs(got-0.01) > 1e-12 {
		t.Fatalf("gap: want 0.01, got %v", got)
	}
}
