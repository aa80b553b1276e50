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
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
)

// ErrInvalidParameter indicates that an experiment parameter is outside its
// permitted range.
var ErrInvalidParameter = errors.New("invalid parameter")

// Trial holds the parameters of a binomial experiment: the number of visitors
// observed during one experiment and the true success rate of a single visitor.
type Trial struct {
	Visitors int64   // number of visitors (trials) per experiment
	Rate     float64 // success rate of a single visitor
}

// NewTrial constructs a trial and validates its parameters.
func NewTrial(visitors int64, rate float64) (Trial, error) {
	t := Trial{Visitors: visitors, Rate: rate}
	if err := t.Check(); err != nil {
		return Trial{}, err
	}
	return t, nil
}

// Check validates the trial parameters.
func (t Trial) Check() error {
	if t.Visitors < 1 {
		return fmt.Errorf("number of visitors (%d) must be at least one: %w", t.Visitors, ErrInvalidParameter)
	}
	if math.IsNaN(t.Rate) || t.Rate < 0.0 || t.Rate > 1.0 {
		return fmt.Errorf("success rate (%v) must be in the range [0,1]: %w", t.Rate, ErrInvalidParameter)
	}
	return nil
}

// Mean returns the expected number of successes of one experiment.
func (t Trial) Mean() float64 {
	return float64(t.Visitors) * t.Rate
}

// Variance returns the variance of the number of successes of one experiment.
func (t Trial) Variance() float64 {
	return float64(t.Visitors) * t.Rate * (1.0 - t.Rate)
}

// Degenerate reports whether the whole probability mass sits on a single
// outcome, i.e. the success rate is zero or one.
func (t Trial) Degenerate() bool {
	return t.Rate == 0.0 || t.Rate == 1.0
}
