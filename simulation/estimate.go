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
)

// Estimate pairs the empirical probability of an outcome interval with the
// analytical probability of its normal approximation. The analytical value
// depends only on the trial parameters and the interval, never on drawn
// samples.
type Estimate struct {
	Empirical  float64
	Analytical float64
}

// Check validates that both probabilities lie in the range [0,1].
func (e Estimate) Check() error {
	if math.IsNaN(e.Empirical) || e.Empirical < 0.0 || e.Empirical > 1.0 {
		return fmt.Errorf("empirical probability (%v) must be in the range [0,1]: %w", e.Empirical, ErrInvalidParameter)
	}
	if math.IsNaN(e.Analytical) || e.Analytical < 0.0 || e.Analytical > 1.0 {
		return fmt.Errorf("analytical probability (%v) must be in the range [0,1]: %w", e.Analytical, ErrInvalidParameter)
	}
	return nil
}

// Gap returns the absolute difference between the empirical and the
// analytical probability.
func (e Estimate) Gap() float64 {
	return math.Abs(e.Empirical - e.Analytical)
}
