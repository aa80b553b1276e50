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

import "fmt"

// SampleSet is a collection of success counts drawn from repeated experiments.
type SampleSet []int64

// Check validates that every success count lies in the range [0, visitors].
func (s SampleSet) Check(t Trial) error {
	for i, x := range s {
		if x < 0 || x > t.Visitors {
			return fmt.Errorf("sample %d: success count (%d) is outside the range [0,%d]", i, x, t.Visitors)
		}
	}
	return nil
}

// Frequency computes the counting statistics of the sample set.
func (s SampleSet) Frequency() map[int64]uint64 {
	freq := map[int64]uint64{}
	for _, x := range s {
		freq[x]++
	}
	return freq
}
