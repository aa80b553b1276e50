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

package interval

import (
	"fmt"
	"math"

	"github.com/rzaliznyak-math/random/simulation"
)

// Kind enumerates the supported interval shapes over success counts.
type Kind int

const (
	AtMost  Kind = iota // one-sided interval bounded from above
	AtLeast             // one-sided interval bounded from below
	Between             // two-sided interval
)

// Interval describes a set of success counts. The inclusion flags decide
// whether a bound itself belongs to the interval.
type Interval struct {
	Kind         Kind
	Lower        int64
	Upper        int64
	IncludeLower bool
	IncludeUpper bool
}

// NewAtMost constructs the one-sided interval x <= upper.
func NewAtMost(upper int64) Interval {
	return Interval{Kind: AtMost, Upper: upper, IncludeUpper: true}
}

// NewAtLeast constructs the one-sided interval x >= lower.
func NewAtLeast(lower int64) Interval {
	return Interval{Kind: AtLeast, Lower: lower, IncludeLower: true}
}

// NewInside constructs the two-sided interval lower < x < upper with
// strict bounds.
func NewInside(lower int64, upper int64) Interval {
	return Interval{Kind: Between, Lower: lower, Upper: upper}
}

// NewSpan constructs the two-sided interval lower <= x <= upper with
// inclusive bounds.
func NewSpan(lower int64, upper int64) Interval {
	return Interval{Kind: Between, Lower: lower, Upper: upper, IncludeLower: true, IncludeUpper: true}
}

// NewBetween constructs a two-sided interval with explicit inclusion flags.
func NewBetween(lower int64, upper int64, includeLower bool, includeUpper bool) Interval {
	return Interval{Kind: Between, Lower: lower, Upper: upper, IncludeLower: includeLower, IncludeUpper: includeUpper}
}

// Check validates the interval.
func (iv Interval) Check() error {
	switch iv.Kind {
	case AtMost, AtLeast:
		return nil
	case Between:
		if iv.Lower > iv.Upper {
			return fmt.Errorf("lower bound (%d) must not exceed upper bound (%d)", iv.Lower, iv.Upper)
		}
		return nil
	}
	return fmt.Errorf("unknown interval kind (%d)", iv.Kind)
}

// Contains reports whether the success count x lies inside the interval.
func (iv Interval) Contains(x int64) bool {
	switch iv.Kind {
	case AtMost:
		if iv.IncludeUpper {
			return x <= iv.Upper
		}
		return x < iv.Upper
	case AtLeast:
		if iv.IncludeLower {
			return x >= iv.Lower
		}
		return x > iv.Lower
	case Between:
		aboveLower := x > iv.Lower || (iv.IncludeLower && x == iv.Lower)
		belowUpper := x < iv.Upper || (iv.IncludeUpper && x == iv.Upper)
		return aboveLower && belowUpper
	}
	return false
}

// CountRange returns the closed integer range [lo,hi] of success counts of
// the interval, clamped to the outcome space [0,n]. The flag is false when
// no success count of the outcome space lies inside the interval.
func (iv Interval) CountRange(n int64) (int64, int64, bool) {
	lo, hi := int64(0), n
	switch iv.Kind {
	case AtMost:
		hi = iv.Upper
		if !iv.IncludeUpper {
			hi--
		}
	case AtLeast:
		lo = iv.Lower
		if !iv.IncludeLower {
			lo++
		}
	case Between:
		lo = iv.Lower
		if !iv.IncludeLower {
			lo++
		}
		hi = iv.Upper
		if !iv.IncludeUpper {
			hi--
		}
	}
	lo = max(lo, 0)
	hi = min(hi, n)
	return lo, hi, lo <= hi
}

// String renders the interval in the notation accepted by Parse.
func (iv Interval) String() string {
	switch iv.Kind {
	case AtMost:
		return fmt.Sprintf("x %s %d", relation("<", iv.IncludeUpper), iv.Upper)
	case AtLeast:
		return fmt.Sprintf("x %s %d", relation(">", iv.IncludeLower), iv.Lower)
	case Between:
		return fmt.Sprintf("%d %s x %s %d",
			iv.Lower, relation("<", iv.IncludeLower),
			relation("<", iv.IncludeUpper), iv.Upper)
	}
	return fmt.Sprintf("invalid interval kind (%d)", iv.Kind)
}

func relation(op string, inclusive bool) string {
	if inclusive {
		return op + "="
	}
	return op
}

// Defaults derives the canonical intervals of a trial: the one-sided tails
// and the two-sided center at a relative margin around the expected number
// of successes.
func Defaults(t simulation.Trial) []Interval {
	lower := int64(math.Round(t.Mean() * (1.0 - simulation.DefaultIntervalMargin)))
	upper := int64(math.Round(t.Mean() * (1.0 + simulation.DefaultIntervalMargin)))
	return []Interval{
		NewAtMost(lower),
		NewAtLeast(upper),
		NewInside(lower, upper),
	}
}
