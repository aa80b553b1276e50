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
	"strconv"
	"strings"
)

// Parse reads an interval from its textual notation. The variable of the
// notation is the success count x; one-sided intervals may omit it.
// Accepted forms are "x<=950", "<950", "x>=1050", ">1050", "950<x<1050",
// and "90<=x<=110". Whitespace is ignored.
func Parse(s string) (Interval, error) {
	compact := strings.ReplaceAll(s, " ", "")
	if compact == "" {
		return Interval{}, fmt.Errorf("empty interval notation")
	}
	parts := strings.Split(compact, "x")
	switch len(parts) {
	case 1:
		return parseOneSided(s, parts[0])
	case 2:
		if parts[0] == "" {
			return parseOneSided(s, parts[1])
		}
		return parseTwoSided(s, parts[0], parts[1])
	}
	return Interval{}, fmt.Errorf("invalid interval notation %q", s)
}

// ParseAll reads a list of interval notations.
func ParseAll(notations []string) ([]Interval, error) {
	intervals := make([]Interval, 0, len(notations))
	for _, s := range notations {
		iv, err := Parse(s)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, iv)
	}
	return intervals, nil
}

// parseOneSided reads forms like "<=950" or ">1050".
func parseOneSided(orig string, s string) (Interval, error) {
	op, rest, err := cutRelation(orig, s)
	if err != nil {
		return Interval{}, err
	}
	bound, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return Interval{}, fmt.Errorf("invalid interval bound in %q", orig)
	}
	switch op {
	case "<=":
		return NewAtMost(bound), nil
	case "<":
		return Interval{Kind: AtMost, Upper: bound}, nil
	case ">=":
		return NewAtLeast(bound), nil
	case ">":
		return Interval{Kind: AtLeast, Lower: bound}, nil
	}
	return Interval{}, fmt.Errorf("invalid interval notation %q", orig)
}

// parseTwoSided reads two-sided forms such as "950<x<1050", already split
// at the variable.
func parseTwoSided(orig string, left string, right string) (Interval, error) {
	includeLower := false
	lowerText, ok := strings.CutSuffix(left, "<=")
	if ok {
		includeLower = true
	} else if lowerText, ok = strings.CutSuffix(left, "<"); !ok {
		return Interval{}, fmt.Errorf("invalid lower relation in %q", orig)
	}
	op, upperText, err := cutRelation(orig, right)
	if err != nil {
		return Interval{}, err
	}
	if op != "<" && op != "<=" {
		return Interval{}, fmt.Errorf("invalid upper relation in %q", orig)
	}
	lower, err := strconv.ParseInt(lowerText, 10, 64)
	if err != nil {
		return Interval{}, fmt.Errorf("invalid lower bound in %q", orig)
	}
	upper, err := strconv.ParseInt(upperText, 10, 64)
	if err != nil {
		return Interval{}, fmt.Errorf("invalid upper bound in %q", orig)
	}
	iv := NewBetween(lower, upper, includeLower, op == "<=")
	if err := iv.Check(); err != nil {
		return Interval{}, err
	}
	return iv, nil
}

// cutRelation splits a leading relation operator off the given text.
func cutRelation(orig string, s string) (string, string, error) {
	for _, op := range []string{"<=", ">=", "<", ">"} {
		if rest, ok := strings.CutPrefix(s, op); ok {
			return op, rest, nil
		}
	}
	return "", "", fmt.Errorf("invalid interval notation %q", orig)
}
