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

package recorder

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/rzaliznyak-math/random/simulation"
	"github.com/rzaliznyak-math/random/simulation/statistics/exact"
	"github.com/rzaliznyak-math/random/simulation/statistics/interval"
	"github.com/rzaliznyak-math/random/simulation/statistics/normal"
)

// Render writes the interval estimates of the run as a table. The gap column
// holds the absolute difference between the empirical estimate and the
// normal approximation.
func (r *Result) Render(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Interval probabilities of Binomial(%d, %v)", r.trial.Visitors, r.trial.Rate)
	t.AppendHeader(table.Row{"Interval", "Count", "Empirical", "Analytical", "Exact", "Gap"})
	for _, e := range r.estimates {
		analytical, gap := "n/a", "n/a"
		if e.analytical != nil {
			pair := simulation.Estimate{Empirical: e.empirical, Analytical: *e.analytical}
			analytical = formatProbability(*e.analytical)
			gap = formatProbability(pair.Gap())
		}
		t.AppendRow(table.Row{e.iv.String(), e.count, formatProbability(e.empirical), analytical, formatProbability(e.exact), gap})
	}
	t.SetCaption("%d experiments, random seed %d, sample mean %.2f, sample std dev %.2f",
		r.experiments, r.seed, r.summary.Mean(), r.summary.StdDev())
	t.Render()
}

// RenderReference writes the analytical and exact interval probabilities of
// a trial as a table. No samples are needed; the empirical columns of a full
// run are omitted.
func RenderReference(w io.Writer, trial simulation.Trial, ivs []interval.Interval) error {
	if err := trial.Check(); err != nil {
		return err
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Reference probabilities of Binomial(%d, %v)", trial.Visitors, trial.Rate)
	t.AppendHeader(table.Row{"Interval", "Analytical", "Exact"})
	for _, iv := range ivs {
		analytical := "n/a"
		if !trial.Degenerate() {
			a, err := normal.Probability(trial, iv)
			if err != nil {
				return err
			}
			analytical = formatProbability(a)
		}
		x, err := exact.Probability(trial, iv)
		if err != nil {
			return err
		}
		t.AppendRow(table.Row{iv.String(), analytical, formatProbability(x)})
	}
	t.Render()
	return nil
}

// formatProbability renders a probability with six decimals.
func formatProbability(p float64) string {
	return strconv.FormatFloat(p, 'f', 6, 64)
}
