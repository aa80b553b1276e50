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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rzaliznyak-math/random/simulation"
	"github.com/rzaliznyak-math/random/simulation/statistics/density"
	"github.com/rzaliznyak-math/random/simulation/statistics/empirical"
	"github.com/rzaliznyak-math/random/simulation/statistics/exact"
	"github.com/rzaliznyak-math/random/simulation/statistics/interval"
	"github.com/rzaliznyak-math/random/simulation/statistics/normal"
	"github.com/rzaliznyak-math/random/utils/analytics"
)

// Result captures one simulation run: the trial parameters, the summary
// statistics of the drawn samples, the interval estimates, and the
// distribution curves for later visualization.
type Result struct {
	// Trial parameters of the run
	trial simulation.Trial

	// Random seed the samples were drawn with
	seed uint64

	// Number of simulated experiments
	experiments int

	// Number of worker threads that drew the samples
	workers int

	// Unix timestamp of the run
	createdAt int64

	// Drawn success counts
	samples simulation.SampleSet

	// Summary statistics of the success counts
	summary analytics.IncrementalStats

	// Probability estimates of the evaluated intervals
	estimates []intervalEstimate

	// Distribution curves of the success counts
	density    [][2]float64
	cumulative [][2]float64
	sampleECDF [][2]float64
}

// intervalEstimate joins the probability estimates of one interval.
type intervalEstimate struct {
	// Evaluated interval
	iv interval.Interval

	// Number of samples inside the interval
	count int64

	// Fraction of samples inside the interval
	empirical float64

	// Interval probability of the normal approximation; nil for a
	// degenerate success rate, which has no approximation
	analytical *float64

	// Interval probability of the exact binomial distribution
	exact float64

	// Running empirical estimate after growing sample prefixes
	convergence [][2]float64
}

// NewResult evaluates the intervals against the sample set and derives the
// distribution curves of the run.
func NewResult(trial simulation.Trial, seed uint64, workers int, samples simulation.SampleSet, ivs []interval.Interval) (*Result, error) {
	if err := trial.Check(); err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("cannot build a result from an empty sample set: %w", simulation.ErrInvalidParameter)
	}
	if err := samples.Check(trial); err != nil {
		return nil, err
	}

	r := &Result{
		trial:       trial,
		seed:        seed,
		experiments: len(samples),
		workers:     workers,
		createdAt:   time.Now().Unix(),
		samples:     samples,
	}
	for _, x := range samples {
		r.summary.Update(float64(x))
	}
	for _, iv := range ivs {
		est, err := newIntervalEstimate(trial, samples, iv)
		if err != nil {
			return nil, err
		}
		r.estimates = append(r.estimates, est)
	}

	// a sample set without spread has no smooth density; the curves of the
	// run stay empty
	if grid, err := density.KDE(samples, simulation.NumDensityPoints); err == nil {
		cdf, err := density.Cumulative(grid)
		if err != nil {
			return nil, err
		}
		r.density = grid
		r.cumulative = cdf
	}
	r.sampleECDF = density.SampleECDF(samples, trial.Visitors)
	return r, nil
}

// newIntervalEstimate evaluates one interval against the sample set.
func newIntervalEstimate(trial simulation.Trial, samples simulation.SampleSet, iv interval.Interval) (intervalEstimate, error) {
	if err := iv.Check(); err != nil {
		return intervalEstimate{}, err
	}
	est := intervalEstimate{
		iv:    iv,
		count: empirical.Count(samples, iv),
	}
	p, err := empirical.Probability(samples, iv)
	if err != nil {
		return intervalEstimate{}, err
	}
	est.empirical = p

	// a degenerate success rate has no normal approximation; the column
	// stays empty
	if !trial.Degenerate() {
		a, err := normal.Probability(trial, iv)
		if err != nil {
			return intervalEstimate{}, err
		}
		est.analytical = &a
	}

	x, err := exact.Probability(trial, iv)
	if err != nil {
		return intervalEstimate{}, err
	}
	est.exact = x

	series, err := empirical.Convergence(samples, iv, simulation.NumConvergencePoints)
	if err != nil {
		return intervalEstimate{}, err
	}
	est.convergence = series
	return est, nil
}

// Trial returns the trial parameters of the run.
func (r *Result) Trial() simulation.Trial {
	return r.trial
}

// Seed returns the random seed the samples were drawn with.
func (r *Result) Seed() uint64 {
	return r.seed
}

// Samples returns the drawn success counts of the run.
func (r *Result) Samples() simulation.SampleSet {
	return r.samples
}

// EstimateJSON is the JSON output format of one interval estimate.
type EstimateJSON struct {
	Interval    string       `json:"interval"`              // interval in the notation accepted by Parse
	Count       int64        `json:"count"`                 // number of samples inside the interval
	Empirical   float64      `json:"empirical"`             // fraction of samples inside the interval
	Analytical  *float64     `json:"analytical,omitempty"`  // normal approximation; absent for a degenerate rate
	Exact       float64      `json:"exact"`                 // exact binomial probability
	Convergence [][2]float64 `json:"convergence,omitempty"` // running empirical estimate
}

// ResultJSON is the JSON struct of a recorded simulation run.
type ResultJSON struct {
	FileId      string  `json:"FileId"`      // file identification
	CreatedAt   int64   `json:"createdAt"`   // unix timestamp of the run
	Visitors    int64   `json:"visitors"`    // visitors (trials) per experiment
	Rate        float64 `json:"rate"`        // success rate of a single visitor
	RandomSeed  uint64  `json:"randomSeed"`  // random seed of the run
	Experiments int     `json:"experiments"` // number of simulated experiments
	Workers     int     `json:"workers"`     // number of worker threads

	// summary statistics of the success counts
	Summary analytics.IncrementalStatsJSON `json:"summary"`

	// probability estimates of the evaluated intervals
	Estimates []EstimateJSON `json:"estimates"`

	// distribution curves of the success counts
	Density           [][2]float64 `json:"density,omitempty"`
	CumulativeDensity [][2]float64 `json:"cumulativeDensity,omitempty"`
	SampleECDF        [][2]float64 `json:"sampleEcdf,omitempty"`
}

const resultFileID = "simulation"

// MarshalJSON ensures the FileId is populated before serialising.
func (r ResultJSON) MarshalJSON() ([]byte, error) {
	if r.FileId == "" {
		r.FileId = resultFileID
	}
	type alias ResultJSON
	return json.Marshal(alias(r))
}

// UnmarshalJSON validates the FileId while deserialising.
func (r *ResultJSON) UnmarshalJSON(data []byte) error {
	type alias ResultJSON
	var tmp alias
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	if tmp.FileId == "" {
		return fmt.Errorf("ResultJSON: missing FileId")
	}
	if tmp.FileId != resultFileID {
		return fmt.Errorf("ResultJSON: unexpected FileId %q", tmp.FileId)
	}
	*r = ResultJSON(tmp)
	return nil
}

// Trial returns the trial parameters stored in the result.
func (r *ResultJSON) Trial() (simulation.Trial, error) {
	return simulation.NewTrial(r.Visitors, r.Rate)
}

// JSON produces the JSON struct of the run.
func (r *Result) JSON() ResultJSON {
	estimates := make([]EstimateJSON, 0, len(r.estimates))
	for _, e := range r.estimates {
		estimates = append(estimates, EstimateJSON{
			Interval:    e.iv.String(),
			Count:       e.count,
			Empirical:   e.empirical,
			Analytical:  e.analytical,
			Exact:       e.exact,
			Convergence: e.convergence,
		})
	}
	return ResultJSON{
		FileId:            resultFileID,
		CreatedAt:         r.createdAt,
		Visitors:          r.trial.Visitors,
		Rate:              r.trial.Rate,
		RandomSeed:        r.seed,
		Experiments:       r.experiments,
		Workers:           r.workers,
		Summary:           r.summary.JSON(),
		Estimates:         estimates,
		Density:           r.density,
		CumulativeDensity: r.cumulative,
		SampleECDF:        r.sampleECDF,
	}
}

// Read a result from a file in JSON format.
func Read(filename string) (*ResultJSON, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed opening result file %v; %v", filename, err)
	}
	defer func(file *os.File) {
		err = errors.Join(err, file.Close())
	}(file)
	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed reading result file; %v", err)
	}
	var resultJSON ResultJSON
	err = json.Unmarshal(contents, &resultJSON)
	if err != nil {
		return nil, fmt.Errorf("cannot unmarshal result; %v", err)
	}
	if resultJSON.FileId != resultFileID {
		return nil, fmt.Errorf("file %v is not a simulation result file", filename)
	}
	return &resultJSON, nil
}

// Write a result in JSON format.
func (r *Result) Write(filename string) (err error) {
	f, fErr := os.Create(filename)
	if fErr != nil {
		return fmt.Errorf("cannot open for writing JSON file; %v", fErr)
	}
	defer func(f *os.File) {
		err = errors.Join(err, f.Close())
	}(f)
	jOut, err := json.MarshalIndent(r.JSON(), "", "    ")
	if err != nil {
		return fmt.Errorf("failed to convert JSON; %v", err)
	}
	_, err = fmt.Fprintln(f, string(jOut))
	if err != nil {
		return fmt.Errorf("failed to write file; %v", err)
	}
	return nil
}
