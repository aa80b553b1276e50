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
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rzaliznyak-math/random/simulation"
	"github.com/rzaliznyak-math/random/simulation/statistics/interval"
)

// testResult builds a small run from a hand-picked sample set.
func testResult(t *testing.T) *Result {
	t.Helper()
	trial, err := simulation.NewTrial(4, 0.5)
	if err != nil {
		t.Fatalf("unexpected trial error: %v", err)
	}
	samples := simulation.SampleSet{0, 1, 2, 2, 3, 4, 2, 1}
	ivs := []interval.Interval{
		interval.NewAtMost(1),
		interval.NewAtLeast(3),
		interval.NewInside(1, 3),
	}
	r, err := NewResult(trial, 42, 2, samples, ivs)
	if err != nil {
		t.Fatalf("unexpected result error: %v", err)
	}
	return r
}

// TestResultIntervalEstimates checks counts and probabilities of a small
// hand-checked sample set.
func TestResultIntervalEstimates(t *testing.T) {
	r := testResult(t)

	if len(r.estimates) != 3 {
		t.Fatalf("expected 3 estimates, got %d", len(r.estimates))
	}

	// the three intervals partition the outcome space; counts must add up
	total := int64(0)
	for _, e := range r.estimates {
		total += e.count
	}
	if total != int64(len(r.samples)) {
		t.Fatalf("interval counts must partition the sample set, got %d of %d", total, len(r.samples))
	}

	// x <= 1 holds the samples {0, 1, 1}
	atMost := r.estimates[0]
	if atMost.count != 3 {
		t.Fatalf("expected 3 samples at most one, got %d", atMost.count)
	}
	assert.InDelta(t, 0.375, atMost.empirical, 1e-9)
	assert.InDelta(t, 0.3125, atMost.exact, 1e-9)
	if atMost.analytical == nil {
		t.Fatalf("expected a normal approximation for a regular rate")
	}
	// standard error 0.25; the bound 1/4 sits one standard error below the mean
	assert.InDelta(t, 0.158655, *atMost.analytical, 1e-6)

	// x >= 3 holds the samples {3, 4}
	atLeast := r.estimates[1]
	if atLeast.count != 2 {
		t.Fatalf("expected 2 samples at least three, got %d", atLeast.count)
	}
	assert.InDelta(t, 0.25, atLeast.empirical, 1e-9)
	assert.InDelta(t, 0.3125, atLeast.exact, 1e-9)
	assert.InDelta(t, 0.158655, *atLeast.analytical, 1e-6)

	// 1 < x < 3 holds the samples {2, 2, 2}
	inside := r.estimates[2]
	if inside.count != 3 {
		t.Fatalf("expected 3 samples strictly between, got %d", inside.count)
	}
	assert.InDelta(t, 0.375, inside.empirical, 1e-9)
	assert.InDelta(t, 0.375, inside.exact, 1e-9)
	assert.InDelta(t, 0.682689, *inside.analytical, 1e-6)

	// the convergence series ends with the estimate of the full sample set
	series := atMost.convergence
	if len(series) == 0 {
		t.Fatalf("convergence series must not be empty")
	}
	last := series[len(series)-1]
	assert.InDelta(t, float64(len(r.samples)), last[0], 1e-9)
	assert.InDelta(t, atMost.empirical, last[1], 1e-9)

	// summary statistics of the samples
	assert.Equal(t, uint64(8), r.summary.Count())
	assert.InDelta(t, 0.0, r.summary.Min(), 1e-9)
	assert.InDelta(t, 4.0, r.summary.Max(), 1e-9)
	assert.InDelta(t, 1.875, r.summary.Mean(), 1e-9)

	// distribution curves
	if len(r.density) != simulation.NumDensityPoints {
		t.Fatalf("expected %d density points, got %d", simulation.NumDensityPoints, len(r.density))
	}
	if len(r.cumulative) != len(r.density) {
		t.Fatalf("cumulative grid must match the density grid")
	}
	if len(r.sampleECDF) == 0 {
		t.Fatalf("sample ecdf must not be empty")
	}

	// accessors
	assert.Equal(t, simulation.Trial{Visitors: 4, Rate: 0.5}, r.Trial())
	assert.Equal(t, uint64(42), r.Seed())
	assert.Equal(t, simulation.SampleSet{0, 1, 2, 2, 3, 4, 2, 1}, r.Samples())
}

// TestResultDegenerateRateOmitsAnalytical checks a rate with the whole
// probability mass on a single outcome.
func TestResultDegenerateRateOmitsAnalytical(t *testing.T) {
	trial, err := simulation.NewTrial(4, 0.0)
	if err != nil {
		t.Fatalf("unexpected trial error: %v", err)
	}
	samples := simulation.SampleSet{0, 0, 0, 0}
	r, err := NewResult(trial, 1, 1, samples, []interval.Interval{interval.NewAtMost(1)})
	if err != nil {
		t.Fatalf("unexpected result error: %v", err)
	}

	est := r.estimates[0]
	if est.analytical != nil {
		t.Fatalf("expected no normal approximation for a degenerate rate")
	}
	assert.InDelta(t, 1.0, est.empirical, 1e-9)
	assert.InDelta(t, 1.0, est.exact, 1e-9)

	// a constant sample set has no smooth density
	if r.density != nil || r.cumulative != nil {
		t.Fatalf("expected no density curves for a constant sample set")
	}

	out := r.JSON()
	if out.Estimates[0].Analytical != nil {
		t.Fatalf("expected no analytical column in the JSON output")
	}
}

// TestNewResultValidates checks the rejection of implausible runs.
func TestNewResultValidates(t *testing.T) {
	trial, err := simulation.NewTrial(4, 0.5)
	if err != nil {
		t.Fatalf("unexpected trial error: %v", err)
	}
	ivs := []interval.Interval{interval.NewAtMost(1)}

	tests := []struct {
		name    string
		trial   simulation.Trial
		samples simulation.SampleSet
		ivs     []interval.Interval
	}{
		{"invalid trial", simulation.Trial{Visitors: 0, Rate: 0.5}, simulation.SampleSet{1}, ivs},
		{"empty sample set", trial, simulation.SampleSet{}, ivs},
		{"sample out of range", trial, simulation.SampleSet{5}, ivs},
		{"invalid interval", trial, simulation.SampleSet{1}, []interval.Interval{interval.NewInside(3, 1)}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := NewResult(test.trial, 0, 1, test.samples, test.ivs); err == nil {
				t.Fatalf("expected an error for %v", test.name)
			}
		})
	}
}

func TestResultJSONMarshalSetsFileID(t *testing.T) {
	resultJSON := ResultJSON{}
	bytes, err := json.Marshal(resultJSON)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}
	var decoded ResultJSON
	if err := json.Unmarshal(bytes, &decoded); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if decoded.FileId != resultFileID {
		t.Fatalf("expected FileId %q, got %q", resultFileID, decoded.FileId)
	}
}

func TestResultJSONUnmarshalRejectsInvalidFileID(t *testing.T) {
	data := []byte(`{"FileId":"invalid"}`)
	var resultJSON ResultJSON
	if err := json.Unmarshal(data, &resultJSON); err == nil {
		t.Fatalf("expected error for invalid FileId")
	}
}

func TestResultJSONUnmarshalRejectsMissingFileID(t *testing.T) {
	payload := []byte(`{"estimates":[]}`)
	var resultJSON ResultJSON
	if err := json.Unmarshal(payload, &resultJSON); err == nil {
		t.Fatalf("expected error for missing FileId")
	}
}

func TestResultJSONUnmarshalInvalidJSON(t *testing.T) {
	var resultJSON ResultJSON
	if err := resultJSON.UnmarshalJSON([]byte("{invalid")); err == nil {
		t.Fatalf("expected unmarshal error for malformed input")
	}
}

// TestResultJSONTrial checks the trial reconstruction from a stored result.
func TestResultJSONTrial(t *testing.T) {
	resultJSON := ResultJSON{Visitors: 10000, Rate: 0.1}
	trial, err := resultJSON.Trial()
	if err != nil {
		t.Fatalf("unexpected trial error: %v", err)
	}
	assert.Equal(t, int64(10000), trial.Visitors)
	assert.InDelta(t, 0.1, trial.Rate, 1e-9)

	resultJSON = ResultJSON{Visitors: 10000, Rate: 1.5}
	if _, err := resultJSON.Trial(); !errors.Is(err, simulation.ErrInvalidParameter) {
		t.Fatalf("expected an invalid parameter error, got %v", err)
	}
}

// TestRecorder_ReadResult tests reading a result from a JSON file.
func TestRecorder_ReadResult(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("success", func(t *testing.T) {
		input := &ResultJSON{
			FileId: resultFileID,
		}
		marshal, err := json.Marshal(input)
		if err != nil {
			t.Fatalf("cannot marshal ResultJSON; %v", err)
		}
		err = os.WriteFile(tempDir+"/result.json", marshal, 0644)
		if err != nil {
			t.Fatalf("cannot write ResultJSON to file; %v", err)
		}

		result, err := Read(tempDir + "/result.json")
		assert.NoError(t, err)
		assert.NotNil(t, result)
	})

	t.Run("no result file", func(t *testing.T) {
		err := os.WriteFile(tempDir+"/result.json", []byte(`{"estimates":[]}`), 0644)
		if err != nil {
			t.Fatalf("cannot write ResultJSON to file; %v", err)
		}

		result, err := Read(tempDir + "/result.json")
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("no json", func(t *testing.T) {
		err := os.WriteFile(tempDir+"/result.json", []byte{}, 0644)
		if err != nil {
			t.Fatalf("cannot write ResultJSON to file; %v", err)
		}
		result, err := Read(tempDir + "/result.json")
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("no exist", func(t *testing.T) {
		result, err := Read(tempDir + "/1234.json")
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

// TestResult_WriteJSON_SuccessAndError tests writing a result to a JSON file.
func TestResult_WriteJSON_SuccessAndError(t *testing.T) {
	r := testResult(t)

	tmp := t.TempDir()
	file := tmp + "/result.json"
	err := r.Write(file)
	assert.NoError(t, err)
	_, err = os.Stat(file)
	assert.NoError(t, err)

	// a written result must read back with the run facts intact
	stored, err := Read(file)
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	assert.Equal(t, resultFileID, stored.FileId)
	assert.Equal(t, int64(4), stored.Visitors)
	assert.InDelta(t, 0.5, stored.Rate, 1e-9)
	assert.Equal(t, uint64(42), stored.RandomSeed)
	assert.Equal(t, 8, stored.Experiments)
	assert.Equal(t, 2, stored.Workers)
	assert.Len(t, stored.Estimates, 3)
	assert.Equal(t, "x <= 1", stored.Estimates[0].Interval)
	assert.Len(t, stored.Density, simulation.NumDensityPoints)

	// error path: write to a directory
	err = r.Write(tmp)
	assert.Error(t, err)
}

// TestResult_WriteJSON_WriteError tests error handling during file writing.
func TestResult_WriteJSON_WriteError(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("/dev/full is Linux-specific")
	}
	r := testResult(t)
	err := r.Write("/dev/full")
	assert.Error(t, err)
}
