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

package visualizer

import (
	"fmt"
	"sync"

	"github.com/rzaliznyak-math/random/simulation"
	"github.com/rzaliznyak-math/random/simulation/recorder"
)

type viewState struct {
	result      *recorder.ResultJSON
	trial       simulation.Trial
	estimates   []estimateSeries
	smoothedCDF [][2]float64 // cumulative density rescaled to proportions
	normalPDF   [][2]float64 // normal approximation on the density grid
	normalCDF   [][2]float64 // normal approximation on the sample ECDF grid
}

var (
	currentMu    sync.RWMutex
	currentState *viewState
)

func setViewState(result *recorder.ResultJSON) error {
	if result == nil {
		return fmt.Errorf("visualizer: result is nil")
	}
	derived, err := buildViewState(result)
	if err != nil {
		return err
	}
	currentMu.Lock()
	currentState = derived
	currentMu.Unlock()
	return nil
}

func buildViewState(result *recorder.ResultJSON) (*viewState, error) {
	trial, err := result.Trial()
	if err != nil {
		return nil, fmt.Errorf("visualizer: restore trial: %w", err)
	}
	estimates, err := buildEstimateSeries(result)
	if err != nil {
		return nil, err
	}

	state := &viewState{
		result:      result,
		trial:       trial,
		estimates:   estimates,
		smoothedCDF: toProportionScale(result.CumulativeDensity, trial.Visitors),
	}
	if !trial.Degenerate() {
		state.normalPDF = normalDensity(trial, result.Density)
		state.normalCDF = normalProportionCDF(trial, result.SampleECDF)
	}
	return state, nil
}

func currentView() (*viewState, error) {
	currentMu.RLock()
	defer currentMu.RUnlock()
	if currentState == nil {
		return nil, fmt.Errorf("visualizer: result not initialised")
	}
	return currentState, nil
}
