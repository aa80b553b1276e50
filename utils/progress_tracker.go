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

package utils

import (
	"time"

	"github.com/rzaliznyak-math/random/logger"
)

// OperationThreshold sets the number of operations between two progress reports.
const OperationThreshold = 100_000

// ProgressTracker reports the progress of a long-running sequence of
// operations in regular intervals.
type ProgressTracker struct {
	step   int           // step counter
	target int           // total number of operations
	start  time.Time     // start time of the operation sequence
	last   time.Time     // time of the last progress report
	rate   float64       // smoothed operation rate
	log    logger.Logger // already unified logger
}

// NewProgressTracker creates a new progress tracker for the given number
// of operations.
func NewProgressTracker(target int, log logger.Logger) *ProgressTracker {
	now := time.Now()
	return &ProgressTracker{
		step:   0,
		target: target,
		start:  now,
		last:   now,
		rate:   0.0,
		log:    log,
	}
}

// PrintProgress counts one operation and reports the progress once every
// OperationThreshold operations.
func (pt *ProgressTracker) PrintProgress() {
	pt.step++
	if pt.step%OperationThreshold == 0 {
		now := time.Now()
		currentRate := OperationThreshold / now.Sub(pt.last).Seconds()
		pt.rate = currentRate*0.1 + pt.rate*0.9
		pt.last = now
		hours, minutes, seconds := logger.ParseTime(now.Sub(pt.start))
		remaining := time.Duration(float64(pt.target-pt.step)/pt.rate) * time.Second
		etaHours, etaMinutes, etaSeconds := logger.ParseTime(remaining)
		pt.log.Infof("Elapsed time: %v:%02d:%02d; estimated time remaining: %v:%02d:%02d",
			hours, minutes, seconds, etaHours, etaMinutes, etaSeconds)
	}
}
