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

// Package register keeps a record of simulation runs in a sqlite3 database
// so results of repeated runs can be compared after the fact.
package register

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rzaliznyak-math/random/utils"
)

// RunIdentity names one simulation run. Runs started at the same second
// with the same configuration share the same id.
type RunIdentity struct {
	Timestamp int64
	Cfg       *utils.Config
}

func MakeRunIdentity(timestamp int64, cfg *utils.Config) *RunIdentity {
	return &RunIdentity{
		Timestamp: timestamp,
		Cfg:       cfg,
	}
}

// GetId returns the id of the run, the user supplied one if set.
func (id *RunIdentity) GetId() (string, error) {
	if id.Cfg.OverwriteRunId != "" {
		return id.Cfg.OverwriteRunId, nil
	}
	return id.hashConfigInfo()
}

// hashConfigInfo derives a short stable id from the config info.
func (id *RunIdentity) hashConfigInfo() (string, error) {
	info, err := id.fetchConfigInfo()
	if err != nil {
		return "", err
	}

	keys := make([]string, 0, len(info))
	for k := range info {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	hasher := md5.New()
	for _, k := range keys {
		fmt.Fprintf(hasher, "%s=%s;", k, info[k])
	}
	return hex.EncodeToString(hasher.Sum(nil))[:8], nil
}

// fetchConfigInfo collects the config values describing the run.
// The signature matches the environment fetchers of RunMetadata.
func (id *RunIdentity) fetchConfigInfo() (map[string]string, error) {
	return map[string]string{
		"AppName":        id.Cfg.AppName,
		"CommandName":    id.Cfg.CommandName,
		"RegisterRun":    id.Cfg.RegisterRun,
		"OverwriteRunId": id.Cfg.OverwriteRunId,
		"Archive":        id.Cfg.Archive,
		"Output":         id.Cfg.Output,
		"Intervals":      strings.Join(id.Cfg.Intervals, ","),
		"Visitors":       strconv.Itoa(int(id.Cfg.Visitors)),
		"Rate":           strconv.FormatFloat(id.Cfg.Rate, 'g', -1, 64),
		"Experiments":    strconv.Itoa(id.Cfg.Experiments),
		"RandomSeed":     strconv.Itoa(int(id.Cfg.RandomSeed)),
		"Workers":        strconv.Itoa(id.Cfg.Workers),
		"Timestamp":      strconv.Itoa(int(id.Timestamp)),
	}, nil
}
