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

// Package logger provides the leveled logging of the toolkit on top of
// github.com/op/go-logging.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

const logFormat = `%{color}%{time:2006/01/02 15:04:05} %{level:.4s} %{module}%{color:reset}: %{message}`

// LogLevelFlag sets the verbosity of the toolkit's logging.
var LogLevelFlag = cli.StringFlag{
	Name:    "log",
	Aliases: []string{"l"},
	Usage:   `Level of the logging of the app action ("critical", "error", "warning", "notice", "info", "debug")`,
	Value:   "info",
}

// Logger is the logging interface of the toolkit. It mirrors the surface of
// a go-logging logger so that commands can be tested with a mock.
type Logger interface {
	Critical(args ...interface{})
	Criticalf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Warning(args ...interface{})
	Warningf(format string, args ...interface{})
	Notice(args ...interface{})
	Noticef(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	Panic(args ...interface{})
	Panicf(format string, args ...interface{})
	IsEnabledFor(level logging.Level) bool
}

// NewLogger creates a new logger for the given module. An unknown level
// falls back to INFO.
func NewLogger(level string, module string) Logger {
	logLevel, err := logging.LogLevel(strings.ToUpper(level))
	if err != nil {
		logLevel = logging.INFO
	}
	backend := logging.NewLogBackend(os.Stdout, "", 0)
	formatter := logging.MustStringFormatter(logFormat)
	formattedBackend := logging.NewBackendFormatter(backend, formatter)
	leveledBackend := logging.AddModuleLevel(formattedBackend)
	leveledBackend.SetLevel(logLevel, "")
	log := logging.MustGetLogger(module)
	log.SetBackend(leveledBackend)
	return log
}

// ParseTime splits an elapsed time into hours, minutes, and seconds.
func ParseTime(elapsed time.Duration) (uint32, uint32, uint32) {
	seconds := uint32(elapsed.Seconds())
	hours := seconds / 3600
	seconds -= hours * 3600
	minutes := seconds / 60
	seconds -= minutes * 60
	return hours, minutes, seconds
}
