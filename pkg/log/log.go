// Copyright 2021 The jackal Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"io"
	"os"
	"strings"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	debugLevel   = "debug"
	infoLevel    = "info"
	warningLevel = "warn"
	errorLevel   = "error"
	offLevel     = "off"

	jsonFormat = "json"
)

// Config contains logger configuration.
type Config struct {
	// Level is the minimum log level to output (debug, info, warn, error or off).
	Level string `fig:"level" default:"info"`

	// Format is the logger output format. Valid values are 'logfmt' and 'json'.
	Format string `fig:"format" default:"logfmt"`
}

// NewDefaultLogger creates a new go-kit logger writing to stderr with the configured level and format.
func NewDefaultLogger(lv, format string) kitlog.Logger {
	return NewLogger(os.Stderr, lv, format)
}

// NewLogger creates a new go-kit logger writing to w with the configured level and format.
func NewLogger(w io.Writer, lv, format string) kitlog.Logger {
	var logger kitlog.Logger

	sw := kitlog.NewSyncWriter(w)
	if strings.ToLower(format) == jsonFormat {
		logger = kitlog.NewJSONLogger(sw)
	} else {
		logger = kitlog.NewLogfmtLogger(sw)
	}
	logger = level.NewFilter(logger, allowOption(lv))
	return kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC, "caller", kitlog.DefaultCaller)
}

func allowOption(lv string) level.Option {
	switch strings.ToLower(lv) {
	case debugLevel:
		return level.AllowDebug()
	case infoLevel:
		return level.AllowInfo()
	case warningLevel:
		return level.AllowWarn()
	case errorLevel:
		return level.AllowError()
	case offLevel:
		return level.AllowNone()
	default:
		return level.AllowAll()
	}
}
