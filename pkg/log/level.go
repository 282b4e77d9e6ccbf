// Copyright (c) 2024  The Go-Enjin Authors
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
	"strings"

	"github.com/sirupsen/logrus"
)

type Level string

const (
	LevelError Level = "error"
	LevelWarn  Level = "warn"
	LevelInfo  Level = "info"
	LevelDebug Level = "debug"
	LevelTrace Level = "trace"
)

var Levels = map[string]Level{
	"error": LevelError,
	"warn":  LevelWarn,
	"info":  LevelInfo,
	"debug": LevelDebug,
	"trace": LevelTrace,
}

func (l Level) String() string {
	return string(l)
}

func (l Level) logrus() logrus.Level {
	switch l {
	case LevelTrace:
		return logrus.TraceLevel
	case LevelDebug:
		return logrus.DebugLevel
	case LevelInfo:
		return logrus.InfoLevel
	case LevelWarn:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

type Format string

const (
	FormatPretty Format = "pretty"
	FormatText   Format = "text"
	FormatJson   Format = "json"
)

var Formats = map[string]Format{
	"pretty": FormatPretty,
	"text":   FormatText,
	"json":   FormatJson,
}

func (f Format) String() string {
	return string(f)
}

// ParseLevel looks up the named level, case-insensitively
func ParseLevel(name string) (level Level, ok bool) {
	level, ok = Levels[strings.ToLower(strings.TrimSpace(name))]
	return
}

// ParseFormat looks up the named format, case-insensitively
func ParseFormat(name string) (format Format, ok bool) {
	format, ok = Formats[strings.ToLower(strings.TrimSpace(name))]
	return
}
