// Copyright (c) 2022  The Go-Enjin Authors
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
	"fmt"
	"io"
	"log/syslog"
	"os"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

const (
	StandardTimestampFormat = "2006-01-02T15:04:05.000"
	DefaultTimestampFormat  = "20060102-150405.00"
)

type Configuration struct {
	DisableTimestamp bool
	TimestampFormat  string
	LoggingFormat    Format
	LogLevel         Level
	LogHook          string
	LogFile          string
	AppName          string
	PapertrailHost   string
	PapertrailPort   int
	PapertrailTag    string

	// Output overrides LogFile and stderr when not nil
	Output io.Writer
}

var (
	Config = &Configuration{
		DisableTimestamp: false,
		TimestampFormat:  DefaultTimestampFormat,
		LoggingFormat:    FormatPretty,
		LogLevel:         LevelInfo,
		LogHook:          "stdout",
		AppName:          "",
		PapertrailHost:   "",
		PapertrailPort:   0,
		PapertrailTag:    "",
	}
)

// Apply replaces the package logger with one built from this configuration.
// Apply returns an error instead of panicking when a hook or the log file
// cannot be set up; the previous logger is kept in that case.
func (c Configuration) Apply() (err error) {
	next := logrus.New()

	switch c.LoggingFormat {
	case FormatJson:
		next.SetFormatter(&logrus.JSONFormatter{
			DisableTimestamp: c.DisableTimestamp,
			TimestampFormat:  c.TimestampFormat,
		})
	case FormatText:
		next.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: c.DisableTimestamp,
			TimestampFormat:  c.TimestampFormat,
			DisableSorting:   true,
			DisableColors:    true,
			FullTimestamp:    !c.DisableTimestamp,
		})
	case FormatPretty:
		fallthrough
	default:
		next.SetFormatter(&prefixed.TextFormatter{
			DisableTimestamp: c.DisableTimestamp,
			TimestampFormat:  c.TimestampFormat,
			ForceFormatting:  true,
			FullTimestamp:    true,
			DisableSorting:   true,
			DisableColors:    true,
		})
	}

	next.SetLevel(c.LogLevel.logrus())

	switch {
	case c.Output != nil:
		next.SetOutput(c.Output)
	case c.LogFile != "":
		var fw *FileWriter
		if fw, err = NewFileWriter(c.LogFile); err != nil {
			return
		}
		next.SetOutput(fw)
	default:
		next.SetOutput(os.Stderr)
	}

	switch c.LogHook {
	case "syslog":
		var hook *SyslogHook
		if hook, err = NewSyslogLocalHook(syslog.LOG_INFO, c.AppName); err != nil {
			err = fmt.Errorf("error setting up syslog hook: %w", err)
			return
		}
		next.AddHook(hook)
	case "papertrail":
		var hook logrus.Hook
		if hook, err = NewPapertrailHook(c.PapertrailTag, c.PapertrailHost, c.PapertrailPort); err != nil {
			err = fmt.Errorf("error setting up papertrail hook: %w", err)
			return
		}
		next.AddHook(hook)
	case "stdout", "":
	default:
		err = fmt.Errorf("unknown log hook: %q", c.LogHook)
		return
	}

	logger = next
	return
}
