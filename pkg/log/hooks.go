// Copyright (c) 2023  The Go-Enjin Authors
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
	"log/syslog"

	papertrail "github.com/polds/logrus-papertrail-hook"
	"github.com/sirupsen/logrus"

	"github.com/go-enjin/wink/pkg/globals"
)

// SyslogHook forwards every entry to the local or a remote syslog daemon
type SyslogHook struct {
	Writer  *syslog.Writer
	Network string
	Raddr   string
}

func NewSyslogNetworkHook(network, raddr string, priority syslog.Priority, tag string) (hook *SyslogHook, err error) {
	var w *syslog.Writer
	if w, err = syslog.Dial(network, raddr, priority, tag); err != nil {
		return
	}
	hook = &SyslogHook{Writer: w, Network: network, Raddr: raddr}
	return
}

func NewSyslogLocalHook(priority syslog.Priority, tag string) (hook *SyslogHook, err error) {
	return NewSyslogNetworkHook("", "", priority, tag)
}

func (hook *SyslogHook) Fire(entry *logrus.Entry) (err error) {
	var line string
	if line, err = entry.String(); err != nil {
		return
	}

	switch entry.Level {
	case logrus.PanicLevel, logrus.FatalLevel:
		return hook.Writer.Crit(line)
	case logrus.ErrorLevel:
		return hook.Writer.Err(line)
	case logrus.WarnLevel:
		return hook.Writer.Warning(line)
	case logrus.InfoLevel:
		return hook.Writer.Info(line)
	case logrus.DebugLevel, logrus.TraceLevel:
		return hook.Writer.Debug(line)
	}
	return
}

func (hook *SyslogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// NewPapertrailHook ships log entries to a papertrail UDP endpoint, tag
// defaults to globals.BinName
func NewPapertrailHook(tag, host string, port int) (hook logrus.Hook, err error) {
	if host == "" || port <= 0 {
		err = fmt.Errorf("papertrail host and port are required")
		return
	}
	if tag == "" {
		tag = globals.BinName
	}
	hook, err = papertrail.NewPapertrailHook(&papertrail.Hook{
		Host:     host,
		Port:     port,
		Hostname: globals.Hostname,
		Appname:  tag,
	})
	return
}
