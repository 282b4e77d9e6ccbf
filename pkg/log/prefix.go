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
	"regexp"
	"runtime"
	"strings"

	"github.com/puzpuzpuz/xsync/v2"
)

var (
	rxGoModuleVersion = regexp.MustCompile(`\@(.+?)/`)
	rxInvalidFuncName = regexp.MustCompile(`^\s*(\d+|func\d+)\s*$`)
)

// callerNames caches the short function name of each program counter seen,
// an empty name marks an anonymous function
var callerNames = xsync.NewIntegerMapOf[uintptr, string]()

func callerName(pc uintptr) (name string) {
	name, _ = callerNames.LoadOrCompute(pc, func() (short string) {
		short = runtime.FuncForPC(pc).Name()
		if i := strings.LastIndex(short, "."); i > -1 {
			short = short[i+1:]
		}
		if rxInvalidFuncName.MatchString(short) {
			short = ""
		}
		return
	})
	return
}

func getLogPrefix(depth int) string {
	depth += 1
	var file, name string
	var line int
	var ok bool
	if _, file, line, ok = runtime.Caller(depth); ok {
		file = rxGoModuleVersion.ReplaceAllString(file, "/")
		for i := depth; i < 20; i++ {
			if pc, _, _, ok := runtime.Caller(i); ok {
				if name = callerName(pc); name == "" {
					continue
				}
			}
			break
		}
	}
	if Config.LoggingFormat == FormatText {
		return "[" + name + "]"
	}
	return fmt.Sprintf("%s:%d [%s]", file, line, name)
}

func prefixLogEntry(depth int, format string) string {
	depth += 1
	return fmt.Sprintf("%v %v", getLogPrefix(depth), format)
}
