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
	"io"

	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

func Logrus() *logrus.Logger {
	return logger
}

// SetOutput redirects all subsequent log lines to w, replacing the writer
// configured by the last Config.Apply
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Enabled reports whether lines at the given level are currently emitted
func Enabled(level Level) bool {
	return logger.IsLevelEnabled(level.logrus())
}
