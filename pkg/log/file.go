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
	"os"
	"path/filepath"
)

var _ io.Writer = (*FileWriter)(nil)

// FileWriter appends each Write to a file, opening and closing the file on
// every call so that external log rotation never leaves a stale handle
type FileWriter struct {
	path string
	mode os.FileMode
}

func NewFileWriter(path string) (fw *FileWriter, err error) {
	if path == "" {
		err = fmt.Errorf("log file path is empty")
		return
	}
	if path, err = filepath.Abs(path); err != nil {
		return
	}
	fw = &FileWriter{path: path, mode: 0644}
	return
}

func (fw *FileWriter) Path() string {
	return fw.path
}

func (fw *FileWriter) Write(p []byte) (n int, err error) {
	var fh *os.File
	if fh, err = os.OpenFile(fw.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, fw.mode); err != nil {
		return
	}
	defer func() {
		if ee := fh.Close(); ee != nil && err == nil {
			err = ee
		}
	}()
	n, err = fh.Write(p)
	return
}
