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

// Package scenario runs declarative connect, disconnect and emit steps
// against a signal and records which receivers were invoked, in order.
package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/go-enjin/wink/pkg/errors"
)

type Format string

const (
	TomlFormat Format = "toml"
	YamlFormat Format = "yaml"
	JsonFormat Format = "json"
)

type Action string

const (
	ConnectAction    Action = "connect"
	DisconnectAction Action = "disconnect"
	EmitAction       Action = "emit"
)

type Step struct {
	Action   Action `toml:"action" yaml:"action" json:"action"`
	Receiver string `toml:"receiver,omitempty" yaml:"receiver,omitempty" json:"receiver,omitempty"`
	Value    string `toml:"value,omitempty" yaml:"value,omitempty" json:"value,omitempty"`
	// Expect lists the receivers an emit step must invoke, in order. A nil
	// Expect is not checked, an empty one requires no invocations.
	Expect []string `toml:"expect" yaml:"expect" json:"expect"`
	// AllowMissing turns a disconnect miss into a no-op
	AllowMissing bool `toml:"allow-missing,omitempty" yaml:"allow-missing,omitempty" json:"allow-missing,omitempty"`
}

type Scenario struct {
	Name      string   `toml:"name" yaml:"name" json:"name"`
	Receivers []string `toml:"receivers" yaml:"receivers" json:"receivers"`
	Steps     []Step   `toml:"steps" yaml:"steps" json:"steps"`
}

// FormatFromPath returns the Format for the file extension of path
func FormatFromPath(path string) (format Format, err error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml", ".tml":
		format = TomlFormat
	case ".yaml", ".yml":
		format = YamlFormat
	case ".json":
		format = JsonFormat
	default:
		err = fmt.Errorf("%w: %q", errors.ErrUnsupportedFormat, ext)
	}
	return
}

func Parse(data []byte, format Format) (s *Scenario, err error) {
	s = &Scenario{}
	switch format {
	case TomlFormat:
		err = toml.Unmarshal(data, s)
	case YamlFormat:
		err = yaml.Unmarshal(data, s)
	case JsonFormat:
		err = json.Unmarshal(data, s)
	default:
		err = fmt.Errorf("%w: %q", errors.ErrUnsupportedFormat, format)
	}
	if err != nil {
		s = nil
		return
	}
	if err = s.Validate(); err != nil {
		s = nil
	}
	return
}

// Load reads and parses the scenario file at path, naming the scenario after
// the file when it has no name of its own
func Load(path string) (s *Scenario, err error) {
	var format Format
	if format, err = FormatFromPath(path); err != nil {
		return
	}
	var data []byte
	if data, err = os.ReadFile(path); err != nil {
		return
	}
	if s, err = Parse(data, format); err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return
}
