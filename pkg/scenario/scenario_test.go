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

package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	winkErrors "github.com/go-enjin/wink/pkg/errors"
)

const tomlScenario = `name = "basic"
receivers = ["f", "g"]

[[steps]]
action = "connect"
receiver = "f"

[[steps]]
action = "connect"
receiver = "g"

[[steps]]
action = "emit"
value = "42"
expect = ["f", "g"]

[[steps]]
action = "disconnect"
receiver = "f"

[[steps]]
action = "emit"
value = "42"
expect = ["g"]
`

const yamlScenario = `name: duplicates
receivers: [f, g]
steps:
  - action: connect
    receiver: f
  - action: connect
    receiver: f
  - action: emit
    value: one
    expect: [f, f]
  - action: disconnect
    receiver: f
  - action: emit
    value: two
    expect: [f]
  - action: disconnect
    receiver: g
    allow-missing: true
`

const jsonScenario = `{
  "name": "empty",
  "receivers": ["f"],
  "steps": [
    {"action": "emit", "value": "nothing", "expect": []}
  ]
}`

func TestParse(t *testing.T) {
	Convey("Parsing scenarios", t, func() {

		Convey("from toml", func() {
			s, err := Parse([]byte(tomlScenario), TomlFormat)
			So(err, ShouldBeNil)
			So(s.Name, ShouldEqual, "basic")
			So(s.Receivers, ShouldResemble, []string{"f", "g"})
			So(s.Steps, ShouldHaveLength, 5)
			So(s.Steps[2].Expect, ShouldResemble, []string{"f", "g"})
		})

		Convey("from yaml", func() {
			s, err := Parse([]byte(yamlScenario), YamlFormat)
			So(err, ShouldBeNil)
			So(s.Steps[5].AllowMissing, ShouldBeTrue)
		})

		Convey("from json", func() {
			s, err := Parse([]byte(jsonScenario), JsonFormat)
			So(err, ShouldBeNil)
			So(s.Steps[0].Expect, ShouldNotBeNil)
			So(s.Steps[0].Expect, ShouldBeEmpty)
		})

		Convey("rejects unknown formats", func() {
			_, err := Parse([]byte(jsonScenario), Format("ini"))
			So(errors.Is(err, winkErrors.ErrUnsupportedFormat), ShouldBeTrue)
		})

		Convey("rejects unknown receivers", func() {
			_, err := Parse([]byte(`{"receivers":["f"],"steps":[{"action":"connect","receiver":"x"}]}`), JsonFormat)
			So(errors.Is(err, winkErrors.ErrUnknownReceiver), ShouldBeTrue)
		})

		Convey("rejects unknown actions and duplicate receivers", func() {
			_, err := Parse([]byte(`{"receivers":["f"],"steps":[{"action":"explode"}]}`), JsonFormat)
			So(errors.Is(err, winkErrors.ErrInvalidStep), ShouldBeTrue)
			_, err = Parse([]byte(`{"receivers":["f","f"]}`), JsonFormat)
			So(errors.Is(err, winkErrors.ErrInvalidStep), ShouldBeTrue)
		})
	})
}

func TestFormatFromPath(t *testing.T) {
	Convey("Formats follow file extensions", t, func() {
		for path, expected := range map[string]Format{
			"a.toml": TomlFormat,
			"b.YML":  YamlFormat,
			"c.yaml": YamlFormat,
			"d.json": JsonFormat,
		} {
			format, err := FormatFromPath(path)
			So(err, ShouldBeNil)
			So(format, ShouldEqual, expected)
		}
		_, err := FormatFromPath("e.txt")
		So(errors.Is(err, winkErrors.ErrUnsupportedFormat), ShouldBeTrue)
	})
}

func TestRun(t *testing.T) {
	Convey("Running scenarios", t, func() {

		Convey("records calls in connection order", func() {
			s, err := Parse([]byte(tomlScenario), TomlFormat)
			So(err, ShouldBeNil)
			trace, err := s.Run()
			So(err, ShouldBeNil)
			So(trace, ShouldResemble, Trace{
				{Step: 3, Receiver: "f", Value: "42"},
				{Step: 3, Receiver: "g", Value: "42"},
				{Step: 5, Receiver: "g", Value: "42"},
			})
			So(trace.String(), ShouldEqual, "step 3: f(42)\nstep 3: g(42)\nstep 5: g(42)")
		})

		Convey("removes one duplicate per disconnect and tolerates allowed misses", func() {
			s, err := Parse([]byte(yamlScenario), YamlFormat)
			So(err, ShouldBeNil)
			trace, err := s.Run()
			So(err, ShouldBeNil)
			So(trace.Receivers(3), ShouldResemble, []string{"f", "f"})
			So(trace.Receivers(5), ShouldResemble, []string{"f"})
		})

		Convey("emitting nothing satisfies an empty expectation", func() {
			s, err := Parse([]byte(jsonScenario), JsonFormat)
			So(err, ShouldBeNil)
			trace, err := s.Run()
			So(err, ShouldBeNil)
			So(trace, ShouldBeEmpty)
		})

		Convey("reports a disconnect miss", func() {
			s := &Scenario{
				Receivers: []string{"f"},
				Steps:     []Step{{Action: DisconnectAction, Receiver: "f"}},
			}
			_, err := s.Run()
			So(errors.Is(err, winkErrors.ErrSlotNotFound), ShouldBeTrue)
		})

		Convey("reports unexpected invocations", func() {
			s := &Scenario{
				Receivers: []string{"f", "g"},
				Steps: []Step{
					{Action: ConnectAction, Receiver: "g"},
					{Action: ConnectAction, Receiver: "f"},
					{Action: EmitAction, Value: "x", Expect: []string{"f", "g"}},
				},
			}
			trace, err := s.Run()
			So(errors.Is(err, winkErrors.ErrUnexpectedTrace), ShouldBeTrue)
			So(trace.Receivers(3), ShouldResemble, []string{"g", "f"})
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Loading scenario files", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "unnamed.json")
		So(os.WriteFile(path, []byte(`{"receivers":["f"],"steps":[{"action":"connect","receiver":"f"}]}`), 0644), ShouldBeNil)

		s, err := Load(path)
		So(err, ShouldBeNil)
		So(s.Name, ShouldEqual, "unnamed")

		_, err = Load(filepath.Join(dir, "missing.toml"))
		So(err, ShouldNotBeNil)
	})
}
