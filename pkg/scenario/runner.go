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
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	winkErrors "github.com/go-enjin/wink/pkg/errors"
	"github.com/go-enjin/wink/pkg/log"
	"github.com/go-enjin/wink/pkg/signal"
	"github.com/go-enjin/wink/pkg/slot"
)

// Call is one receiver invocation, Step is one-based
type Call struct {
	Step     int
	Receiver string
	Value    string
}

func (c Call) String() string {
	return fmt.Sprintf("step %d: %s(%s)", c.Step, c.Receiver, c.Value)
}

type Trace []Call

// Receivers returns the names of the receivers invoked by the given step
func (t Trace) Receivers(step int) (names []string) {
	names = lo.Map(
		lo.Filter(t, func(c Call, _ int) bool { return c.Step == step }),
		func(c Call, _ int) string { return c.Receiver },
	)
	return
}

func (t Trace) String() string {
	return strings.Join(lo.Map(t, func(c Call, _ int) string { return c.String() }), "\n")
}

type receiver struct {
	name  string
	trace *Trace
}

func (r *receiver) Receive(step int, value string) {
	*r.trace = append(*r.trace, Call{Step: step, Receiver: r.name, Value: value})
}

// Validate checks receiver names and that every step is well-formed
func (s *Scenario) Validate() (err error) {
	if lo.Contains(s.Receivers, "") {
		return fmt.Errorf("%w: empty receiver name", winkErrors.ErrInvalidStep)
	}
	if dupes := lo.FindDuplicates(s.Receivers); len(dupes) > 0 {
		return fmt.Errorf("%w: duplicate receivers %v", winkErrors.ErrInvalidStep, dupes)
	}
	for idx, step := range s.Steps {
		switch step.Action {
		case ConnectAction, DisconnectAction:
			if !lo.Contains(s.Receivers, step.Receiver) {
				return fmt.Errorf("step %d: %w: %q", idx+1, winkErrors.ErrUnknownReceiver, step.Receiver)
			}
		case EmitAction:
			if step.Receiver != "" {
				return fmt.Errorf("step %d: %w: emit does not take a receiver", idx+1, winkErrors.ErrInvalidStep)
			}
		default:
			return fmt.Errorf("step %d: %w: unknown action %q", idx+1, winkErrors.ErrInvalidStep, step.Action)
		}
	}
	return
}

// Run performs every step in order against a fresh signal and returns the
// calls observed up to the first failing step
func (s *Scenario) Run() (trace Trace, err error) {
	if err = s.Validate(); err != nil {
		return
	}

	trace = Trace{}
	receivers := lo.Associate(s.Receivers, func(name string) (string, *receiver) {
		return name, &receiver{name: name, trace: &trace}
	})
	sig := signal.New2[int, string]()

	for idx, step := range s.Steps {
		number := idx + 1
		switch step.Action {

		case ConnectAction:
			r := receivers[step.Receiver]
			sig.Connect(slot.Method(r, r.Receive))

		case DisconnectAction:
			r := receivers[step.Receiver]
			if err = sig.Disconnect(slot.Method(r, r.Receive)); err != nil {
				if step.AllowMissing && errors.Is(err, winkErrors.ErrSlotNotFound) {
					log.DebugF("%v step %d: ignoring missing receiver %q", s.Name, number, step.Receiver)
					err = nil
					continue
				}
				err = fmt.Errorf("step %d: disconnect %q: %w", number, step.Receiver, err)
				return
			}

		case EmitAction:
			sig.Emit(number, step.Value)
			if step.Expect != nil {
				if got := trace.Receivers(number); !slices.Equal(got, step.Expect) {
					err = fmt.Errorf("step %d: %w: expected %v, got %v", number, winkErrors.ErrUnexpectedTrace, step.Expect, got)
					return
				}
			}
		}
		log.TraceF("%v step %d: %v %v (%d connected)", s.Name, number, step.Action, step.Receiver, sig.Len())
	}
	return
}
