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

package signal

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	winkErrors "github.com/go-enjin/wink/pkg/errors"
	"github.com/go-enjin/wink/pkg/slot"
)

type tally struct {
	total atomic.Int64
}

func (t *tally) Add(v int) {
	t.total.Add(int64(v))
}

func TestSynced(t *testing.T) {
	Convey("A Synced signal", t, func() {
		sig := NewSynced[int]()

		Convey("behaves like a Signal", func() {
			var calls []string
			rs := newRecorders(&calls, "f", "g")
			f, g := receiverSlot(rs[0]), receiverSlot(rs[1])
			sig.Connect(f)
			sig.Connect(g)
			sig.Emit(1)
			So(sig.Disconnect(f), ShouldBeNil)
			sig.Call(2)
			So(calls, ShouldResemble, []string{"f(1)", "g(1)", "g(2)"})
			So(sig.Disconnect(f), ShouldNotBeNil)
			So(sig.Len(), ShouldEqual, 1)
		})

		Convey("compares by slot sequence", func() {
			var calls []string
			rs := newRecorders(&calls, "f")
			other := NewSynced[int]()
			So(sig.Equal(other), ShouldBeTrue)
			sig.Connect(receiverSlot(rs[0]))
			So(sig.NotEqual(other), ShouldBeTrue)
			other.Connect(receiverSlot(rs[0]))
			So(sig.Equal(other), ShouldBeTrue)
			So(sig.Equal(sig), ShouldBeTrue)
		})

		Convey("allows slots to disconnect themselves", func() {
			var once slot.Slot[func(int)]
			hits := 0
			once = sig.ConnectFunc(func(v int) {
				hits += v
				So(sig.Disconnect(once), ShouldBeNil)
			})
			sig.Emit(1)
			sig.Emit(1)
			So(hits, ShouldEqual, 1)
			So(sig.Len(), ShouldEqual, 0)
		})

		Convey("works from the zero value", func() {
			var zero Synced[int]
			total := &tally{}
			connected := slot.Method(total, total.Add)
			So(func() { zero.Emit(1) }, ShouldNotPanic)
			zero.Connect(connected)
			zero.Emit(2)
			So(total.total.Load(), ShouldEqual, int64(2))
			So(zero.Len(), ShouldEqual, 1)
			So(zero.Disconnect(connected), ShouldBeNil)
			So(zero.Len(), ShouldEqual, 0)
		})

		Convey("reads as empty when nil", func() {
			var none *Synced[int]
			total := &tally{}
			So(func() { none.Emit(1) }, ShouldNotPanic)
			So(none.Len(), ShouldEqual, 0)
			So(none.Equal(sig), ShouldBeTrue)
			err := none.Disconnect(slot.Method(total, total.Add))
			So(errors.Is(err, winkErrors.ErrSlotNotFound), ShouldBeTrue)
		})

		Convey("survives concurrent use", func() {
			const workers = 16
			tallies := make([]*tally, workers)
			for i := range tallies {
				tallies[i] = &tally{}
			}

			var wg sync.WaitGroup
			for i := 0; i < workers; i++ {
				wg.Add(1)
				go func(tl *tally) {
					defer wg.Done()
					connected := slot.Method(tl, tl.Add)
					sig.Connect(connected)
					for j := 0; j < 100; j++ {
						sig.Emit(1)
					}
					if tl != tallies[0] {
						_ = sig.Disconnect(connected)
					}
				}(tallies[i])
			}
			wg.Wait()

			So(sig.Len(), ShouldEqual, 1)
			for _, tl := range tallies {
				So(tl.total.Load(), ShouldBeGreaterThanOrEqualTo, 100)
			}
		})
	})
}
