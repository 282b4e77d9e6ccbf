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
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/go-enjin/wink/pkg/errors"
	"github.com/go-enjin/wink/pkg/log"
	"github.com/go-enjin/wink/pkg/slot"
)

// slots is the ordered sequence shared by every Signal arity.
//
// The backing array is never modified below len(list): Connect appends past
// the end and Disconnect builds a new slice. A view taken by Emit therefore
// stays intact while slots connect and disconnect during emission.
type slots[F any] struct {
	list []slot.Slot[F]
}

// Connect appends s to the end of the sequence, an invalid s is ignored
func (ss *slots[F]) Connect(s slot.Slot[F]) {
	if !s.IsValid() {
		log.WarnDF(1, "ignoring invalid slot connection")
		return
	}
	ss.list = append(ss.list, s)
	log.TraceDF(1, "connected slot %v (%d total)", s, len(ss.list))
}

// Disconnect removes the first connected slot equal to s. When there is no
// such slot the sequence is left as is and errors.ErrSlotNotFound is
// returned.
func (ss *slots[F]) Disconnect(s slot.Slot[F]) (err error) {
	_, idx, found := lo.FindIndexOf(ss.list, s.Equal)
	if !found {
		log.DebugDF(1, "disconnect miss for slot %v", s)
		err = fmt.Errorf("%w: %v", errors.ErrSlotNotFound, s)
		return
	}
	modified := make([]slot.Slot[F], 0, len(ss.list)-1)
	modified = append(modified, ss.list[:idx]...)
	modified = append(modified, ss.list[idx+1:]...)
	ss.list = modified
	log.TraceDF(1, "disconnected slot %v (%d remaining)", s, len(ss.list))
	return
}

// Len returns the number of connected slots, counting duplicates
func (ss *slots[F]) Len() int {
	return len(ss.list)
}

// view returns the current sequence capped at its length
func (ss *slots[F]) view() []slot.Slot[F] {
	return ss.list[:len(ss.list):len(ss.list)]
}

func (ss *slots[F]) equal(other *slots[F]) bool {
	return equalSlots(ss.view(), other.view())
}

func equalSlots[F any](a, b []slot.Slot[F]) bool {
	return slices.EqualFunc(a, b, func(x, y slot.Slot[F]) bool {
		return x.Equal(y)
	})
}
