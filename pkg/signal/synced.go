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
	"sync"

	"github.com/puzpuzpuz/xsync/v2"

	"github.com/go-enjin/wink/pkg/errors"
	"github.com/go-enjin/wink/pkg/slot"
)

// Synced is a Signal which is safe for concurrent use. Emit does not hold
// any lock while invoking slots, so slots may connect and disconnect on the
// same Synced without deadlocking. The zero value is ready for use and a nil
// Synced reads as empty, like a nil Signal.
type Synced[A any] struct {
	once   sync.Once
	lock   *xsync.RBMutex
	signal Signal[A]
}

func NewSynced[A any]() (s *Synced[A]) {
	s = &Synced[A]{}
	s.locker()
	return
}

// locker returns the mutex, creating it on first use
func (s *Synced[A]) locker() *xsync.RBMutex {
	s.once.Do(func() {
		s.lock = xsync.NewRBMutex()
	})
	return s.lock
}

func (s *Synced[A]) Connect(connected slot.Slot[func(A)]) {
	lock := s.locker()
	lock.Lock()
	defer lock.Unlock()
	s.signal.Connect(connected)
}

func (s *Synced[A]) ConnectFunc(fn func(A)) (connected slot.Slot[func(A)]) {
	connected = slot.Func(fn)
	s.Connect(connected)
	return
}

func (s *Synced[A]) Disconnect(connected slot.Slot[func(A)]) (err error) {
	if s == nil {
		err = fmt.Errorf("%w: %v", errors.ErrSlotNotFound, connected)
		return
	}
	lock := s.locker()
	lock.Lock()
	defer lock.Unlock()
	err = s.signal.Disconnect(connected)
	return
}

func (s *Synced[A]) Len() int {
	return len(s.view())
}

func (s *Synced[A]) Emit(a A) {
	for _, connected := range s.view() {
		connected.Func()(a)
	}
}

func (s *Synced[A]) Call(a A) {
	s.Emit(a)
}

// Equal compares snapshots of both signals taken one after the other, never
// holding both locks at once
func (s *Synced[A]) Equal(other *Synced[A]) bool {
	return equalSlots(s.view(), other.view())
}

func (s *Synced[A]) NotEqual(other *Synced[A]) bool {
	return !s.Equal(other)
}

func (s *Synced[A]) view() []slot.Slot[func(A)] {
	if s == nil {
		return nil
	}
	lock := s.locker()
	t := lock.RLock()
	defer lock.RUnlock(t)
	return s.signal.view()
}
