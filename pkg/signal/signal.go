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

// Package signal implements typed signals: ordered collections of slots
// which are invoked together, in connection order, whenever the signal is
// emitted.
//
// Signal0, Signal and Signal2 take zero, one and two arguments. Pass a
// struct to a Signal when more arguments are needed. The zero value of each
// is an empty signal ready for use.
//
// Emit iterates over the slots connected when it was called. Slots
// connected during an emission are first invoked by the next Emit. Slots
// disconnected during an emission are still invoked by the current Emit if
// they had not been reached yet.
//
// A panic raised by a slot aborts the emission and propagates to the caller
// of Emit, the remaining slots are not invoked.
//
// A nil signal reads as empty: Emit and Call do nothing, Len is zero and
// Disconnect returns errors.ErrSlotNotFound. Connect requires a non-nil
// signal.
//
// Signal0, Signal and Signal2 are not safe for concurrent use. Guard them
// with a lock or use Synced.
package signal

import (
	"github.com/go-enjin/wink/pkg/slot"
)

// Signal is a signal whose slots receive one argument of type A
type Signal[A any] struct {
	slots[func(A)]
}

func New[A any]() *Signal[A] {
	return &Signal[A]{}
}

// ConnectFunc connects fn and returns its slot for a later Disconnect
func (s *Signal[A]) ConnectFunc(fn func(A)) (connected slot.Slot[func(A)]) {
	connected = slot.Func(fn)
	s.Connect(connected)
	return
}

// Disconnect removes the first connected slot equal to connected
func (s *Signal[A]) Disconnect(connected slot.Slot[func(A)]) (err error) {
	err = s.sequence().Disconnect(connected)
	return
}

func (s *Signal[A]) Len() int {
	return s.sequence().Len()
}

// Emit invokes every connected slot with a
func (s *Signal[A]) Emit(a A) {
	for _, connected := range s.sequence().view() {
		connected.Func()(a)
	}
}

// Call is an alias for Emit
func (s *Signal[A]) Call(a A) {
	s.Emit(a)
}

// Equal reports whether both signals have the same slots in the same order
func (s *Signal[A]) Equal(other *Signal[A]) bool {
	return s.sequence().equal(other.sequence())
}

func (s *Signal[A]) NotEqual(other *Signal[A]) bool {
	return !s.Equal(other)
}

func (s *Signal[A]) sequence() *slots[func(A)] {
	if s == nil {
		return &slots[func(A)]{}
	}
	return &s.slots
}

// Signal0 is a signal whose slots take no arguments
type Signal0 struct {
	slots[func()]
}

func New0() *Signal0 {
	return &Signal0{}
}

func (s *Signal0) ConnectFunc(fn func()) (connected slot.Slot[func()]) {
	connected = slot.Func(fn)
	s.Connect(connected)
	return
}

func (s *Signal0) Disconnect(connected slot.Slot[func()]) (err error) {
	err = s.sequence().Disconnect(connected)
	return
}

func (s *Signal0) Len() int {
	return s.sequence().Len()
}

func (s *Signal0) Emit() {
	for _, connected := range s.sequence().view() {
		connected.Func()()
	}
}

func (s *Signal0) Call() {
	s.Emit()
}

func (s *Signal0) Equal(other *Signal0) bool {
	return s.sequence().equal(other.sequence())
}

func (s *Signal0) NotEqual(other *Signal0) bool {
	return !s.Equal(other)
}

func (s *Signal0) sequence() *slots[func()] {
	if s == nil {
		return &slots[func()]{}
	}
	return &s.slots
}

// Signal2 is a signal whose slots receive two arguments
type Signal2[A any, B any] struct {
	slots[func(A, B)]
}

func New2[A any, B any]() *Signal2[A, B] {
	return &Signal2[A, B]{}
}

func (s *Signal2[A, B]) ConnectFunc(fn func(A, B)) (connected slot.Slot[func(A, B)]) {
	connected = slot.Func(fn)
	s.Connect(connected)
	return
}

func (s *Signal2[A, B]) Disconnect(connected slot.Slot[func(A, B)]) (err error) {
	err = s.sequence().Disconnect(connected)
	return
}

func (s *Signal2[A, B]) Len() int {
	return s.sequence().Len()
}

func (s *Signal2[A, B]) Emit(a A, b B) {
	for _, connected := range s.sequence().view() {
		connected.Func()(a, b)
	}
}

func (s *Signal2[A, B]) Call(a A, b B) {
	s.Emit(a, b)
}

func (s *Signal2[A, B]) Equal(other *Signal2[A, B]) bool {
	return s.sequence().equal(other.sequence())
}

func (s *Signal2[A, B]) NotEqual(other *Signal2[A, B]) bool {
	return !s.Equal(other)
}

func (s *Signal2[A, B]) sequence() *slots[func(A, B)] {
	if s == nil {
		return &slots[func(A, B)]{}
	}
	return &s.slots
}
