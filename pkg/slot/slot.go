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

// Package slot provides comparable references to callable receivers.
//
// A Slot wraps a function value of type F together with an identity Key.
// Go function values cannot be compared with ==, so the Key records what the
// function refers to: the function code for free functions, or the receiver
// pointer plus the function code for bound receivers. Two slots are Equal
// when their keys are equal.
//
// A Func slot is keyed on the function value itself: top-level functions
// always compare equal, while each closure or method value evaluation is a
// distinct value with its own identity. Copies of one closure value compare
// equal. Method and the Bind variants key on the receiver and the function
// code instead, so rebuilding them later yields an equal slot.
//
// A bound slot keeps its receiver reachable for as long as the slot is
// connected somewhere. Disconnect the slot before treating the receiver as
// closed. Receivers of zero-size types may share one address and therefore
// do not have distinct identities.
package slot

import (
	"fmt"
	"reflect"
	"unsafe"
)

type Kind uint8

const (
	KindInvalid Kind = iota
	// KindFunc is a free function
	KindFunc
	// KindMethod is a method value bound to a receiver, ie: recv.OnEvent
	KindMethod
	// KindBound is a static function or method expression called with a
	// receiver as its first argument, ie: (*T).OnEvent
	KindBound
)

func (k Kind) String() string {
	switch k {
	case KindFunc:
		return "func"
	case KindMethod:
		return "method"
	case KindBound:
		return "bound"
	}
	return "invalid"
}

// Key is the comparable identity of a Slot
type Key struct {
	Kind     Kind
	Receiver uintptr
	Code     uintptr
}

// Slot is a comparable reference to a function of type F
type Slot[F any] struct {
	key Key
	fn  F
}

// Func returns a KindFunc slot for fn. Func panics if fn is not a non-nil
// function.
func Func[F any](fn F) Slot[F] {
	code := codeOf(fn)
	return Slot[F]{
		key: Key{Kind: KindFunc, Receiver: closureOf(&fn), Code: code},
		fn:  fn,
	}
}

// Method returns a KindMethod slot for the method value given. The method
// value must be bound to recv: the slot is keyed on recv and the method code
// only, so Method(a, b.OnEvent) compares equal to Method(a, a.OnEvent) while
// calling b. Method panics if recv is nil or method is not a non-nil
// function.
func Method[R any, F any](recv *R, method F) Slot[F] {
	return Slot[F]{
		key: Key{Kind: KindMethod, Receiver: receiverOf(recv), Code: codeOf(method)},
		fn:  method,
	}
}

func Bind0[R any](recv *R, fn func(*R)) Slot[func()] {
	return Slot[func()]{
		key: Key{Kind: KindBound, Receiver: receiverOf(recv), Code: codeOf(fn)},
		fn:  func() { fn(recv) },
	}
}

// Bind returns a KindBound slot calling fn with recv and the emitted
// argument. Bind panics if recv or fn is nil.
func Bind[R any, A any](recv *R, fn func(*R, A)) Slot[func(A)] {
	return Slot[func(A)]{
		key: Key{Kind: KindBound, Receiver: receiverOf(recv), Code: codeOf(fn)},
		fn:  func(a A) { fn(recv, a) },
	}
}

func Bind2[R any, A any, B any](recv *R, fn func(*R, A, B)) Slot[func(A, B)] {
	return Slot[func(A, B)]{
		key: Key{Kind: KindBound, Receiver: receiverOf(recv), Code: codeOf(fn)},
		fn:  func(a A, b B) { fn(recv, a, b) },
	}
}

func (s Slot[F]) Key() Key {
	return s.key
}

func (s Slot[F]) Kind() Kind {
	return s.key.Kind
}

// Func returns the function to invoke, the zero F for an invalid Slot
func (s Slot[F]) Func() F {
	return s.fn
}

// IsValid is false for the zero Slot
func (s Slot[F]) IsValid() bool {
	return s.key.Kind != KindInvalid
}

// Equal reports whether both slots refer to the same receiver
func (s Slot[F]) Equal(other Slot[F]) bool {
	return s.key == other.key
}

func (s Slot[F]) String() string {
	if s.key.Receiver != 0 {
		return fmt.Sprintf("%s(%#x.%#x)", s.key.Kind, s.key.Receiver, s.key.Code)
	}
	return fmt.Sprintf("%s(%#x)", s.key.Kind, s.key.Code)
}

func codeOf(fn interface{}) (code uintptr) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		panic(fmt.Sprintf("slot: %T is not a function", fn))
	}
	if v.IsNil() {
		panic(fmt.Sprintf("slot: nil %T", fn))
	}
	code = v.Pointer()
	return
}

func receiverOf[R any](recv *R) (ptr uintptr) {
	if recv == nil {
		panic(fmt.Sprintf("slot: nil %T receiver", recv))
	}
	ptr = reflect.ValueOf(recv).Pointer()
	return
}

// closureOf returns the address of the closure record fn refers to. codeOf
// must have accepted *fn first. An F which only holds a function through an
// interface has no closure word of its own and is keyed on its code.
func closureOf[F any](fn *F) (ptr uintptr) {
	if reflect.TypeOf(fn).Elem().Kind() != reflect.Func {
		return
	}
	ptr = *(*uintptr)(unsafe.Pointer(fn))
	return
}
