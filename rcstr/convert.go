/*
 * Copyright 2024 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package rcstr

import "github.com/cloudwego/rcstring/unsafex"

// New adopts b as the buffer of a new Owner without copy.
//
// b MUST NOT be used by the caller after calling New.
// If b is created by cache/mempool, it's freed when the last handle is released.
func New[T any, P refcount[T]](b []byte) *Owner[T, P] {
	return &Owner[T, P]{buf: newBuffer[T, P](b)}
}

// NewRc adopts b as the buffer of a new RcOwner. See New.
func NewRc(b []byte) *RcOwner {
	return New[Rc](b)
}

// NewArc adopts b as the buffer of a new ArcOwner. See New.
func NewArc(b []byte) *ArcOwner {
	return New[Arc](b)
}

// NewRcString returns an RcOwner of s without copy.
func NewRcString(s string) *RcOwner {
	return New[Rc](unsafex.StringToBinary(s))
}

// NewArcString returns an ArcOwner of s without copy.
func NewArcString(s string) *ArcOwner {
	return New[Arc](unsafex.StringToBinary(s))
}

// IntoRc is implemented by types which can be turned into owners of both disciplines.
// Either method consumes the receiver, it can be called only once.
type IntoRc interface {
	Rc() *RcOwner
	Arc() *ArcOwner
}

// Bytes is a growable string which can be adopted by an Owner.
type Bytes []byte

var _ IntoRc = (*Bytes)(nil)

// Rc adopts b without copy and sets b to nil.
func (b *Bytes) Rc() *RcOwner {
	o := NewRc(*b)
	*b = nil
	return o
}

// Arc adopts b without copy and sets b to nil.
func (b *Bytes) Arc() *ArcOwner {
	o := NewArc(*b)
	*b = nil
	return o
}
