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

import "strings"

// Owner is a handle of a reference counted string buffer.
//
// Use NewRc, NewArc or New to create one.
type Owner[T any, P refcount[T]] struct {
	buf   *buffer[T, P]
	state T // > 0 once released
}

func (o *Owner[T, P]) live() *buffer[T, P] {
	if P(&o.state).load() != 0 {
		panic(errReleased)
	}
	return o.buf
}

// Len returns the length of the string in bytes.
func (o *Owner[T, P]) Len() int {
	return len(o.live().str)
}

// IsEmpty reports whether Len() == 0.
func (o *Owner[T, P]) IsEmpty() bool {
	return o.Len() == 0
}

// View returns the string without copy.
// It MUST NOT be used after all handles of the buffer are released.
func (o *Owner[T, P]) View() string {
	return o.live().str
}

// String returns a copy of the string.
func (o *Owner[T, P]) String() string {
	return strings.Clone(o.View())
}

// Refs returns the number of unreleased handles of the buffer, including o.
func (o *Owner[T, P]) Refs() int {
	return o.live().refCount()
}

// Clone returns a new Owner of the same buffer.
func (o *Owner[T, P]) Clone() *Owner[T, P] {
	b := o.live()
	b.retain()
	return &Owner[T, P]{buf: b}
}

// Release drops the reference held by o.
// The buffer is freed when it's the last one.
func (o *Owner[T, P]) Release() {
	if P(&o.state).add(1) != 1 {
		return
	}
	o.buf.release()
}

// Full returns a Slice of the whole string.
func (o *Owner[T, P]) Full() *Slice[T, P] {
	b := o.live()
	return b.newSlice(0, len(b.str))
}

// Prefix returns a Slice of [0, end).
func (o *Owner[T, P]) Prefix(end int) (*Slice[T, P], error) {
	b := o.live()
	return b.slice("Prefix", 0, len(b.str), 0, end)
}

// Suffix returns a Slice of [start, Len()).
func (o *Owner[T, P]) Suffix(start int) (*Slice[T, P], error) {
	b := o.live()
	return b.slice("Suffix", 0, len(b.str), start, len(b.str))
}

// Range returns a Slice of [start, end).
func (o *Owner[T, P]) Range(start, end int) (*Slice[T, P], error) {
	b := o.live()
	return b.slice("Range", 0, len(b.str), start, end)
}

// SplitAt returns Slices of [0, mid) and [mid, Len()).
func (o *Owner[T, P]) SplitAt(mid int) (*Slice[T, P], *Slice[T, P], error) {
	b := o.live()
	return b.split("SplitAt", 0, len(b.str), mid)
}
