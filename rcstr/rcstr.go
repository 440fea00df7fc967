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

// Package rcstr implements reference counted strings and zero-copy slices of them.
//
// An Owner holds an immutable string buffer adopted from a []byte. Slices are
// views into the buffer of an Owner, and each of them holds a reference to the
// buffer, so the buffer stays valid as long as any Owner or Slice of it is not
// released. When the last handle is released, the buffer is given back to
// cache/mempool. Slicing a Slice never copies and never chains: every Slice
// refers to the buffer directly.
//
// Two families are provided, which only differ in how references are counted:
//
//   - RcOwner and RcSlice use a plain counter, handles of the same buffer
//     MUST be used by one goroutine at a time.
//   - ArcOwner and ArcSlice use an atomic counter, handles can be cloned,
//     sliced and released from different goroutines concurrently.
//
// Every handle MUST be released exactly once by calling Release. Releasing a
// handle again is a no-op, and using a released handle panics.
package rcstr

import "sync/atomic"

// Rc is the non-atomic reference counting discipline.
type Rc struct {
	n int32
}

func (c *Rc) add(delta int32) int32 {
	c.n += delta
	return c.n
}

func (c *Rc) load() int32 { return c.n }

// Arc is the atomic reference counting discipline.
type Arc struct {
	n atomic.Int32
}

func (c *Arc) add(delta int32) int32 { return c.n.Add(delta) }

func (c *Arc) load() int32 { return c.n.Load() }

// refcount is satisfied by *Rc and *Arc only.
type refcount[T any] interface {
	*T
	add(delta int32) int32
	load() int32
}

type (
	// RcOwner is an Owner which must stay on one goroutine.
	RcOwner = Owner[Rc, *Rc]
	// RcSlice is a Slice of an RcOwner.
	RcSlice = Slice[Rc, *Rc]

	// ArcOwner is an Owner which can be shared by goroutines.
	ArcOwner = Owner[Arc, *Arc]
	// ArcSlice is a Slice of an ArcOwner.
	ArcSlice = Slice[Arc, *Arc]
)

// Slicer is the slicing algebra shared by owners and slices.
//
// Offsets of a Slicer are relative to its own content: for a Slice,
// Prefix(end) narrows the view of the Slice, not the buffer behind it.
type Slicer[S any] interface {
	Len() int
	View() string
	Full() S
	Prefix(end int) (S, error)
	Suffix(start int) (S, error)
	Range(start, end int) (S, error)
	SplitAt(mid int) (S, S, error)
	Release()
}

// Materializer is implemented by slices for detaching their content from the shared buffer.
type Materializer[O any] interface {
	ToOwned() []byte
	ToOwner() O
}

var (
	_ Slicer[*RcSlice]  = (*RcOwner)(nil)
	_ Slicer[*RcSlice]  = (*RcSlice)(nil)
	_ Slicer[*ArcSlice] = (*ArcOwner)(nil)
	_ Slicer[*ArcSlice] = (*ArcSlice)(nil)

	_ Materializer[*RcOwner]  = (*RcSlice)(nil)
	_ Materializer[*ArcOwner] = (*ArcSlice)(nil)
)
