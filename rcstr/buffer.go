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

import (
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/cloudwego/rcstring/cache/mempool"
	"github.com/cloudwego/rcstring/unsafex"
)

// buffer is shared by all handles of the same string.
// data and str never change until refs drops to zero.
type buffer[T any, P refcount[T]] struct {
	refs T

	data []byte
	str  string // zero-copy view of data

	// not nil if leak detection is enabled when the buffer was created
	logger *log.Logger
}

func newBuffer[T any, P refcount[T]](b []byte) *buffer[T, P] {
	buf := &buffer[T, P]{data: b, str: unsafex.BinaryToString(b)}
	P(&buf.refs).add(1)
	if o := getOption(); o.LeakDetection {
		buf.logger = o.Logger
		runtime.SetFinalizer(buf, (*buffer[T, P]).reportLeak)
	}
	return buf
}

// retain MUST only be called by a live handle of b.
func (b *buffer[T, P]) retain() {
	P(&b.refs).add(1)
}

func (b *buffer[T, P]) release() {
	n := P(&b.refs).add(-1)
	if n > 0 {
		return
	}
	if n < 0 {
		panic("rcstr: reference count underflow")
	}
	if b.logger != nil {
		runtime.SetFinalizer(b, nil)
	}
	data := b.data
	b.data, b.str = nil, ""
	mempool.Free(data)
}

func (b *buffer[T, P]) refCount() int {
	return int(P(&b.refs).load())
}

func (b *buffer[T, P]) newSlice(off, n int) *Slice[T, P] {
	b.retain()
	return &Slice[T, P]{buf: b, off: off, n: n}
}

// slice returns a Slice of [start, end) which is relative to the view b.str[off:off+n].
func (b *buffer[T, P]) slice(op string, off, n, start, end int) (*Slice[T, P], error) {
	if err := checkRange(op, b.str[off:off+n], start, end); err != nil {
		return nil, err
	}
	return b.newSlice(off+start, end-start), nil
}

// split returns [0, mid) and [mid, n) of the view b.str[off:off+n].
// Nothing is retained if mid is invalid.
func (b *buffer[T, P]) split(op string, off, n, mid int) (*Slice[T, P], *Slice[T, P], error) {
	if err := checkRange(op, b.str[off:off+n], mid, mid); err != nil {
		return nil, nil, err
	}
	return b.newSlice(off, mid), b.newSlice(off+mid, n-mid), nil
}

// reportLeak runs as a finalizer, b is unreachable while some handles were never released.
// data is not given back to mempool since strings returned by View may still refer to it.
func (b *buffer[T, P]) reportLeak() {
	if n := b.refCount(); n > 0 {
		b.logger.Warn("buffer leaked without release", "len", len(b.str), "refs", n)
	}
}
