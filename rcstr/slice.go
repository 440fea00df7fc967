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
	"strings"
	"unicode/utf8"

	"github.com/bytedance/gopkg/util/xxhash3"
	"github.com/rivo/uniseg"

	"github.com/cloudwego/rcstring/cache/mempool"
)

// Slice is a view of [off, off+n) of a buffer, and it holds a reference of the buffer.
type Slice[T any, P refcount[T]] struct {
	buf   *buffer[T, P]
	off   int
	n     int
	state T // > 0 once released
}

func (s *Slice[T, P]) live() *buffer[T, P] {
	if P(&s.state).load() != 0 {
		panic(errReleased)
	}
	return s.buf
}

// Len returns the length of the view in bytes.
func (s *Slice[T, P]) Len() int {
	s.live()
	return s.n
}

// IsEmpty reports whether Len() == 0.
func (s *Slice[T, P]) IsEmpty() bool {
	return s.Len() == 0
}

// Offset returns the start of the view in the buffer.
func (s *Slice[T, P]) Offset() int {
	s.live()
	return s.off
}

// View returns the content of s without copy.
// It MUST NOT be used after all handles of the buffer are released.
func (s *Slice[T, P]) View() string {
	return s.live().str[s.off : s.off+s.n]
}

// String returns a copy of the content of s.
func (s *Slice[T, P]) String() string {
	return strings.Clone(s.View())
}

// Refs returns the number of unreleased handles of the buffer, including s.
func (s *Slice[T, P]) Refs() int {
	return s.live().refCount()
}

// Clone returns a new Slice of the same view. Content is not copied.
func (s *Slice[T, P]) Clone() *Slice[T, P] {
	return s.live().newSlice(s.off, s.n)
}

// Owner returns a new Owner of the buffer behind s.
func (s *Slice[T, P]) Owner() *Owner[T, P] {
	b := s.live()
	b.retain()
	return &Owner[T, P]{buf: b}
}

// Release drops the reference held by s.
// The buffer is freed when it's the last one.
func (s *Slice[T, P]) Release() {
	if P(&s.state).add(1) != 1 {
		return
	}
	s.buf.release()
}

// Full returns a new Slice of the same view.
func (s *Slice[T, P]) Full() *Slice[T, P] {
	return s.Clone()
}

// Prefix returns a Slice of [0, end) of s.
func (s *Slice[T, P]) Prefix(end int) (*Slice[T, P], error) {
	return s.live().slice("Prefix", s.off, s.n, 0, end)
}

// Suffix returns a Slice of [start, Len()) of s.
func (s *Slice[T, P]) Suffix(start int) (*Slice[T, P], error) {
	return s.live().slice("Suffix", s.off, s.n, start, s.n)
}

// Range returns a Slice of [start, end) of s.
func (s *Slice[T, P]) Range(start, end int) (*Slice[T, P], error) {
	return s.live().slice("Range", s.off, s.n, start, end)
}

// SplitAt returns Slices of [0, mid) and [mid, Len()) of s.
func (s *Slice[T, P]) SplitAt(mid int) (*Slice[T, P], *Slice[T, P], error) {
	return s.live().split("SplitAt", s.off, s.n, mid)
}

// ToOwned returns a copy of the content of s.
//
// The returned []byte comes from cache/mempool, it's given back to the pool
// if it's adopted by an Owner later, or it's simply garbage collected.
// Grow it with mempool.Append or mempool.AppendStr, the builtin append
// overwrites the footer and the buffer is no longer recycled.
func (s *Slice[T, P]) ToOwned() []byte {
	return mempool.MallocString(s.View())
}

// ToOwner copies the content of s to a new buffer of the same discipline.
func (s *Slice[T, P]) ToOwner() *Owner[T, P] {
	return New[T, P](s.ToOwned())
}

// SameBuffer reports whether s and x are views of the same buffer.
func (s *Slice[T, P]) SameBuffer(x *Slice[T, P]) bool {
	return s.live() == x.live()
}

// Equal reports whether s and x have the same content.
func (s *Slice[T, P]) Equal(x *Slice[T, P]) bool {
	return s.View() == x.View()
}

// EqualString reports whether the content of s equals to x.
func (s *Slice[T, P]) EqualString(x string) bool {
	return s.View() == x
}

// Compare compares the content of s with x lexicographically, like strings.Compare.
func (s *Slice[T, P]) Compare(x string) int {
	return strings.Compare(s.View(), x)
}

// Hash returns the xxhash3 of the content of s.
func (s *Slice[T, P]) Hash() uint64 {
	return xxhash3.HashString(s.View())
}

// RuneCount returns the number of runes of s.
func (s *Slice[T, P]) RuneCount() int {
	return utf8.RuneCountInString(s.View())
}

// GraphemeCount returns the number of user-perceived characters of s.
func (s *Slice[T, P]) GraphemeCount() int {
	return uniseg.GraphemeClusterCount(s.View())
}

// EachGrapheme calls f with a Slice of every grapheme cluster of s, until f returns false.
//
// The Slice passed to f is released after f returns, Clone it for keeping it.
func (s *Slice[T, P]) EachGrapheme(f func(g *Slice[T, P]) bool) {
	b := s.live()
	gr := uniseg.NewGraphemes(s.View())
	for gr.Next() {
		from, to := gr.Positions()
		g := b.newSlice(s.off+from, to-from)
		ok := f(g)
		g.Release()
		if !ok {
			return
		}
	}
}
