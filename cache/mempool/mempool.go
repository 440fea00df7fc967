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

// Package mempool provides the pooled string buffers backing rcstr owners.
//
// A buffer returned by Malloc carries a footer in its spare capacity which
// records the pool it belongs to. Free checks the footer and clears it, so a
// buffer is given back to its pool at most once no matter how often Free is
// called with it, and buffers not created by Malloc are simply ignored.
package mempool

import (
	"math/bits"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/bytedance/gopkg/lang/dirtmake"
)

type memPool struct {
	sync.Pool

	Size int
}

var pools []*memPool

const (
	minMemPoolSize = 64        // `Malloc` returns buf with cap >= the number
	maxMemPoolSize = 128 << 30 // 128GB, `Malloc` will panic if > the number
)

const (
	// footer is a [8]byte, it contains two parts: magic(58 bits) and index (6 bits):
	// * magic is for checking a []byte is created by this package and not freed yet
	// * index is for `pools`, the cap of a []byte is always equal to pools[i].Size
	footerLen = 8

	footerMagicMask = uint64(0xFFFFFFFFFFFFFFC0) // 58 bits mask
	footerIndexMask = uint64(0x000000000000003F) // 6 bits mask
	footerMagic     = uint64(0xBADC0DEBADC0DEC0) // it ends with 6 zero bits which used by index
)

// bits2idx maps bits.Len to the index of `pools`
// for size < minMemPoolSize, bits2idx maps to `pools[0]` which is expected.
var bits2idx [64]int

var (
	mallocs atomic.Int64
	frees   atomic.Int64
)

func init() {
	i := 0
	for sz := minMemPoolSize; sz <= maxMemPoolSize; sz <<= 1 {
		p := &memPool{Size: sz}
		p.New = func() interface{} {
			// contents are always overwritten by the caller, no need to zero them.
			b := dirtmake.Bytes(p.Size, p.Size)
			return &b[0]
		}
		pools = append(pools, p)
		bits2idx[bits.Len(uint(p.Size))] = i
		i++
	}
}

// poolIndex returns index of a pool which fits the given size `sz`
func poolIndex(sz int) int {
	if sz <= minMemPoolSize {
		return 0
	}
	i := bits2idx[bits.Len(uint(sz))]
	if uint(sz)&(uint(sz)-1) == 0 {
		// if power of two, it fits perfectly
		return i
	}
	return i + 1
}

// Malloc creates a buf from pool.
//
// The bytes of the returned buf are NOT initialized.
// Bytes in cap(buf) beyond Cap(buf) hold the footer, do not write them.
func Malloc(size int) []byte {
	if size == 0 {
		return []byte{}
	}
	c := size + footerLen // reserve for footer
	i := poolIndex(c)
	pool := pools[i]
	p := pool.Get().(*byte)

	ret := unsafe.Slice(p, pool.Size)[:size]
	setFooter(ret, footerMagic|uint64(i))
	mallocs.Add(1)
	return ret
}

// MallocString returns a buf from pool holding a copy of s.
func MallocString(s string) []byte {
	b := Malloc(len(s))
	copy(b, s)
	return b
}

// Append appends bytes to the given `[]byte` and keeps it in this package.
// It frees `a` and creates a new one if needed, the Free is counted by ReadStats.
// Please make sure you're calling the func like `b = mempool.Append(b, data...)`,
// DO NOT use the builtin `append` on bufs from Malloc, which overwrites the footer.
func Append(a []byte, b ...byte) []byte {
	if cap(a)-len(a)-footerLen > len(b) && Owns(a) {
		return append(a, b...)
	}
	return appendSlow(a, b)
}

func appendSlow(a, b []byte) []byte {
	ret := Malloc(len(a) + len(b))
	copy(ret, a)
	copy(ret[len(a):], b)
	Free(a)
	return ret
}

// AppendStr ... same as Append for string.
// See comment of `Append` for details.
func AppendStr(a []byte, b string) []byte {
	if cap(a)-len(a)-footerLen > len(b) && Owns(a) {
		return append(a, b...)
	}
	return appendStrSlow(a, b)
}

func appendStrSlow(a []byte, b string) []byte {
	ret := Malloc(len(a) + len(b))
	copy(ret, a)
	copy(ret[len(a):], b)
	Free(a)
	return ret
}

// Cap returns the max cap of a buf can be resized to.
func Cap(buf []byte) int {
	if !Owns(buf) {
		panic("buf not malloc by this package or already freed")
	}
	return cap(buf) - footerLen
}

// Owns reports whether buf is created by Malloc and not freed yet.
func Owns(buf []byte) bool {
	c := cap(buf)
	if c < minMemPoolSize || uint(c)&uint(c-1) != 0 {
		return false
	}
	if c-len(buf) < footerLen {
		return false
	}
	footer := getFooter(buf)
	if footer&footerMagicMask != footerMagic {
		return false
	}
	i := int(footer & footerIndexMask)
	return i < len(pools) && pools[i].Size == c
}

// Free gives buf back to its pool and reports whether it did.
//
// It returns false for bufs not created by Malloc and for bufs which have been freed.
// DO NOT USE buf after calling Free.
func Free(buf []byte) bool {
	if !Owns(buf) {
		return false
	}
	i := int(getFooter(buf) & footerIndexMask)
	setFooter(buf, 0)
	frees.Add(1)
	pools[i].Put(unsafe.SliceData(buf))
	return true
}

// Stats is a snapshot of the allocation counters of this package.
type Stats struct {
	Mallocs int64 // bufs returned by Malloc, except empty ones
	Frees   int64 // bufs given back to pools by Free
}

// InUse returns the number of bufs which are not freed yet.
func (s Stats) InUse() int64 {
	return s.Mallocs - s.Frees
}

// ReadStats returns the current allocation counters.
func ReadStats() Stats {
	return Stats{Mallocs: mallocs.Load(), Frees: frees.Load()}
}

func footerPtr(buf []byte) *uint64 {
	return (*uint64)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(buf)), cap(buf)-footerLen))
}

func getFooter(buf []byte) uint64 {
	return *footerPtr(buf)
}

func setFooter(buf []byte, v uint64) {
	*footerPtr(buf) = v
}
