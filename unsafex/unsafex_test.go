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

package unsafex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinaryToString(t *testing.T) {
	b := []byte("hello")
	s := BinaryToString(b)
	assert.Equal(t, string(b), s)
	b[0] = 'x'
	assert.Equal(t, "xello", s)

	assert.Equal(t, "", BinaryToString(nil))
	assert.Equal(t, "", BinaryToString([]byte{}))
}

func TestStringToBinary(t *testing.T) {
	s := strings.Repeat("a", 3) + "bc"
	b := StringToBinary(s)
	assert.Equal(t, s, string(b))
	assert.Equal(t, StringAddr(s), StringAddr(BinaryToString(b)))
	assert.Nil(t, StringToBinary(""))
}

func TestSameMemory(t *testing.T) {
	b := []byte("hello world")
	s := BinaryToString(b)
	assert.True(t, SameMemory(s, BinaryToString(b)))
	assert.True(t, SameMemory(s[:5], s[:5]))
	assert.False(t, SameMemory(s[:5], s[1:6]))
	assert.False(t, SameMemory(s, string(b)))
	assert.True(t, SameMemory("", ""))
	assert.Zero(t, StringAddr(""))
}

func BenchmarkBinaryToString(b *testing.B) {
	x := []byte("hello")
	for i := 0; i < b.N; i++ {
		_ = BinaryToString(x)
	}
}
