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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCharBoundary(t *testing.T) {
	s := "héllo" // é is s[1:3]
	cases := []struct {
		i    int
		want bool
	}{
		{-1, false},
		{0, true},
		{1, true},
		{2, false},
		{3, true},
		{6, true},
		{7, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IsCharBoundary(s, c.i), "index %d", c.i)
	}
	assert.True(t, IsCharBoundary("", 0))
}

func TestFloorCeilCharBoundary(t *testing.T) {
	s := "a漢b" // 漢 is s[1:4]
	assert.Equal(t, 0, FloorCharBoundary(s, -5))
	assert.Equal(t, 1, FloorCharBoundary(s, 1))
	assert.Equal(t, 1, FloorCharBoundary(s, 2))
	assert.Equal(t, 1, FloorCharBoundary(s, 3))
	assert.Equal(t, 4, FloorCharBoundary(s, 4))
	assert.Equal(t, 5, FloorCharBoundary(s, 100))

	assert.Equal(t, 0, CeilCharBoundary(s, -5))
	assert.Equal(t, 1, CeilCharBoundary(s, 1))
	assert.Equal(t, 4, CeilCharBoundary(s, 2))
	assert.Equal(t, 4, CeilCharBoundary(s, 3))
	assert.Equal(t, 5, CeilCharBoundary(s, 100))

	// continuation bytes only
	bad := "\x80\x80\x80\x80\x80"
	assert.Equal(t, 0, FloorCharBoundary(bad, 4))
	assert.Equal(t, 5, CeilCharBoundary(bad, 1))
}
