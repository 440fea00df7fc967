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

import "unsafe"

// BinaryToString converts []byte to string without copy.
// The caller must not modify b while the returned string is in use.
func BinaryToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// StringToBinary converts string to []byte without copy.
// The returned []byte MUST NOT be modified.
func StringToBinary(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// StringAddr returns the address of the first byte of s, or 0 for an empty string.
//
// It's for checking whether two strings share memory, never convert it back to a pointer.
func StringAddr(s string) uintptr {
	if len(s) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.StringData(s)))
}

// SameMemory reports whether a and b start at the same address and have the same length.
func SameMemory(a, b string) bool {
	return len(a) == len(b) && StringAddr(a) == StringAddr(b)
}
