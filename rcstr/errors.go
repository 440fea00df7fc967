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
	"errors"
	"fmt"
)

// ErrBoundary is matched by errors.Is for every error returned by slicing operations.
var ErrBoundary = errors.New("rcstr: boundary violation")

const errReleased = "rcstr: use of released handle"

// Reason tells why offsets are rejected.
type Reason uint8

const (
	// ReasonRange means an offset is negative or beyond the length.
	ReasonRange Reason = iota + 1
	// ReasonOrder means end < start.
	ReasonOrder
	// ReasonCharBoundary means an offset is inside a UTF-8 encoded character.
	ReasonCharBoundary
)

func (r Reason) String() string {
	switch r {
	case ReasonRange:
		return "out of range"
	case ReasonOrder:
		return "end before start"
	case ReasonCharBoundary:
		return "not a char boundary"
	}
	return "unknown"
}

// BoundaryError is returned when a slicing operation is called with invalid offsets.
type BoundaryError struct {
	Op     string // e.g. "Prefix", "SplitAt"
	Start  int
	End    int
	Len    int // length of the content being sliced
	Index  int // the offending offset
	Reason Reason
}

func (e *BoundaryError) Error() string {
	if e.Reason == ReasonOrder {
		return fmt.Sprintf("rcstr: %s: end %d before start %d (len %d)", e.Op, e.End, e.Start, e.Len)
	}
	return fmt.Sprintf("rcstr: %s: index %d %s (len %d)", e.Op, e.Index, e.Reason, e.Len)
}

// Is makes errors.Is(err, ErrBoundary) work.
func (e *BoundaryError) Is(target error) bool {
	return target == ErrBoundary
}

// checkRange validates [start, end) against s.
func checkRange(op string, s string, start, end int) error {
	n := len(s)
	e := &BoundaryError{Op: op, Start: start, End: end, Len: n}
	switch {
	case start < 0 || start > n:
		e.Index, e.Reason = start, ReasonRange
	case end < 0 || end > n:
		e.Index, e.Reason = end, ReasonRange
	case end < start:
		e.Index, e.Reason = end, ReasonOrder
	case !IsCharBoundary(s, start):
		e.Index, e.Reason = start, ReasonCharBoundary
	case !IsCharBoundary(s, end):
		e.Index, e.Reason = end, ReasonCharBoundary
	default:
		return nil
	}
	return e
}
