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
	"os"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// Option ...
type Option struct {
	// LeakDetection reports buffers which are garbage collected before all their handles are released.
	// It sets a finalizer for every new buffer, which slows down allocation and GC.
	LeakDetection bool

	// Logger is used for reporting leaks. nil means the default logger.
	Logger *log.Logger
}

// DefaultOption returns the default values of Option.
func DefaultOption() *Option {
	return &Option{
		LeakDetection: false,
		Logger:        defaultLogger,
	}
}

var defaultLogger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix:          "rcstr",
	ReportTimestamp: true,
})

var option atomic.Pointer[Option]

// SetOption changes the option for buffers created afterwards.
// nil resets it to DefaultOption().
func SetOption(o *Option) {
	if o == nil {
		o = DefaultOption()
	} else {
		c := *o
		if c.Logger == nil {
			c.Logger = defaultLogger
		}
		o = &c
	}
	option.Store(o)
}

func getOption() *Option {
	if o := option.Load(); o != nil {
		return o
	}
	return defaultOption
}

var defaultOption = DefaultOption()
