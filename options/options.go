/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package options

import (
	"dirpx.dev/trx/apis"
)

const (
	// DefaultMaxDepth represents the default for MaxDepth.
	// Zero disables depth tracking entirely: recursion is unbounded.
	DefaultMaxDepth = 0
	// DefaultExpandArrays represents the default for ExpandArrays.
	// When false, native arrays are returned unchanged by the fallback.
	DefaultExpandArrays = false
)

// New constructs an apis.Options from the given options.
func New(opts ...Option) apis.Options {
	o := Default()
	for _, opt := range opts {
		opt(&o)
	}
	// Ensure MaxDepth is valid.
	if o.MaxDepth < 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}

// Default is the default per-call configuration used when none is provided.
// Laziness is left unset so each converter's own default applies.
func Default() apis.Options {
	return apis.Options{
		MaxDepth:     DefaultMaxDepth,
		ExpandArrays: DefaultExpandArrays,
	}
}

// Option is a functional option that mutates an apis.Options during construction.
type Option func(*apis.Options)

// WithMaxDepth sets the recursion ceiling.
// A non-positive value resets to unbounded recursion.
func WithMaxDepth(depth int) Option {
	return func(o *apis.Options) {
		if depth < 0 {
			o.MaxDepth = DefaultMaxDepth
			return
		}
		o.MaxDepth = depth
	}
}

// WithLazy overrides every converter's laziness default for this call.
func WithLazy(lazy bool) Option {
	return func(o *apis.Options) {
		o.Lazy = &lazy
	}
}

// WithExpandArrays sets the ExpandArrays option.
func WithExpandArrays(expand bool) Option {
	return func(o *apis.Options) {
		o.ExpandArrays = expand
	}
}
