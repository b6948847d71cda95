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

package spec

import (
	"dirpx.dev/trx/apis"
)

const (
	// DefaultLazy represents the default for Lazy.
	// Converters defer and memoize field computation unless told otherwise.
	DefaultLazy = true
	// DefaultExpandArrays represents the default for ExpandArrays.
	DefaultExpandArrays = false
)

// New constructs an apis.Spec from the given options.
func New(opts ...Option) apis.Spec {
	s := Default()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Default is the default converter specification: every enumerated
// accessor retained, no added fields, lazy field computation.
func Default() apis.Spec {
	return apis.Spec{
		Lazy:         DefaultLazy,
		ExpandArrays: DefaultExpandArrays,
	}
}

// Option is a functional option that mutates an apis.Spec during construction.
type Option func(*apis.Spec)

// Only restricts the converter to exactly the given field keys,
// matched literally. When any Only pattern is present, Exclude is
// ignored.
func Only(keys ...string) Option {
	return func(s *apis.Spec) {
		for _, key := range keys {
			s.Only = append(s.Only, apis.LiteralPattern(key))
		}
	}
}

// OnlyExpr restricts the converter to field keys matching the given
// regular expressions, anchored to the whole key.
func OnlyExpr(exprs ...string) Option {
	return func(s *apis.Spec) {
		for _, expr := range exprs {
			s.Only = append(s.Only, apis.ExprPattern(expr))
		}
	}
}

// Exclude drops the given field keys, matched literally.
func Exclude(keys ...string) Option {
	return func(s *apis.Spec) {
		for _, key := range keys {
			s.Exclude = append(s.Exclude, apis.LiteralPattern(key))
		}
	}
}

// ExcludeExpr drops field keys matching the given regular expressions,
// anchored to the whole key.
func ExcludeExpr(exprs ...string) Option {
	return func(s *apis.Spec) {
		for _, expr := range exprs {
			s.Exclude = append(s.Exclude, apis.ExprPattern(expr))
		}
	}
}

// Add appends a computed field. fn receives the raw object being
// converted; its result is never recursively translated. An Add key
// colliding with a retained accessor key is not applied.
func Add(key string, fn apis.FieldFunc) Option {
	return func(s *apis.Spec) {
		if s.Add == nil {
			s.Add = make(map[string]apis.FieldFunc)
		}
		s.Add[key] = fn
	}
}

// Lazy sets the converter's laziness default.
func Lazy(lazy bool) Option {
	return func(s *apis.Spec) {
		s.Lazy = lazy
	}
}

// ExpandArrays sets the array expansion mode forced on field translation.
func ExpandArrays(expand bool) Option {
	return func(s *apis.Spec) {
		s.ExpandArrays = expand
	}
}
