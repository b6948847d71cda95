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

package translator

import (
	"reflect"

	"dirpx.dev/trx/apis"
	"dirpx.dev/trx/factory"
	"dirpx.dev/trx/props"
)

// New constructs an empty apis.Translator. Without options it
// enumerates properties with the reflection-backed props enumerator.
func New(opts ...Option) apis.Translator {
	x := &xlator{enum: props.New()}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Option is a functional option applied when constructing a Translator.
type Option func(*xlator)

// WithEnumerator supplies the host property-enumeration collaborator
// used when building converters. Nil is ignored.
func WithEnumerator(e apis.Enumerator) Option {
	return func(x *xlator) {
		if e != nil {
			x.enum = e
		}
	}
}

// xlator is an immutable Translator value. Register and Unregister
// copy the registry mapping; a published xlator is never mutated, so
// values may be shared across goroutines without locking.
type xlator struct {
	// enum builds converters for newly registered types.
	enum apis.Enumerator
	// m maps exact reflect.Type to its Converter.
	m map[reflect.Type]apis.Converter
}

// Ensure xlator implements apis.Translator.
var _ apis.Translator = (*xlator)(nil)

// Register builds a Converter for t from s and returns a new
// Translator with t bound to it, replacing any prior entry for the
// exact same type. On failure the receiver is returned logically
// unchanged: no partial registry state exists.
func (x *xlator) Register(t reflect.Type, s apis.Spec) (apis.Translator, error) {
	conv, err := factory.Build(t, s, x.enum)
	if err != nil {
		return x, err
	}

	nm := make(map[reflect.Type]apis.Converter, len(x.m)+1)
	for k, v := range x.m {
		nm[k] = v
	}
	nm[t] = conv
	return &xlator{enum: x.enum, m: nm}, nil
}

// Unregister returns a Translator without an entry for t. Removing an
// absent entry returns the receiver itself.
func (x *xlator) Unregister(t reflect.Type) apis.Translator {
	if _, ok := x.m[t]; !ok {
		return x
	}

	nm := make(map[reflect.Type]apis.Converter, len(x.m)-1)
	for k, v := range x.m {
		if k != t {
			nm[k] = v
		}
	}
	return &xlator{enum: x.enum, m: nm}
}

// Lookup returns the Converter registered for exactly t, if any.
// Dispatch is nominal: no assignability or interface matching.
func (x *xlator) Lookup(t reflect.Type) (apis.Converter, bool) {
	conv, ok := x.m[t]
	return conv, ok
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (x *xlator) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, len(x.m))
	for t, conv := range x.m {
		entries = append(entries, apis.Entry{Type: t, Converter: conv})
	}
	return entries
}

// Count returns the number of registered entries.
func (x *xlator) Count() int {
	return len(x.m)
}
