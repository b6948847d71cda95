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

package factory

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"

	"dirpx.dev/trx/apis"
	"dirpx.dev/trx/engine"
	"dirpx.dev/trx/record"
	"dirpx.dev/trx/utils/naming"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("trx(factory): nil reflect.Type provided")
	// ErrNilEnumerator is returned when no property enumerator is provided.
	ErrNilEnumerator = errors.New("trx(factory): nil enumerator provided")
	// ErrEmptyPattern is returned for a pattern with neither a literal
	// nor an expression.
	ErrEmptyPattern = errors.New("trx(factory): empty pattern provided")
	// ErrPatternCompile is returned when an only/exclude expression
	// does not compile.
	ErrPatternCompile = errors.New("trx(factory): pattern does not compile")
)

// Build constructs an apis.Converter for t from s, using e to
// enumerate t's readable accessors.
//
// The retained key set is fixed here: accessors are normalized to
// field keys, filtered by the only/exclude precedence rule (a
// non-empty only set is the sole positive filter and exclude is
// ignored; otherwise exclude removes matches), and add entries are
// appended for keys not already taken by an accessor. Any failure
// leaves no converter behind.
func Build(t reflect.Type, s apis.Spec, e apis.Enumerator) (apis.Converter, error) {
	if t == nil {
		return nil, ErrNilType
	}
	if e == nil {
		return nil, ErrNilEnumerator
	}

	only, err := compile(s.Only)
	if err != nil {
		return nil, err
	}
	exclude, err := compile(s.Exclude)
	if err != nil {
		return nil, err
	}

	accs, err := e.Enumerate(t)
	if err != nil {
		return nil, err
	}

	retained := make(map[string]apis.Accessor, len(accs))
	for _, acc := range accs {
		key := naming.Normalize(acc.Name, acc.Predicate)
		if len(only) > 0 {
			if !matchAny(only, key) {
				continue
			}
		} else if matchAny(exclude, key) {
			continue
		}
		retained[key] = acc
	}

	keys := make([]string, 0, len(retained))
	for key := range retained {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return &converter{spec: s, retained: retained, keys: keys}, nil
}

// matcher reports whether a normalized field key is selected.
type matcher func(key string) bool

// compile turns patterns into whole-string matchers. Literals compare
// by equality; expressions are anchored so matching is never substring.
func compile(patterns []apis.Pattern) ([]matcher, error) {
	out := make([]matcher, 0, len(patterns))
	for _, p := range patterns {
		switch {
		case p.Literal != "":
			lit := p.Literal
			out = append(out, func(key string) bool { return key == lit })
		case p.Expr != "":
			re, err := regexp.Compile(`\A(?:` + p.Expr + `)\z`)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrPatternCompile, p.Expr, err)
			}
			out = append(out, re.MatchString)
		default:
			return nil, ErrEmptyPattern
		}
	}
	return out, nil
}

// matchAny reports whether any matcher selects key.
func matchAny(ms []matcher, key string) bool {
	for _, m := range ms {
		if m(key) {
			return true
		}
	}
	return false
}

// converter is the built field-extraction closure state. Immutable
// once constructed; safe for concurrent Convert calls.
type converter struct {
	// spec is kept for introspection.
	spec apis.Spec
	// retained maps each field key to its accessor.
	retained map[string]apis.Accessor
	// keys is the sorted retained key set.
	keys []string
}

// Ensure converter implements apis.Converter.
var _ apis.Converter = (*converter)(nil)

// Convert produces the record for v.
//
// Each retained field translates its accessor's raw value recursively
// with ExpandArrays forced to the converter's configured mode; the
// engine has already advanced the depth one level. Add fields apply
// their function to the raw object and are never translated. The
// effective laziness is the per-call override when present, else the
// converter default.
func (c *converter) Convert(tr apis.Translator, v any, o apis.Options) (apis.Record, error) {
	lazy := c.spec.Lazy
	if o.Lazy != nil {
		lazy = *o.Lazy
	}

	fo := o
	fo.ExpandArrays = c.spec.ExpandArrays

	fields := make(map[string]record.Thunk, len(c.retained)+len(c.spec.Add))
	for key, acc := range c.retained {
		invoke := acc.Invoke
		fields[key] = func() (any, error) {
			raw, err := invoke(v)
			if err != nil {
				return nil, err
			}
			return engine.Translate(tr, raw, fo)
		}
	}
	for key, fn := range c.spec.Add {
		if _, taken := c.retained[key]; taken {
			// Accessor-derived keys win; the add entry is not applied.
			continue
		}
		fn := fn
		fields[key] = func() (any, error) {
			return fn(v), nil
		}
	}

	if lazy {
		return record.Deferred(fields), nil
	}
	return record.Eager(fields)
}

// Spec returns the specification the converter was built from.
func (c *converter) Spec() apis.Spec {
	return c.spec
}

// Keys returns the sorted accessor-derived field keys.
func (c *converter) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}
