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

package engine

import (
	"reflect"

	"dirpx.dev/trx/apis"
)

// Translate converts v into plain data, depth-first.
//
// Dispatch order:
//  1. Depth gate: when o.MaxDepth is set and o.Depth has reached it,
//     v is returned unchanged. This is the sole guard against cyclic
//     or runaway object graphs; there is no identity-based cycle
//     detection.
//  2. A Converter registered for v's exact dynamic type, invoked with
//     the options advanced one depth level.
//  3. With o.ExpandArrays, a native array expands into a sequence of
//     translated elements.
//  4. Structural fallback: nil stays nil; map kinds yield a new
//     association with keys and values independently translated;
//     slice kinds yield a new sequence of translated elements.
//  5. Everything else is an opaque scalar and returns unchanged.
//
// Failures from converters or host accessors propagate unmodified;
// there is no recovery, wrapping, or partial result.
func Translate(tr apis.Translator, v any, o apis.Options) (any, error) {
	if o.MaxDepth > 0 && o.Depth >= o.MaxDepth {
		return v, nil
	}
	if v == nil {
		return nil, nil
	}

	rv := reflect.ValueOf(v)
	// A typed nil pointer is still absence; dispatching it to a
	// converter would invoke accessors on a nil receiver.
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		return v, nil
	}

	if tr != nil {
		if conv, ok := tr.Lookup(rv.Type()); ok {
			return conv.Convert(tr, v, advance(o))
		}
	}
	switch rv.Kind() {
	case reflect.Array:
		if !o.ExpandArrays {
			return v, nil
		}
		return sequence(tr, rv, advance(o))
	case reflect.Map:
		return association(tr, rv, advance(o))
	case reflect.Slice:
		return sequence(tr, rv, advance(o))
	default:
		return v, nil
	}
}

// advance moves the options one depth level down. Depth bookkeeping is
// skipped entirely when no ceiling is set.
func advance(o apis.Options) apis.Options {
	if o.MaxDepth > 0 {
		o.Depth++
	}
	return o
}

// association rebuilds a map value with every key and value translated.
// Translated keys must remain comparable to be reinserted; that is a
// property of the host language, not an engine check.
func association(tr apis.Translator, rv reflect.Value, o apis.Options) (map[any]any, error) {
	out := make(map[any]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k, err := Translate(tr, iter.Key().Interface(), o)
		if err != nil {
			return nil, err
		}
		v, err := Translate(tr, iter.Value().Interface(), o)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// sequence rebuilds an ordered slice or array with every element translated.
func sequence(tr apis.Translator, rv reflect.Value, o apis.Options) ([]any, error) {
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		v, err := Translate(tr, rv.Index(i).Interface(), o)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
