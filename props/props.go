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

package props

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"dirpx.dev/trx/apis"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("trx(props): nil reflect.Type provided")
)

// New constructs the reflection-backed apis.Enumerator. Accessor sets
// are memoized per type, so repeated registrations for the same type
// walk the method set once.
func New() apis.Enumerator {
	return &reflective{}
}

// reflective enumerates readable accessors from a type's method set.
type reflective struct {
	// cache maps reflect.Type to []apis.Accessor.
	cache sync.Map
}

// Ensure reflective implements apis.Enumerator.
var _ apis.Enumerator = (*reflective)(nil)

// Enumerate returns the readable accessors of t with memoization.
func (e *reflective) Enumerate(t reflect.Type) ([]apis.Accessor, error) {
	if t == nil {
		return nil, ErrNilType
	}
	if v, ok := e.cache.Load(t); ok {
		return v.([]apis.Accessor), nil
	}
	accs := enumerate(t)
	e.cache.Store(t, accs)
	return accs, nil
}

// enumerate walks t's method set and keeps the readable accessors:
// exported, zero-argument, single-result methods named "GetX", or
// "IsX" with a bool result (predicate).
func enumerate(t reflect.Type) []apis.Accessor {
	// Methods on a concrete type carry the receiver as In(0);
	// interface types do not.
	wantIn := 1
	if t.Kind() == reflect.Interface {
		wantIn = 0
	}

	var out []apis.Accessor
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if !m.IsExported() {
			continue
		}
		mt := m.Type
		if mt.NumIn() != wantIn || mt.NumOut() != 1 {
			continue
		}

		predicate := false
		switch {
		case strings.HasPrefix(m.Name, "Get") && len(m.Name) > len("Get"):
		case strings.HasPrefix(m.Name, "Is") && len(m.Name) > len("Is") && mt.Out(0).Kind() == reflect.Bool:
			predicate = true
		default:
			continue
		}

		out = append(out, apis.Accessor{
			Name:      m.Name,
			Returns:   mt.Out(0),
			Predicate: predicate,
			Invoke:    invoker(t, m.Name),
		})
	}
	return out
}

// invoker binds a zero-argument accessor call to a method name.
// A panic inside the host accessor surfaces as an error.
func invoker(t reflect.Type, name string) func(v any) (any, error) {
	return func(v any) (out any, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("trx(props): accessor %s on %s panicked: %v", name, t, r)
			}
		}()

		mv := reflect.ValueOf(v).MethodByName(name)
		if !mv.IsValid() {
			return nil, fmt.Errorf("trx(props): no accessor %s on %T", name, v)
		}
		res := mv.Call(nil)
		return res[0].Interface(), nil
	}
}
