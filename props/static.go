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
	"reflect"

	"dirpx.dev/trx/apis"
)

// Static constructs a reflection-free apis.Enumerator from a fixed
// descriptor table, for hosts that provide generated accessor tables
// instead of runtime introspection. A type absent from the table has
// no readable accessors.
//
// The table is copied; later mutation of the argument does not affect
// the enumerator.
func Static(table map[reflect.Type][]apis.Accessor) apis.Enumerator {
	m := make(map[reflect.Type][]apis.Accessor, len(table))
	for t, accs := range table {
		cp := make([]apis.Accessor, len(accs))
		copy(cp, accs)
		m[t] = cp
	}
	return static{table: m}
}

// static is an immutable table-backed Enumerator.
type static struct {
	table map[reflect.Type][]apis.Accessor
}

// Ensure static implements apis.Enumerator.
var _ apis.Enumerator = static{}

// Enumerate returns the table entry for t, or an empty set when the
// type is unknown.
func (e static) Enumerate(t reflect.Type) ([]apis.Accessor, error) {
	if t == nil {
		return nil, ErrNilType
	}
	return e.table[t], nil
}
