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

package apis

import "reflect"

// Enumerator lists the readable properties of a type.
//
// # Overview
//
// Enumerator is the host-introspection collaborator of the translation
// subsystem. The converter factory consults it exactly once per
// registration to learn which zero-argument accessors a type exposes;
// everything downstream (key normalization, only/exclude filtering,
// field extraction) is derived from its answer.
//
// Keeping this behind an interface decouples the engine from any
// particular introspection mechanism: the default implementation walks
// the type's method set via reflection, while hosts that cannot or do
// not want to reflect can supply a static descriptor table instead.
//
// # Contract
//
//   - Enumerate MUST include only readable, zero-argument,
//     single-result accessors. Write-only or parameterized methods
//     MUST be excluded.
//   - Enumerate MUST be deterministic for a given type: same type,
//     same accessor set.
//   - Enumerate MUST be safe for concurrent calls from multiple
//     goroutines.
//   - Implementations MAY cache per-type results; callers MUST NOT
//     rely on any caching beyond what the implementation documents.
//   - Enumerate MUST NOT perform blocking operations or I/O.
type Enumerator interface {
	// Enumerate returns the readable accessors of t.
	// A type with no accessors yields an empty set, not an error.
	Enumerate(t reflect.Type) ([]Accessor, error)
}

// Accessor describes one readable property of a type: its raw accessor
// name, the declared result type, and a zero-argument invocation
// capability bound to that property.
type Accessor struct {
	// Name is the raw accessor name, e.g. "GetFirstName" or "IsActive".
	Name string

	// Returns is the declared result type of the accessor.
	Returns reflect.Type

	// Predicate reports whether the accessor follows the boolean
	// "IsX" convention; predicate keys carry a trailing "?" marker
	// after normalization.
	Predicate bool

	// Invoke reads the property from v. A failure inside the host
	// accessor is returned as an error, never swallowed.
	Invoke func(v any) (any, error)
}
