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

// Converter turns one object of a specific registered type into a
// Record, per the Spec it was built from. Converters are immutable
// once built and safe for concurrent use.
type Converter interface {
	// Convert produces a Record for v. tr is threaded through so field
	// values can be translated recursively; o carries the depth and
	// per-call overrides already advanced by the engine.
	Convert(tr Translator, v any, o Options) (Record, error)

	// Spec returns the specification the Converter was built from.
	// Intended for introspection and debugging only.
	Spec() Spec

	// Keys returns the accessor-derived field keys the Converter
	// retains, in lexical order. Add-only keys are not included.
	Keys() []string
}

// Record is an associative record produced by a Converter: one entry
// per retained accessor key plus appended add keys. Enumeration order
// carries no meaning.
//
// A lazy Record computes a field on first Get and memoizes the value
// and the error; computation happens at most once per field even under
// concurrent first reads. An eager Record has every field computed at
// construction, so Get never does work.
type Record interface {
	// Get returns the value for key, computing and memoizing it first
	// if the Record is lazy. Reading an absent key is an error.
	Get(key string) (any, error)

	// Has reports whether key is present.
	Has(key string) bool

	// Keys returns all field keys in lexical order.
	Keys() []string

	// Len returns the number of fields.
	Len() int

	// Map forces every field and returns a plain map of the results.
	// The first field error aborts the whole materialization.
	Map() (map[string]any, error)
}
