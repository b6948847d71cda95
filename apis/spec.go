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

// FieldFunc computes an added field from the raw object being
// converted. Its result is placed in the record as-is, never
// recursively translated.
type FieldFunc func(v any) any

// Spec describes how a Converter for one type is built. It exists only
// during converter construction; the built Converter captures the
// resolved state and keeps a copy for introspection.
type Spec struct {
	// Only, when non-empty, is the sole positive filter: accessor keys
	// not matching any pattern are dropped, and Exclude is ignored.
	Only []Pattern

	// Exclude removes matching accessor keys. Consulted only when
	// Only is empty.
	Exclude []Pattern

	// Add maps extra field keys to computed values. Accessor-derived
	// keys are computed first; an Add entry whose key collides with a
	// retained accessor key is not applied.
	Add map[string]FieldFunc

	// Lazy selects deferred, memoized field computation. The per-call
	// Options.Lazy overrides it.
	Lazy bool

	// ExpandArrays is forced onto the options threaded through field
	// translation, so array values below this converter expand into
	// sequences.
	ExpandArrays bool
}

// Pattern selects field keys with whole-string match semantics, never
// substring. Exactly one of Literal and Expr should be set; a Pattern
// with both empty cannot be compiled.
//
// Patterns are matched against normalized field keys (for example
// "first-name" or "active?"), not raw accessor names.
type Pattern struct {
	// Literal is matched by exact string equality.
	Literal string

	// Expr is a regular expression, compiled anchored to the whole
	// key at converter build time.
	Expr string
}

// LiteralPattern returns a Pattern matching key by exact equality.
func LiteralPattern(key string) Pattern {
	return Pattern{Literal: key}
}

// ExprPattern returns a Pattern matching keys against a regular
// expression. The expression is anchored during compilation.
func ExprPattern(expr string) Pattern {
	return Pattern{Expr: expr}
}
