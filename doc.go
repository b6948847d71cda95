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

// Package trx translates richly-typed, bean-like objects into plain,
// introspectable data (records, maps, sequences, scalars).
//
// trx is a registry-driven object mapper. Callers register, per exact
// runtime type, a specification of which zero-argument accessors to
// expose, how to rename or compute extra fields, and whether field
// values are computed eagerly or lazily. Everything without a
// registered converter falls back to structural dispatch.
//
// # Design
//
// The core is a small set of layers, leaves first:
//
//   - utils/naming: pure accessor-name normalization. "GetFirstName"
//     becomes the key "first-name"; a boolean "IsActive" becomes the
//     predicate key "active?".
//
//   - props: the property enumerator. It answers "which readable,
//     zero-argument accessors does this type expose?", by walking the
//     method set via reflection, or from a static descriptor table for
//     hosts without native introspection (props.Static).
//
//   - factory: builds a Converter from a type and a Spec. only/exclude
//     patterns are compiled here (whole-string match, never substring),
//     the retained key set is fixed once and never changes, and add
//     fields are appended for keys no accessor already claimed.
//
//   - translator: an immutable registry from exact reflect.Type to
//     Converter. Register and Unregister return a new Translator value;
//     a published Translator is never mutated, so it can be shared
//     across goroutines without locking. Dispatch is nominal: a
//     converter registered for T never applies to other types, however
//     assignable.
//
//   - engine: the recursive Translate entry point. It checks the depth
//     ceiling, dispatches to a registered converter, optionally expands
//     native arrays, and otherwise falls back structurally: nil stays
//     nil, maps rebuild with translated keys and values, slices rebuild
//     with translated elements, and everything else returns unchanged.
//
//   - record: the produced field records. A lazy record computes each
//     field on first read and memoizes value and error, at most once
//     per field even under concurrent first reads.
//
// # Depth and laziness
//
// Recursion is bounded only by an optional MaxDepth option; there is
// no identity-based cycle detection. When the ceiling is reached, the
// engine returns the sub-object unchanged rather than descending.
// Without a ceiling, depth is not tracked at all and self-referential
// graphs exhaust the call stack. That is an accepted risk, not handled.
//
// Laziness defaults to true per converter and can be overridden per
// call:
//
//	out, err := trx.Translate(obj, options.WithLazy(false))
//
// With lazy records, a failing accessor surfaces when its field is
// first read; with eager records, record construction itself fails.
// Failures always propagate unmodified: the engine never recovers,
// wraps, or returns a partially-filled record.
//
// # Global API
//
// The explicit surface is primary: build a Translator, thread it
// through TranslateWith. As a convenience, the package also holds a
// process-wide default translator in an immutable snapshot behind an
// atomic pointer, in the same read-mostly style as the rest of the
// DIRPX libraries:
//
//	_ = trx.Register(reflect.TypeOf(Point{}), spec.Default())
//	out, err := trx.Translate(Point{X: 3, Y: 4})
//
// Reads (Translate, Translator) are wait-free: they load the current
// snapshot atomically and never take locks. Writes (Register,
// Unregister, SetTranslator, Reset) take a short build mutex, derive a
// new snapshot, and publish it atomically, giving last-write-wins
// behavior without per-translate locking.
//
// # Scope
//
// trx produces in-memory data structures only. It is not a
// serialization format: no wire encoding, no schema, no I/O. It does
// not validate or coerce scalar values, and it does not attempt true
// cycle detection. Callers needing resilience around failing accessors
// wrap calls themselves; the core performs no logging, retries, or
// default-value substitution.
package trx
