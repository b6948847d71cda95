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

package trx

import (
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/trx/apis"
	"dirpx.dev/trx/engine"
	"dirpx.dev/trx/options"
	"dirpx.dev/trx/translator"
)

// init initializes the global translator state.
func init() {
	// Initialize state with an empty translator.
	st.Store(&state{tr: translator.New()})
}

// New returns a fresh, empty Translator independent of the global one.
// This is the primary, explicit surface; the package-level functions
// below are convenience wrappers around a process-wide default.
func New(opts ...translator.Option) apis.Translator {
	return translator.New(opts...)
}

// Translate converts v into plain data using the global translator.
// This is a convenience wrapper around the global state.
func Translate(v any, opts ...options.Option) (any, error) {
	return engine.Translate(st.Load().tr, v, options.New(opts...))
}

// TranslateWith converts v into plain data using an explicit translator.
func TranslateWith(tr apis.Translator, v any, opts ...options.Option) (any, error) {
	return engine.Translate(tr, v, options.New(opts...))
}

// Register binds t to a converter built from s in the global
// translator. The previous global value is replaced atomically; a
// build failure leaves the global state untouched.
// This is a convenience wrapper around the global state.
func Register(t reflect.Type, s apis.Spec) error {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	ntr, err := old.tr.Register(t, s)
	if err != nil {
		return err
	}

	// Store the new state atomically.
	st.Store(&state{tr: ntr})
	return nil
}

// Unregister removes t's entry from the global translator. Removing a
// non-existent entry is a no-op success.
// This is a convenience wrapper around the global state.
func Unregister(t reflect.Type) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(&state{tr: old.tr.Unregister(t)})
}

// Translator returns the global translator snapshot.
func Translator() apis.Translator {
	return st.Load().tr
}

// SetTranslator replaces the global translator with tr.
// Nil leaves the global state unchanged.
// This is a convenience wrapper around the global state.
func SetTranslator(tr apis.Translator) {
	if tr == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Store the new state atomically.
	st.Store(&state{tr: tr})
}

// Reset restores the global state to an empty translator.
// Mainly used by tests to get a clean deterministic state.
func Reset() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Store the new state atomically.
	st.Store(&state{tr: translator.New()})
}

// buildMu serializes writers (registrations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global trx state.
var st atomic.Pointer[state]

// state is the global trx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate
// fields of a published state. Writers create a new state and swap it
// atomically.
type state struct {
	// tr is the global translator.
	tr apis.Translator
}
