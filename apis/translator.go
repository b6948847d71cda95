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

// Translator is an immutable registry of Converters keyed by exact
// runtime type. Register and Unregister never mutate the receiver;
// they return a new Translator value, so a Translator may be shared
// across goroutines without locking.
//
// Lookup is nominal: a Converter registered for type T applies to T
// only, never to types assignable to T or embedding T.
type Translator interface {
	// Register builds a Converter for t from s and returns a new
	// Translator whose registry maps t to that Converter, replacing
	// any prior entry for the same type. The receiver is unchanged.
	Register(t reflect.Type, s Spec) (Translator, error)

	// Unregister returns a Translator without an entry for t.
	// Removing an absent entry is a no-op success.
	Unregister(t reflect.Type) Translator

	// Lookup returns the Converter registered for exactly t, if any.
	Lookup(t reflect.Type) (Converter, bool)

	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Entry

	// Count returns the number of registered entries.
	Count() int
}

// Entry is a single (type, converter) association in a Translator snapshot.
type Entry struct {
	// Type is the registered reflect.Type.
	Type reflect.Type
	// Converter is the associated Converter.
	Converter Converter
}
