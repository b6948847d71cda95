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

package naming

import (
	"strings"
	"unicode"
)

const (
	// getPrefix is stripped from accessors following the "GetX" convention.
	getPrefix = "Get"
	// predicateFragment is the normalized leading fragment of "IsX" names.
	predicateFragment = "is-"
	// predicateMarker is appended to keys of boolean predicate accessors.
	predicateMarker = "?"
)

// Normalize maps an accessor name and its predicate flag to a canonical
// field key. It is pure and deterministic: the same inputs always yield
// the same key.
//
// Normalization policy:
//   - a leading "Get" is stripped when followed by anything
//     ("GetFirstName" -> "FirstName");
//   - a separator is inserted between a lowercase letter and an
//     immediately following uppercase letter, then the whole key is
//     lowercased ("FirstName" -> "first-name"). Capital runs carry no
//     internal boundary: "GetHTMLParser" -> "htmlparser";
//   - predicate accessors get a trailing "?" marker, with a leading
//     "is-" fragment stripped so "IsActive" reads "active?" rather
//     than "is-active?".
func Normalize(accessor string, predicate bool) string {
	name := accessor
	if strings.HasPrefix(name, getPrefix) && len(name) > len(getPrefix) {
		name = name[len(getPrefix):]
	}

	key := hyphenate(name)
	if predicate {
		key = strings.TrimPrefix(key, predicateFragment)
		key += predicateMarker
	}
	return key
}

// hyphenate inserts '-' at every lower-to-upper case boundary and
// lowercases the result.
func hyphenate(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)

	prevLower := false
	for _, r := range s {
		if prevLower && unicode.IsUpper(r) {
			b.WriteByte('-')
		}
		prevLower = unicode.IsLower(r)
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
