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

package naming_test

import (
	"testing"

	"dirpx.dev/trx/utils/naming"
)

func TestNormalize_Getters(t *testing.T) {
	cases := []struct {
		accessor string
		want     string
	}{
		{"GetFirstName", "first-name"},
		{"GetName", "name"},
		{"GetX", "x"},
		{"GetURL", "url"},
		// Capital runs have no lower-to-upper boundary inside them.
		{"GetHTMLParser", "htmlparser"},
		{"GetParserHTML", "parser-html"},
		{"GetAccountID", "account-id"},
		{"GetTopLevelDomain", "top-level-domain"},
		// A bare "Get" is not a prefix to strip.
		{"Get", "get"},
		// Non-conventional names pass through the boundary rule only.
		{"Name", "name"},
		{"FullName", "full-name"},
	}

	for _, c := range cases {
		if got := naming.Normalize(c.accessor, false); got != c.want {
			t.Errorf("Normalize(%q, false) = %q, want %q", c.accessor, got, c.want)
		}
	}
}

func TestNormalize_Predicates(t *testing.T) {
	cases := []struct {
		accessor string
		want     string
	}{
		{"IsActive", "active?"},
		{"IsHidden", "hidden?"},
		{"IsTopLevel", "top-level?"},
		// No "is-" fragment after hyphenation: nothing to strip.
		{"Isotope", "isotope?"},
		// Predicate marker applies regardless of the Get convention.
		{"GetActive", "active?"},
	}

	for _, c := range cases {
		if got := naming.Normalize(c.accessor, true); got != c.want {
			t.Errorf("Normalize(%q, true) = %q, want %q", c.accessor, got, c.want)
		}
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := naming.Normalize("GetFirstName", false); got != "first-name" {
			t.Fatalf("Normalize not deterministic: got %q on run %d", got, i)
		}
	}
}
