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

package translator_test

import (
	"errors"
	"reflect"
	"testing"

	"dirpx.dev/trx/factory"
	"dirpx.dev/trx/spec"
	"dirpx.dev/trx/translator"
)

type point struct{ x, y int }

func (p point) GetX() int { return p.x }
func (p point) GetY() int { return p.y }

type circle struct{ r int }

func (c circle) GetRadius() int { return c.r }

func TestRegister_ReturnsNewTranslator(t *testing.T) {
	empty := translator.New()

	tr, err := empty.Register(reflect.TypeOf(point{}), spec.Default())
	if err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}

	// The original value is untouched.
	if empty.Count() != 0 {
		t.Fatalf("empty.Count() = %d after Register, want 0", empty.Count())
	}
	if _, ok := empty.Lookup(reflect.TypeOf(point{})); ok {
		t.Fatal("empty translator gained an entry")
	}

	conv, ok := tr.Lookup(reflect.TypeOf(point{}))
	if !ok {
		t.Fatal("Lookup(point) after Register: not found")
	}
	if got := conv.Keys(); !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Fatalf("converter Keys() = %v, want [x y]", got)
	}
	if tr.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", tr.Count())
	}
}

func TestRegister_ReplacesExactType(t *testing.T) {
	tr, err := translator.New().Register(reflect.TypeOf(point{}), spec.Default())
	if err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	tr, err = tr.Register(reflect.TypeOf(point{}), spec.New(spec.Only("x")))
	if err != nil {
		t.Fatalf("re-Register: unexpected error: %v", err)
	}

	if tr.Count() != 1 {
		t.Fatalf("Count() = %d after overwrite, want 1", tr.Count())
	}
	conv, _ := tr.Lookup(reflect.TypeOf(point{}))
	if got := conv.Keys(); !reflect.DeepEqual(got, []string{"x"}) {
		t.Fatalf("overwritten converter Keys() = %v, want [x]", got)
	}
}

func TestRegister_NominalDispatchOnly(t *testing.T) {
	tr, err := translator.New().Register(reflect.TypeOf(point{}), spec.Default())
	if err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}

	// The pointer type is a different exact type.
	if _, ok := tr.Lookup(reflect.TypeOf(&point{})); ok {
		t.Fatal("Lookup(*point) matched a converter registered for point")
	}
	if _, ok := tr.Lookup(reflect.TypeOf(circle{})); ok {
		t.Fatal("Lookup(circle) matched a converter registered for point")
	}
}

func TestRegister_Errors(t *testing.T) {
	base := translator.New()

	tr, err := base.Register(nil, spec.Default())
	if !errors.Is(err, factory.ErrNilType) {
		t.Fatalf("Register(nil): want ErrNilType, got %v", err)
	}
	// Failed registration leaves no partial state.
	if tr.Count() != 0 {
		t.Fatalf("Count() = %d after failed Register, want 0", tr.Count())
	}

	_, err = base.Register(reflect.TypeOf(point{}), spec.New(spec.OnlyExpr(`(unclosed`)))
	if !errors.Is(err, factory.ErrPatternCompile) {
		t.Fatalf("Register(bad pattern): want ErrPatternCompile, got %v", err)
	}
}

func TestUnregister(t *testing.T) {
	pt := reflect.TypeOf(point{})
	tr, err := translator.New().Register(pt, spec.Default())
	if err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}

	// register then unregister: no entry for lookup purposes.
	out := tr.Unregister(pt)
	if _, ok := out.Lookup(pt); ok {
		t.Fatal("Lookup found an entry after Unregister")
	}
	if out.Count() != 0 {
		t.Fatalf("Count() = %d after Unregister, want 0", out.Count())
	}

	// The registered value is untouched.
	if _, ok := tr.Lookup(pt); !ok {
		t.Fatal("Unregister mutated the source translator")
	}

	// Removing a non-existent entry is a no-op success.
	if again := out.Unregister(pt); again.Count() != 0 {
		t.Fatal("Unregister of absent entry changed the translator")
	}
}

func TestEntries(t *testing.T) {
	tr, err := translator.New().Register(reflect.TypeOf(point{}), spec.Default())
	if err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}
	tr, err = tr.Register(reflect.TypeOf(circle{}), spec.Default())
	if err != nil {
		t.Fatalf("Register: unexpected error: %v", err)
	}

	entries := tr.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(Entries()) = %d, want 2", len(entries))
	}
	seen := make(map[reflect.Type]bool, len(entries))
	for _, e := range entries {
		if e.Converter == nil {
			t.Fatalf("Entries: nil converter for %v", e.Type)
		}
		seen[e.Type] = true
	}
	if !seen[reflect.TypeOf(point{})] || !seen[reflect.TypeOf(circle{})] {
		t.Fatalf("Entries missing a registered type: %v", seen)
	}
}
