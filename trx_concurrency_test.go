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
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/trx/spec"
)

// A few named bean types to spread concurrent registrations across.
type C0 struct{}
type C1 struct{}
type C2 struct{}
type C3 struct{}

func (C0) GetA() int { return 0 }
func (C1) GetA() int { return 1 }
func (C2) GetA() int { return 2 }
func (C3) GetA() int { return 3 }

// TestGlobal_ConcurrentRegisterAndTranslate verifies that global reads
// never block or observe a partially-built snapshot while writers
// register and unregister concurrently.
func TestGlobal_ConcurrentRegisterAndTranslate(t *testing.T) {
	reset(t)

	types := []reflect.Type{
		reflect.TypeOf(C0{}), reflect.TypeOf(C1{}),
		reflect.TypeOf(C2{}), reflect.TypeOf(C3{}),
	}
	values := []any{C0{}, C1{}, C2{}, C3{}}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 2

	// Readers: every loaded snapshot must be internally consistent and
	// every translate must succeed (converted or identity, never error).
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				tr := Translator()
				if tr.Count() != len(tr.Entries()) {
					t.Errorf("snapshot inconsistent: Count=%d len(Entries)=%d", tr.Count(), len(tr.Entries()))
					return
				}
				if _, err := Translate(values[i%len(values)]); err != nil {
					t.Errorf("Translate: unexpected error: %v", err)
					return
				}
			}
		}()
	}

	// Writers: register and unregister across the type set.
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				tt := types[(i+id)%len(types)]
				if err := Register(tt, spec.Default()); err != nil {
					t.Errorf("Register(%v): %v", tt, err)
					return
				}
				if i%3 == 0 {
					Unregister(tt)
				}
			}
		}(w)
	}

	wg.Wait()

	// Last-write-wins: the final snapshot is usable and bounded.
	if n := Translator().Count(); n > len(types) {
		t.Fatalf("final Count() = %d, want at most %d", n, len(types))
	}
}
