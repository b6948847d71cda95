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

package record

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"dirpx.dev/trx/apis"
)

var (
	// ErrNoSuchField is returned when reading a key the record does not hold.
	ErrNoSuchField = errors.New("trx(record): no such field")
)

// Thunk computes one field value on demand.
type Thunk func() (any, error)

// Deferred constructs a lazy apis.Record over the given field thunks.
// Each field owns its own cache cell: the thunk runs on the first Get
// of that key and at most once even under concurrent first reads, and
// both the value and the error are memoized.
func Deferred(fields map[string]Thunk) apis.Record {
	cells := make(map[string]*cell, len(fields))
	keys := make([]string, 0, len(fields))
	for key, fn := range fields {
		cells[key] = &cell{fn: fn}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return &rec{cells: cells, keys: keys}
}

// Eager constructs an apis.Record with every field computed up front.
// The first field error aborts construction and no record is returned.
func Eager(fields map[string]Thunk) (apis.Record, error) {
	r := Deferred(fields)
	if _, err := r.Map(); err != nil {
		return nil, err
	}
	return r, nil
}

// rec is the single Record implementation; eager records are deferred
// records whose cells were all forced at construction.
type rec struct {
	cells map[string]*cell
	keys  []string
}

// cell is one field's deferred computation and cache.
type cell struct {
	once sync.Once
	fn   Thunk
	val  any
	err  error
}

// Ensure rec implements apis.Record.
var _ apis.Record = (*rec)(nil)

// force runs the thunk once and memoizes its outcome.
func (c *cell) force() (any, error) {
	c.once.Do(func() {
		c.val, c.err = c.fn()
		c.fn = nil
	})
	return c.val, c.err
}

// Get returns the value for key, computing and memoizing it first.
func (r *rec) Get(key string) (any, error) {
	c, ok := r.cells[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchField, key)
	}
	return c.force()
}

// Has reports whether key is present.
func (r *rec) Has(key string) bool {
	_, ok := r.cells[key]
	return ok
}

// Keys returns all field keys in lexical order.
func (r *rec) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of fields.
func (r *rec) Len() int {
	return len(r.cells)
}

// Map forces every field and returns a plain map of the results.
func (r *rec) Map() (map[string]any, error) {
	out := make(map[string]any, len(r.cells))
	for key, c := range r.cells {
		v, err := c.force()
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}
