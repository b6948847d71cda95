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

// Options carries per-call translation knobs. It is passed by value
// through every recursive descent and never shared or mutated in place.
type Options struct {
	// MaxDepth is the recursion ceiling. When zero, depth is never
	// tracked and recursion is unbounded; there is no identity-based
	// cycle detection, so unbounded self-referential graphs exhaust
	// the call stack.
	MaxDepth int

	// Depth is the current recursion depth. It starts at zero at the
	// root and is advanced by the engine on every descent, but only
	// when MaxDepth is set. Callers should leave it alone.
	Depth int

	// Lazy overrides the converter's configured laziness for this
	// call. Nil means "use the converter default".
	Lazy *bool

	// ExpandArrays controls whether the generic fallback expands
	// native array values into sequences. Inside a converter it is
	// forced to the converter's configured value.
	ExpandArrays bool
}
