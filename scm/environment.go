/*
Copyright (C) 2026 the golisp authors

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package scm

// binding is one (Symbol, Value) entry in the ordered sequence spec.md
// §3/§4.3 describes as the Environment. Frames are never mutated once
// linked — Define always allocates a fresh node, so aliasing a chain
// across closures is safe.
type binding struct {
	name  string
	value Value
	next  *binding
}

// global is the mutable cell behind the "single level of indirection"
// spec.md §4.3 requires: defun grows global.head in place so that
// closures which captured a pointer to this cell before the definition
// existed can still resolve it afterwards (the classic recursive-defun
// problem).
type global struct {
	head *binding
}

// Env is a lexical environment: a local binding chain plus a shared
// pointer to the global environment's cell. Grounded on the teacher's
// Env{Vars, Outer} chain-walk idiom (scm/scm.go), adapted from a
// map-per-frame to a single-binding-per-frame chain so that Define's
// "prepend one binding, never mutate" contract and its shadowing order
// are exact rather than incidental.
type Env struct {
	local *binding
	glob  *global
}

// NewGlobalEnv returns a fresh environment with an empty local chain and
// a fresh, empty global cell. It holds none of the built-in primitives;
// callers normally want NewGlobalEnvWithBuiltins.
func NewGlobalEnv() *Env {
	return &Env{local: nil, glob: &global{}}
}

// Lookup scans the local chain front-to-back, then falls back to the
// global chain, per spec.md §4.4 rule 3. The bool result is false on a
// miss; callers that need the "Undefined symbol" diagnostic check it.
func Lookup(env *Env, name string) (Value, bool) {
	for b := env.local; b != nil; b = b.next {
		if b.name == name {
			return b.value, true
		}
	}
	for b := env.glob.head; b != nil; b = b.next {
		if b.name == name {
			return b.value, true
		}
	}
	return nilValue, false
}

// Define returns a new environment with a fresh binding prepended to the
// local chain. env itself is never modified.
func Define(env *Env, name string, value Value) *Env {
	return &Env{local: &binding{name: name, value: value, next: env.local}, glob: env.glob}
}

// DefineGlobal installs name in the global environment, in place, so
// that it becomes visible to every environment sharing this global cell
// — including closures that were constructed before the call and whose
// captured environment already pointed at this cell. This is how defun
// is specified to behave (spec.md §4.4).
func DefineGlobal(env *Env, name string, value Value) {
	env.glob.head = &binding{name: name, value: value, next: env.glob.head}
}

// GlobalOf returns an environment whose local chain is empty and whose
// global cell is shared with env — "the global environment" as seen
// from env, used as a defun-constructed closure's captured environment
// so that recursive self-reference resolves via DefineGlobal above.
func GlobalOf(env *Env) *Env {
	return &Env{local: nil, glob: env.glob}
}
