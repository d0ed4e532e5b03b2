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

import (
	"fmt"
	"sort"
	"strings"
)

// Declaration documents one primitive the way Help prints it. Grounded
// on the teacher's Declaration/Declare registry (scm/declare.go),
// carried over unchanged in shape because it is exactly the kind of
// self-describing built-in table a REPL's (help) wants.
type Declaration struct {
	Name         string
	Desc         string
	MinParameter int
	MaxParameter int // -1 means unbounded
	Fn           func(en *Env, args []Value) Value
}

var declarations = map[string]*Declaration{}

// Declare installs def.Fn as a Primitive named def.Name in env (which
// must be, or chain up to, the global environment) and records def so
// Help can describe it later.
func Declare(env *Env, def *Declaration) {
	declarations[def.Name] = def
	DefineGlobal(env, def.Name, NewPrimitive(def.Name, def.Fn))
}

// Help implements the (help) / (help 'name) built-in: with no argument
// it lists every declared primitive and its one-line summary; with a
// name it prints that primitive's full description and arity.
func Help(fn string) string {
	var b strings.Builder
	if fn == "" {
		b.WriteString("Available primitives:\n")
		names := make([]string, 0, len(declarations))
		for name := range declarations {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			def := declarations[name]
			summary := def.Desc
			if idx := strings.IndexByte(summary, '\n'); idx >= 0 {
				summary = summary[:idx]
			}
			fmt.Fprintf(&b, "  %s: %s\n", name, summary)
		}
		return b.String()
	}
	def, ok := declarations[fn]
	if !ok {
		fmt.Fprintf(&b, "no such primitive: %s\n", fn)
		return b.String()
	}
	fmt.Fprintf(&b, "%s\n", def.Name)
	fmt.Fprintf(&b, "%s\n", def.Desc)
	if def.MaxParameter < 0 {
		fmt.Fprintf(&b, "parameters: %d or more\n", def.MinParameter)
	} else {
		fmt.Fprintf(&b, "parameters: %d-%d\n", def.MinParameter, def.MaxParameter)
	}
	return b.String()
}
