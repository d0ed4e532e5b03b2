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
	"strconv"
	"strings"
)

// Sprint renders v in a form the reader would re-read to an equal
// value, with the exceptions spec.md §4.2 names: a Primitive prints as
// "<built-in function>", a Closure as "<lambda>", and an improper list
// prints its non-nil final tail after an infix " . ".
func Sprint(v Value) string {
	var b strings.Builder
	writeValue(&b, v)
	return b.String()
}

// Print writes Sprint(v) to Stdout. It does not append a newline — the
// print primitive (which does) is a separate built-in, not this
// function.
func Print(v Value) {
	fmt.Fprint(Stdout, Sprint(v))
}

func writeValue(b *strings.Builder, v Value) {
	switch v.Kind() {
	case KindNil:
		b.WriteString("nil")
	case KindInt:
		b.WriteString(strconv.FormatInt(v.Int64(), 10))
	case KindSymbol:
		b.WriteString(v.SymbolName())
	case KindPrimitive:
		b.WriteString("<built-in function>")
	case KindClosure:
		b.WriteString("<lambda>")
	case KindPair:
		writeList(b, v)
	}
}

func writeList(b *strings.Builder, v Value) {
	b.WriteByte('(')
	first := true
	for v.IsPair() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		writeValue(b, v.Head())
		v = v.Tail()
	}
	if !v.IsNil() {
		b.WriteString(" . ")
		writeValue(b, v)
	}
	b.WriteByte(')')
}
