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

// ListFromSlice builds a right-nested chain of Pairs terminated by Nil —
// a proper list — from a Go slice, in order.
func ListFromSlice(vs []Value) Value {
	result := nilValue
	for i := len(vs) - 1; i >= 0; i-- {
		result = Cons(vs[i], result)
	}
	return result
}

// SliceFromList walks a proper list into a Go slice. If v is not a
// proper list (its final tail is not Nil), the elements seen so far are
// returned together with ok=false.
func SliceFromList(v Value) (out []Value, ok bool) {
	for v.IsPair() {
		out = append(out, v.Head())
		v = v.Tail()
	}
	return out, v.IsNil()
}

// IsProperList reports whether v is Nil or a chain of Pairs whose final
// tail is Nil.
func IsProperList(v Value) bool {
	for v.IsPair() {
		v = v.Tail()
	}
	return v.IsNil()
}

// ListLength returns the number of elements of a proper list. A dotted
// tail stops the count at the last Pair before it (callers that care
// about properness should check IsProperList separately).
func ListLength(v Value) int64 {
	var n int64
	for v.IsPair() {
		n++
		v = v.Tail()
	}
	return n
}
