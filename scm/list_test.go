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

import "testing"

func TestListFromSliceAndBack(t *testing.T) {
	want := []Value{Int(1), Int(2), Int(3)}
	l := ListFromSlice(want)
	if !IsProperList(l) {
		t.Fatalf("ListFromSlice must produce a proper list")
	}
	if ListLength(l) != 3 {
		t.Fatalf("expected length 3, got %d", ListLength(l))
	}
	got, ok := SliceFromList(l)
	if !ok {
		t.Fatalf("SliceFromList should report a proper list")
	}
	for i, v := range want {
		if !Eq(v, got[i]) {
			t.Fatalf("element %d mismatch: want %v got %v", i, v, got[i])
		}
	}
}

func TestIsProperList_Dotted(t *testing.T) {
	dotted := Cons(Int(1), Int(2))
	if IsProperList(dotted) {
		t.Fatalf("(1 . 2) is not a proper list")
	}
	if _, ok := SliceFromList(dotted); ok {
		t.Fatalf("SliceFromList should report a dotted tail as not ok")
	}
}

func TestIsProperList_Empty(t *testing.T) {
	if !IsProperList(Nil()) {
		t.Fatalf("nil is the empty proper list")
	}
	if ListLength(Nil()) != 0 {
		t.Fatalf("nil has length 0")
	}
}
