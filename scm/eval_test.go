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
	"bytes"
	"testing"
)

func run(t *testing.T, env *Env, src string) Value {
	t.Helper()
	return Eval(Parse(src), env)
}

func TestSelfEvaluation_Integer(t *testing.T) {
	env := NewGlobalEnvWithBuiltins()
	got := run(t, env, "42")
	if !got.IsInt() || got.Int64() != 42 {
		t.Fatalf("eval(42) should be 42, got %s", Sprint(got))
	}
}

func TestQuoteIdentity_UnboundSymbolInside(t *testing.T) {
	env := NewGlobalEnvWithBuiltins()
	got := run(t, env, "'(a b)")
	want := ListFromSlice([]Value{Symbol("a"), Symbol("b")})
	if !Equal(got, want) {
		t.Fatalf("'(a b) should evaluate to the list (a b), got %s", Sprint(got))
	}
}

func TestIfExclusivity_UntakenBranchNotEvaluated(t *testing.T) {
	env := NewGlobalEnvWithBuiltins()
	var out bytes.Buffer
	old := Stdout
	Stdout = &out
	defer func() { Stdout = old }()

	run(t, env, "(if t (print 1) (print 2))")
	if out.String() != "1\n" {
		t.Fatalf("only the taken branch's print should fire, got %q", out.String())
	}
}

func TestClosureCapture(t *testing.T) {
	env := NewGlobalEnvWithBuiltins()
	got := run(t, env, "((lambda (x) (lambda (y) (+ x y))) 3)")
	if !got.IsClosure() {
		t.Fatalf("expected a closure, got %s", Sprint(got))
	}
	inner := Apply(got, env, []Value{Int(4)})
	if !inner.IsInt() || inner.Int64() != 7 {
		t.Fatalf("inner lambda should see x=3 and yield 7, got %s", Sprint(inner))
	}
}

func TestShadowing(t *testing.T) {
	env := NewGlobalEnvWithBuiltins()
	DefineGlobal(env, "x", Int(100))
	got := run(t, env, "((lambda (x) x) 1)")
	if got.Int64() != 1 {
		t.Fatalf("inner parameter should shadow the outer binding, got %s", Sprint(got))
	}
}

func TestRecursiveDefun_Factorial(t *testing.T) {
	env := NewGlobalEnvWithBuiltins()
	run(t, env, "(defun fact (n) (if (< n 2) 1 (* n (fact (- n 1)))))")
	got := run(t, env, "(fact 5)")
	if got.Int64() != 120 {
		t.Fatalf("(fact 5) should be 120, got %s", Sprint(got))
	}
}

func TestListPrimitives(t *testing.T) {
	env := NewGlobalEnvWithBuiltins()
	if got := run(t, env, "(car (cons 1 2))"); got.Int64() != 1 {
		t.Fatalf("(car (cons 1 2)) should be 1, got %s", Sprint(got))
	}
	if got := run(t, env, "(cdr (cons 1 2))"); got.Int64() != 2 {
		t.Fatalf("(cdr (cons 1 2)) should be 2, got %s", Sprint(got))
	}
	var errs bytes.Buffer
	old := Stderr
	Stderr = &errs
	defer func() { Stderr = old }()
	got := run(t, env, "(car nil)")
	if !got.IsNil() {
		t.Fatalf("(car nil) should yield nil, got %s", Sprint(got))
	}
	if errs.Len() == 0 {
		t.Fatalf("(car nil) should emit a diagnostic")
	}
}

func TestArithmeticIdentities(t *testing.T) {
	env := NewGlobalEnvWithBuiltins()
	cases := map[string]int64{
		"(+)":        0,
		"(*)":        1,
		"(- 5)":      -5,
		"(/ 10 2 5)": 1,
	}
	for src, want := range cases {
		if got := run(t, env, src); got.Int64() != want {
			t.Fatalf("%s should be %d, got %s", src, want, Sprint(got))
		}
	}
}

func TestComparisons(t *testing.T) {
	env := NewGlobalEnvWithBuiltins()
	cases := map[string]bool{
		"(eq 1 1)":   true,
		"(eq 1 2)":   false,
		"(eq 'a 'a)": true,
		"(< 1 2)":    true,
		"(< 2 1)":    false,
	}
	for src, want := range cases {
		got := run(t, env, src)
		if got.Truthy() != want {
			t.Fatalf("%s truthiness mismatch: got %s", src, Sprint(got))
		}
	}
}

func TestEndToEnd_Scenarios(t *testing.T) {
	env := NewGlobalEnvWithBuiltins()
	scenarios := []struct{ src, want string }{
		{"(+ 1 2 3)", "6"},
		{"(if (< 1 2) 'yes 'no)", "yes"},
		{"(cons 1 (cons 2 (cons 3 nil)))", "(1 2 3)"},
		{"(cons 1 2)", "(1 . 2)"},
		{"((lambda (x) (* x x)) 7)", "49"},
	}
	for _, sc := range scenarios {
		got := run(t, env, sc.src)
		if Sprint(got) != sc.want {
			t.Fatalf("%s should print %q, got %q", sc.src, sc.want, Sprint(got))
		}
	}

	name := run(t, env, "(defun add (a b) (+ a b))")
	if Sprint(name) != "add" {
		t.Fatalf("defun should return the defined symbol, got %s", Sprint(name))
	}
	sum := run(t, env, "(add 10 32)")
	if sum.Int64() != 42 {
		t.Fatalf("(add 10 32) should be 42, got %s", Sprint(sum))
	}
}

func TestApply_NonCallable(t *testing.T) {
	env := NewGlobalEnvWithBuiltins()
	var errs bytes.Buffer
	old := Stderr
	Stderr = &errs
	defer func() { Stderr = old }()
	got := run(t, env, "(1 2 3)")
	if !got.IsNil() {
		t.Fatalf("applying a non-callable should yield nil, got %s", Sprint(got))
	}
	if errs.Len() == 0 {
		t.Fatalf("applying a non-callable should emit a diagnostic")
	}
}

func TestApply_ArityMismatchTruncates(t *testing.T) {
	env := NewGlobalEnvWithBuiltins()
	// surplus argument discarded, no diagnostic
	got := run(t, env, "((lambda (x) x) 1 2 3)")
	if got.Int64() != 1 {
		t.Fatalf("surplus arguments should be discarded silently, got %s", Sprint(got))
	}
}
