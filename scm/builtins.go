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

	units "github.com/docker/go-units"
)

// NewGlobalEnvWithBuiltins returns a fresh global environment with the
// primitives of spec.md §4.5, plus the small set of additive primitives
// documented in SPEC_FULL.md (not, list, length, equal, and the
// introspection primitives help and stats), installed via
// Declare — grounded on scm/list.go and scm/declare.go's Declare-driven
// registration idiom.
func NewGlobalEnvWithBuiltins() *Env {
	env := NewGlobalEnv()

	Declare(env, &Declaration{
		Name: "car", Desc: "returns the head of a pair; nil (with a diagnostic) if the argument is not a pair.",
		MinParameter: 1, MaxParameter: 1, Fn: biCar,
	})
	Declare(env, &Declaration{
		Name: "cdr", Desc: "returns the tail of a pair; nil (with a diagnostic) if the argument is not a pair.",
		MinParameter: 1, MaxParameter: 1, Fn: biCdr,
	})
	Declare(env, &Declaration{
		Name: "cons", Desc: "returns a new pair (a . b).",
		MinParameter: 2, MaxParameter: 2, Fn: biCons,
	})
	Declare(env, &Declaration{
		Name: "+", Desc: "sum of its integer arguments; 0 with no arguments.",
		MinParameter: 0, MaxParameter: -1, Fn: biAdd,
	})
	Declare(env, &Declaration{
		Name: "-", Desc: "no arguments: 0. one argument: its negation. two or more: left-fold subtraction.",
		MinParameter: 0, MaxParameter: -1, Fn: biSub,
	})
	Declare(env, &Declaration{
		Name: "*", Desc: "product of its integer arguments; 1 with no arguments.",
		MinParameter: 0, MaxParameter: -1, Fn: biMul,
	})
	Declare(env, &Declaration{
		Name: "/", Desc: "left-fold integer division, truncating toward zero.",
		MinParameter: 1, MaxParameter: -1, Fn: biDiv,
	})
	Declare(env, &Declaration{
		Name: "eq", Desc: "t if both arguments are equal integers, equal-named symbols, or identical objects; else nil.",
		MinParameter: 2, MaxParameter: 2, Fn: biEq,
	})
	Declare(env, &Declaration{
		Name: "<", Desc: "t if both arguments are integers and the first is strictly less than the second; else nil.",
		MinParameter: 2, MaxParameter: 2, Fn: biLess,
	})
	Declare(env, &Declaration{
		Name: "print", Desc: "prints each argument followed by a newline; returns nil.",
		MinParameter: 0, MaxParameter: -1, Fn: biPrint,
	})
	Declare(env, &Declaration{
		Name: "not", Desc: "t if the argument is nil; else nil.",
		MinParameter: 1, MaxParameter: 1, Fn: biNot,
	})
	Declare(env, &Declaration{
		Name: "list", Desc: "builds a proper list out of its (already evaluated) arguments.",
		MinParameter: 0, MaxParameter: -1, Fn: biList,
	})
	Declare(env, &Declaration{
		Name: "length", Desc: "number of elements of a proper list; 0 (with a diagnostic) for a non-list.",
		MinParameter: 1, MaxParameter: 1, Fn: biLength,
	})
	Declare(env, &Declaration{
		Name: "equal", Desc: "t if both arguments are structurally equal (pairs compared recursively); else nil.",
		MinParameter: 2, MaxParameter: 2, Fn: biEqual,
	})
	Declare(env, &Declaration{
		Name: "help", Desc: "with no argument, lists every declared primitive.\nWith a symbol argument, prints that primitive's full description.",
		MinParameter: 0, MaxParameter: 1, Fn: biHelp,
	})
	Declare(env, &Declaration{
		Name: "stats", Desc: "reports the number of bindings installed in the global environment and an approximation of the memory they occupy.",
		MinParameter: 0, MaxParameter: 0, Fn: biStats,
	})

	return env
}

func arityOK(name string, args []Value, min, max int) bool {
	if len(args) < min || (max >= 0 && len(args) > max) {
		diagnostic("%s: wrong number of arguments", name)
		return false
	}
	return true
}

func biCar(_ *Env, args []Value) Value {
	if !arityOK("car", args, 1, 1) {
		return nilValue
	}
	if !args[0].IsPair() {
		diagnostic("car: not a pair")
		return nilValue
	}
	return args[0].Head()
}

func biCdr(_ *Env, args []Value) Value {
	if !arityOK("cdr", args, 1, 1) {
		return nilValue
	}
	if !args[0].IsPair() {
		diagnostic("cdr: not a pair")
		return nilValue
	}
	return args[0].Tail()
}

func biCons(_ *Env, args []Value) Value {
	if !arityOK("cons", args, 2, 2) {
		return nilValue
	}
	return Cons(args[0], args[1])
}

func biAdd(_ *Env, args []Value) Value {
	var sum int64
	for _, a := range args {
		if !a.IsInt() {
			diagnostic("+: expected integer")
			return Int(0)
		}
		sum += a.Int64()
	}
	return Int(sum)
}

func biSub(_ *Env, args []Value) Value {
	if len(args) == 0 {
		return Int(0)
	}
	if !args[0].IsInt() {
		diagnostic("-: expected integer")
		return Int(0)
	}
	if len(args) == 1 {
		return Int(-args[0].Int64())
	}
	result := args[0].Int64()
	for _, a := range args[1:] {
		if !a.IsInt() {
			diagnostic("-: expected integer")
			return Int(0)
		}
		result -= a.Int64()
	}
	return Int(result)
}

func biMul(_ *Env, args []Value) Value {
	product := int64(1)
	for _, a := range args {
		if !a.IsInt() {
			diagnostic("*: expected integer")
			return Int(1)
		}
		product *= a.Int64()
	}
	return Int(product)
}

func biDiv(_ *Env, args []Value) Value {
	if len(args) == 0 {
		diagnostic("/: wrong number of arguments")
		return nilValue
	}
	if !args[0].IsInt() {
		diagnostic("/: expected integer")
		return Int(0)
	}
	result := args[0].Int64()
	for _, a := range args[1:] {
		if !a.IsInt() || a.Int64() == 0 {
			diagnostic("/: division by zero or non-integer")
			return Int(0)
		}
		result /= a.Int64()
	}
	return Int(result)
}

func biEq(_ *Env, args []Value) Value {
	if !arityOK("eq", args, 2, 2) {
		return nilValue
	}
	return Bool(Eq(args[0], args[1]))
}

func biLess(_ *Env, args []Value) Value {
	if !arityOK("<", args, 2, 2) {
		return nilValue
	}
	if !args[0].IsInt() || !args[1].IsInt() {
		return nilValue
	}
	return Bool(args[0].Int64() < args[1].Int64())
}

func biPrint(_ *Env, args []Value) Value {
	for _, a := range args {
		fmt.Fprintln(Stdout, Sprint(a))
	}
	return nilValue
}

func biNot(_ *Env, args []Value) Value {
	if !arityOK("not", args, 1, 1) {
		return nilValue
	}
	return Bool(args[0].IsNil())
}

func biList(_ *Env, args []Value) Value {
	return ListFromSlice(args)
}

func biLength(_ *Env, args []Value) Value {
	if !arityOK("length", args, 1, 1) {
		return nilValue
	}
	if !IsProperList(args[0]) {
		diagnostic("length: expected list")
		return Int(0)
	}
	return Int(ListLength(args[0]))
}

func biEqual(_ *Env, args []Value) Value {
	if !arityOK("equal", args, 2, 2) {
		return nilValue
	}
	return Bool(Equal(args[0], args[1]))
}

func biHelp(_ *Env, args []Value) Value {
	if len(args) == 0 {
		fmt.Fprint(Stdout, Help(""))
		return nilValue
	}
	if !args[0].IsSymbol() {
		diagnostic("help: expected symbol")
		return nilValue
	}
	fmt.Fprint(Stdout, Help(args[0].SymbolName()))
	return nilValue
}

func biStats(env *Env, _ []Value) Value {
	n := 0
	for b := env.glob.head; b != nil; b = b.next {
		n++
	}
	const approxBytesPerBinding = 64
	fmt.Fprintf(Stdout, "global bindings: %d (~%s)\n", n, units.HumanSize(float64(n*approxBytesPerBinding)))
	return nilValue
}
