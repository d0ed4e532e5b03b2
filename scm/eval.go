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

// Eval reduces expr in env, implementing the five rules of spec.md
// §4.4. Special forms (quote, if, lambda, defun) are unshadowable — the
// evaluator recognizes them by the head symbol's name before consulting
// any binding, per the recommended policy in spec.md §9 — and receive
// their arguments unevaluated; every other application evaluates the
// operator and each argument left-to-right before applying.
func Eval(expr Value, env *Env) Value {
	switch expr.Kind() {
	case KindInt, KindPrimitive, KindClosure:
		return expr
	case KindSymbol:
		return evalSymbol(expr, env)
	case KindPair:
		return evalPair(expr, env)
	default: // KindNil
		return expr
	}
}

func evalSymbol(expr Value, env *Env) Value {
	name := expr.SymbolName()
	if name == "nil" {
		return nilValue
	}
	if name == "t" {
		return tValue
	}
	if v, ok := Lookup(env, name); ok {
		return v
	}
	diagnostic("Undefined symbol: %s", name)
	return nilValue
}

func evalPair(expr Value, env *Env) Value {
	op := expr.Head()
	args := expr.Tail()
	if op.IsSymbol() {
		switch op.SymbolName() {
		case "quote":
			return evalQuote(args)
		case "if":
			return evalIf(args, env)
		case "lambda":
			return evalLambda(args, env)
		case "defun":
			return evalDefun(args, env)
		}
	}
	fn := Eval(op, env)
	argv, _ := SliceFromList(args)
	vals := make([]Value, len(argv))
	for i, a := range argv {
		vals[i] = Eval(a, env)
	}
	return Apply(fn, env, vals)
}

// evalQuote implements (quote x) -> x, unevaluated. Extra elements are
// ignored, per spec.md §4.4.
func evalQuote(args Value) Value {
	return args.Head()
}

// evalIf implements (if c t e): only one branch is ever evaluated.
func evalIf(args Value, env *Env) Value {
	cond := Eval(args.Head(), env)
	rest := args.Tail()
	if cond.Truthy() {
		return Eval(rest.Head(), env)
	}
	elseBranch := rest.Tail()
	if elseBranch.IsPair() {
		return Eval(elseBranch.Head(), env)
	}
	return nilValue
}

// evalLambda implements (lambda params body): a Closure capturing env.
func evalLambda(args Value, env *Env) Value {
	params := args.Head()
	body := args.Tail().Head()
	return NewClosure(params, body, env)
}

// evalDefun implements (defun name params body): the closure's captured
// environment is the global environment (via GlobalOf, sharing the same
// mutable cell), so that recursive self-reference resolves once the
// binding below is installed. Returns the symbol name, per spec.md
// §4.4.
func evalDefun(args Value, env *Env) Value {
	name := args.Head()
	rest := args.Tail()
	params := rest.Head()
	body := rest.Tail().Head()
	closure := NewClosure(params, body, GlobalOf(env))
	DefineGlobal(env, name.SymbolName(), closure)
	return name
}

// Apply invokes fn — a Primitive or Closure — with already-evaluated
// args. callerEnv is the environment the arguments were evaluated in;
// Primitives receive it verbatim (spec.md §4.5's "an already-evaluated
// argument list and the current environment"). Applying anything else
// emits "Not a function" and yields nil.
func Apply(fn Value, callerEnv *Env, args []Value) Value {
	switch fn.Kind() {
	case KindPrimitive:
		return fn.PrimitiveValue().Fn(callerEnv, args)
	case KindClosure:
		return applyClosure(fn.ClosureValue(), args)
	default:
		diagnostic("Not a function")
		return nilValue
	}
}

// applyClosure zips Params with args onto the closure's captured
// environment. If the lists differ in length, binding stops at the
// shorter one: surplus parameters are left unbound and surplus
// arguments are discarded, per spec.md §4.4/§9 (no arity diagnostic).
func applyClosure(c *Closure, args []Value) Value {
	env := c.Env
	params := c.Params
	for i := 0; i < len(args) && params.IsPair(); i++ {
		p := params.Head()
		env = Define(env, p.SymbolName(), args[i])
		params = params.Tail()
	}
	return Eval(c.Body, env)
}
