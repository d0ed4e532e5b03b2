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

// Package scm implements the core of a small, Turing-complete Lisp: a
// reader that turns characters into tree-shaped values, an evaluator
// that reduces those values against a lexically scoped environment, and
// the handful of built-in primitives that make the language usable.
//
// Grammar read by the reader:
//
//	expr    := atom | "(" expr* ")" | "'" expr
//	atom    := integer | symbol
//	integer := "-"? digit+
//	symbol  := non-paren-non-ws-char+   (that is not an integer)
//	comment := ";" (any non-newline char)* newline
//
// The language has five runtime value kinds (Integer, Symbol, Pair,
// Primitive, Closure), four special forms (quote, if, lambda, defun) and
// ten built-in primitives (car, cdr, cons, +, -, *, /, eq, <, print),
// plus a small set of additive primitives (not, list, length, equal,
// help, stats), all installed by NewGlobalEnvWithBuiltins.
//
// Everything outside of this package — the REPL loop, the CLI, file
// loading — is a consumer of its entry points (ParseAllNamed,
// EvalTopLevel, Sprint and NewGlobalEnvWithBuiltins, the variants of
// Parse, Eval, Print and NewGlobalEnv that it uses); none of it is
// required to make the language Turing complete.
package scm
