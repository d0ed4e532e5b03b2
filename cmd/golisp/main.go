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

// Command golisp is the REPL, script runner and evaluator entry point
// for the golisp Lisp core.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tinylisp-go/golisp/internal/console"
	"github.com/tinylisp-go/golisp/scm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "golisp",
		Short: "golisp is a small embeddable tree-walking Lisp",
		Long:  "golisp is a small embeddable tree-walking Lisp.\nWith no subcommand it starts an interactive prompt.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return console.Repl(scm.NewGlobalEnvWithBuiltins())
		},
	}
	root.AddCommand(newEvalCmd(), newRunCmd())
	return root
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR",
		Short: "evaluate a single expression and print its result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env := scm.NewGlobalEnvWithBuiltins()
			for _, expr := range scm.ParseAllNamed("argv", args[0]) {
				result := scm.EvalTopLevel(expr, env)
				fmt.Println(scm.Sprint(result))
			}
			return nil
		},
	}
}

func newRunCmd() *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "evaluate every top-level form in a script file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !watch {
				return console.LoadFile(scm.NewGlobalEnvWithBuiltins(), path)
			}
			stop := make(chan struct{})
			defer close(stop)
			return console.Watch(path, scm.NewGlobalEnvWithBuiltins, stop)
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "re-run the script whenever it changes on disk")
	return cmd
}
