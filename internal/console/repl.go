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

// Package console implements the interactive prompt, file loading, and
// watch-and-reload surfaces on top of the scm package.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/tinylisp-go/golisp/scm"
)

const (
	newPrompt    = "\033[32m>\033[0m "
	contPrompt   = "  "
	resultPrompt = "\033[31m=\033[0m "
)

// Repl runs the read-eval-print loop against env until the user presses
// ^D, or ^C while no continuation input is pending (^C during a
// multi-line expression discards that expression instead). Grounded on the teacher's Repl
// (scm/prompt.go: readline config, colored prompts), but the teacher's
// per-line recover-on-"expecting matching )" trick is replaced with an
// explicit paren-depth count across accumulated lines — this language's
// reader reports malformed input as a diagnostic-and-nil rather than a
// panic, so there is nothing to recover from here.
func Repl(env *scm.Env) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newPrompt,
		HistoryFile:       ".golisp-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer l.Close()
	l.CaptureExitSignal()

	var pending strings.Builder
	for {
		line, rerr := l.Readline()
		if rerr == readline.ErrInterrupt {
			if pending.Len() == 0 {
				break
			}
			pending.Reset()
			l.SetPrompt(newPrompt)
			continue
		} else if rerr == io.EOF {
			break
		} else if rerr != nil {
			return rerr
		}

		pending.WriteString(line)
		pending.WriteByte('\n')

		if strings.TrimSpace(pending.String()) == "" {
			pending.Reset()
			continue
		}

		depth := parenDepth(pending.String())
		if depth > 0 {
			l.SetPrompt(contPrompt)
			continue
		}

		text := pending.String()
		pending.Reset()
		l.SetPrompt(newPrompt)

		if depth < 0 {
			fmt.Fprintln(scm.Stderr, "unexpected )")
			continue
		}

		for _, expr := range scm.ParseAllNamed("repl", text) {
			result := scm.EvalTopLevel(expr, env)
			fmt.Print(resultPrompt)
			fmt.Println(scm.Sprint(result))
		}
	}
	fmt.Fprintln(os.Stdout)
	return nil
}

// parenDepth counts unmatched "(" across s, skipping ";"-to-end-of-line
// comments, exactly the way the continuation check in the original
// tinylisp REPL loop does. A positive result means more input is
// expected; negative means s contains a stray ")".
func parenDepth(s string) int {
	depth := 0
	inComment := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			inComment = false
		case ';':
			inComment = true
		case '(':
			if !inComment {
				depth++
			}
		case ')':
			if !inComment {
				depth--
			}
		}
	}
	return depth
}
