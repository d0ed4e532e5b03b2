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

package console

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/tinylisp-go/golisp/scm"
)

// LoadFile reads path, parses every top-level form in it and evaluates
// each in turn against env. Evaluation errors are diagnostics (written
// to scm.Stderr by Eval/the primitives) and do not stop the load, nor do
// parse errors (diagnosed by the reader); only a failure to read the
// file itself aborts it and is returned to the caller.
func LoadFile(env *scm.Env, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("golisp: %w", err)
	}
	for _, expr := range scm.ParseAllNamed(path, string(data)) {
		scm.EvalTopLevel(expr, env)
	}
	return nil
}

// Watch loads path once, then watches it for writes and reloads it into
// a fresh environment produced by newEnv each time it changes, until
// stop is closed. Grounded on the fsnotify idiom of watching a file's
// containing directory rather than the file itself, so that editors
// which save via rename-into-place are still observed.
func Watch(path string, newEnv func() *scm.Env, stop <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("golisp: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("golisp: %w", err)
	}

	reload := func() {
		env := newEnv()
		if err := LoadFile(env, path); err != nil {
			fmt.Fprintln(scm.Stderr, err)
			return
		}
		fmt.Fprintf(os.Stdout, "reloaded %s\n", path)
	}

	reload()

	for {
		select {
		case <-stop:
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				reload()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(scm.Stderr, err)
		}
	}
}
