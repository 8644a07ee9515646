// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cybrota/avlscope/avl"
	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"
)

// Shell executes tree commands against a single session.
type Shell struct {
	session Session
	cache   *cache.Cache
	opts    avl.RenderOptions
}

func NewShell(s Session, c *cache.Cache, opts avl.RenderOptions) *Shell {
	return &Shell{session: s, cache: c, opts: opts}
}

type shellCommand struct {
	names []string
	usage string
	desc  string
	run   func(sh *Shell, args []string, w io.Writer) error
}

var shellCommands []shellCommand

func init() {
	shellCommands = []shellCommand{
		{[]string{"insert", "add"}, "insert KEY...", "insert keys, duplicates are ignored", (*Shell).insert},
		{[]string{"delete", "del", "rm"}, "delete KEY...", "delete keys, missing keys are ignored", (*Shell).delete},
		{[]string{"contains", "has"}, "contains KEY", "report whether KEY is present", (*Shell).contains},
		{[]string{"list", "ls"}, "list", "print keys in order", (*Shell).list},
		{[]string{"print", "show"}, "print", "draw the tree", (*Shell).print},
		{[]string{"height"}, "height", "print the tree height", (*Shell).height},
		{[]string{"size", "len"}, "size", "print the number of keys", (*Shell).size},
		{[]string{"min"}, "min", "print the smallest key", (*Shell).min},
		{[]string{"max"}, "max", "print the largest key", (*Shell).max},
		{[]string{"verify"}, "verify", "check order, balance and heights", (*Shell).verify},
		{[]string{"clear"}, "clear", "remove every key", (*Shell).clear},
		{[]string{"help", "?"}, "help", "show this list", (*Shell).help},
	}
}

func isQuit(name string) bool {
	return name == "quit" || name == "exit"
}

// splitCommand splits a command line into words, honouring shell quoting.
func splitCommand(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %v", line, err)
	}
	return args, nil
}

// Exec runs one command line and writes its output to w. It reports quit
// when the line asks to leave the shell.
func (sh *Shell) Exec(line string, w io.Writer) (quit bool, err error) {
	args, err := splitCommand(line)
	if err != nil {
		return false, err
	}
	if len(args) == 0 {
		return false, nil
	}

	name := strings.ToLower(args[0])
	if isQuit(name) {
		return true, nil
	}
	for _, c := range shellCommands {
		for _, n := range c.names {
			if n == name {
				return false, c.run(sh, args[1:], w)
			}
		}
	}
	return false, fmt.Errorf("unknown command %q (try 'help')", args[0])
}

func needKeys(args []string, cmd string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s: at least one key required", cmd)
	}
	return nil
}

func (sh *Shell) insert(args []string, w io.Writer) error {
	if err := needKeys(args, "insert"); err != nil {
		return err
	}
	for _, a := range args {
		inserted, err := sh.session.Insert(a)
		if err != nil {
			return err
		}
		if inserted {
			fmt.Fprintf(w, "inserted %s\n", a)
		} else {
			fmt.Fprintf(w, "%s already present\n", a)
		}
	}
	return nil
}

func (sh *Shell) delete(args []string, w io.Writer) error {
	if err := needKeys(args, "delete"); err != nil {
		return err
	}
	for _, a := range args {
		removed, err := sh.session.Delete(a)
		if err != nil {
			return err
		}
		if removed {
			fmt.Fprintf(w, "deleted %s\n", a)
		} else {
			fmt.Fprintf(w, "%s not found\n", a)
		}
	}
	return nil
}

func (sh *Shell) contains(args []string, w io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("contains: exactly one key required")
	}
	ok, err := sh.session.Contains(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(w, ok)
	return nil
}

func (sh *Shell) list(_ []string, w io.Writer) error {
	fmt.Fprintf(w, "[%s]\n", strings.Join(sh.session.Keys(), ", "))
	return nil
}

func (sh *Shell) print(_ []string, w io.Writer) error {
	_, err := io.WriteString(w, sh.Render())
	return err
}

// Render draws the current tree, reusing a cached rendering when the tree
// has not changed shape.
func (sh *Shell) Render() string {
	if sh.cache == nil {
		return sh.session.Render(sh.opts)
	}
	return GetOrFillRender(sh.cache, sh.session, sh.opts)
}

func (sh *Shell) height(_ []string, w io.Writer) error {
	fmt.Fprintln(w, sh.session.Height())
	return nil
}

func (sh *Shell) size(_ []string, w io.Writer) error {
	fmt.Fprintln(w, sh.session.Len())
	return nil
}

func (sh *Shell) min(_ []string, w io.Writer) error {
	k, ok := sh.session.Min()
	if !ok {
		return fmt.Errorf("min: tree is empty")
	}
	fmt.Fprintln(w, k)
	return nil
}

func (sh *Shell) max(_ []string, w io.Writer) error {
	k, ok := sh.session.Max()
	if !ok {
		return fmt.Errorf("max: tree is empty")
	}
	fmt.Fprintln(w, k)
	return nil
}

func (sh *Shell) verify(_ []string, w io.Writer) error {
	if err := sh.session.Verify(); err != nil {
		return err
	}
	fmt.Fprintln(w, "ok")
	return nil
}

func (sh *Shell) clear(_ []string, w io.Writer) error {
	sh.session.Clear()
	fmt.Fprintln(w, "cleared")
	return nil
}

func (sh *Shell) help(_ []string, w io.Writer) error {
	fmt.Fprintf(w, "Keys are %s values.\n", sh.session.Kind())
	for _, c := range shellCommands {
		fmt.Fprintf(w, "  %-16s %s\n", c.usage, c.desc)
	}
	fmt.Fprintf(w, "  %-16s %s\n", "quit", "leave the shell")
	return nil
}
