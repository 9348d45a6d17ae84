// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/item"
)

// Interpreter - execute line commands against a single tree
type Interpreter struct {
	log  *logger.L
	tree *avl.Tree
	kind string
	out  io.Writer
}

type command struct {
	name        string
	arguments   string
	minimum     int
	description string
	run         func(in *Interpreter, arguments []string) error
}

var commands []command

func init() {
	commands = []command{
		{"insert", "KEY VALUE…", 2, "add or overwrite a key", (*Interpreter).insert},
		{"remove", "KEY", 1, "delete a key if present", (*Interpreter).remove},
		{"find", "KEY", 1, "show a key and its value", (*Interpreter).find},
		{"at", "KEY", 1, "show the value of an existing key", (*Interpreter).at},
		{"assign", "KEY VALUE…", 2, "replace the value of an existing key", (*Interpreter).assign},
		{"list", "", 0, "all keys in ascending order", (*Interpreter).list},
		{"rlist", "", 0, "all keys in descending order", (*Interpreter).rlist},
		{"print", "", 0, "draw the tree", (*Interpreter).print},
		{"check", "", 0, "audit the tree structure", (*Interpreter).check},
		{"count", "", 0, "number of keys", (*Interpreter).count},
		{"height", "", 0, "height of the tree", (*Interpreter).height},
		{"clear", "", 0, "remove all keys", (*Interpreter).clear},
		{"help", "", 0, "this message", (*Interpreter).help},
	}
}

// NewInterpreter - create an interpreter for keys of the given kind
func NewInterpreter(log *logger.L, tree *avl.Tree, kind string, out io.Writer) (*Interpreter, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if !item.ValidKind(kind) {
		return nil, fault.ErrInvalidKeyKind
	}
	if nil == tree {
		tree = avl.New()
	}
	return &Interpreter{
		log:  log,
		tree: tree,
		kind: kind,
		out:  out,
	}, nil
}

// Tree - the tree being operated on
func (in *Interpreter) Tree() *avl.Tree {
	return in.tree
}

// Execute - run one command line, blank lines and lines starting
// with '#' are ignored
func (in *Interpreter) Execute(line string) error {
	fields := strings.Fields(line)
	if 0 == len(fields) || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	name := strings.ToLower(fields[0])
	arguments := fields[1:]
	for _, c := range commands {
		if c.name != name {
			continue
		}
		if len(arguments) < c.minimum {
			return fault.ErrMissingArgument
		}
		in.log.Debugf("command: %s  arguments: %q", name, arguments)
		return c.run(in, arguments)
	}
	return fault.ErrUnknownCommand
}

// Process - execute every line from a reader, stop at the first error
func (in *Interpreter) Process(name string, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n += 1
		if err := in.Execute(scanner.Text()); nil != err {
			in.log.Errorf("%s:%d: error: %s", name, n, err)
			return fmt.Errorf("%s:%d: %s", name, n, err)
		}
	}
	return scanner.Err()
}

func (in *Interpreter) parse(text string) (avl.Item, error) {
	return item.Parse(in.kind, text)
}

func (in *Interpreter) insert(arguments []string) error {
	key, err := in.parse(arguments[0])
	if nil != err {
		return err
	}
	in.tree.Insert(key, strings.Join(arguments[1:], " "))
	return nil
}

func (in *Interpreter) remove(arguments []string) error {
	key, err := in.parse(arguments[0])
	if nil != err {
		return err
	}
	in.tree.Remove(key)
	return nil
}

func (in *Interpreter) find(arguments []string) error {
	key, err := in.parse(arguments[0])
	if nil != err {
		return err
	}
	it := in.tree.Find(key)
	if it.IsEnd() {
		fmt.Fprintf(in.out, "%v: not found\n", key)
		return nil
	}
	fmt.Fprintf(in.out, "%v → %v  depth: %d\n", it.Key(), it.Value(), it.Depth())
	return nil
}

func (in *Interpreter) at(arguments []string) error {
	key, err := in.parse(arguments[0])
	if nil != err {
		return err
	}
	value, err := in.tree.At(key)
	if nil != err {
		return err
	}
	fmt.Fprintf(in.out, "%v\n", value)
	return nil
}

func (in *Interpreter) assign(arguments []string) error {
	key, err := in.parse(arguments[0])
	if nil != err {
		return err
	}
	return in.tree.Assign(key, strings.Join(arguments[1:], " "))
}

func (in *Interpreter) list(arguments []string) error {
	for it := in.tree.First(); !it.IsEnd(); it = it.Next() {
		fmt.Fprintf(in.out, "%v → %v\n", it.Key(), it.Value())
	}
	return nil
}

func (in *Interpreter) rlist(arguments []string) error {
	for it := in.tree.Last(); !it.IsEnd(); it = it.Prev() {
		fmt.Fprintf(in.out, "%v → %v\n", it.Key(), it.Value())
	}
	return nil
}

func (in *Interpreter) print(arguments []string) error {
	depth := in.tree.Fprint(in.out, true)
	fmt.Fprintf(in.out, "depth: %d\n", depth)
	return nil
}

func (in *Interpreter) check(arguments []string) error {
	if err := Audit(in.tree); nil != err {
		return err
	}
	fmt.Fprintf(in.out, "ok\n")
	return nil
}

func (in *Interpreter) count(arguments []string) error {
	fmt.Fprintf(in.out, "%d\n", in.tree.Count())
	return nil
}

func (in *Interpreter) height(arguments []string) error {
	fmt.Fprintf(in.out, "%d\n", in.tree.Height())
	return nil
}

func (in *Interpreter) clear(arguments []string) error {
	in.tree.Clear()
	return nil
}

func (in *Interpreter) help(arguments []string) error {
	for _, c := range commands {
		fmt.Fprintf(in.out, "  %-8s %-12s %s\n", c.name, c.arguments, c.description)
	}
	return nil
}
