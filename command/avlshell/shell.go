// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/avlmap/workload"
)

// interactive prompt on the controlling terminal
func runShell(log *logger.L, options *Configuration) error {
	ttyFd, err := os.OpenFile("/dev/tty", os.O_RDWR, os.ModePerm)
	if err != nil {
		return err
	}
	defer ttyFd.Close()

	oldState, err := terminal.MakeRaw(int(ttyFd.Fd()))
	if err != nil {
		return err
	}
	defer terminal.Restore(int(ttyFd.Fd()), oldState)

	console := terminal.NewTerminal(ttyFd, fmt.Sprintf("avl(%s)> ", options.KeyKind))

	tree, err := newTree(options)
	if nil != err {
		return err
	}
	// the terminal converts LF to CR LF on output
	out := console
	in, err := workload.NewInterpreter(log, tree, options.KeyKind, out)
	if nil != err {
		return err
	}

	fmt.Fprintf(out, "policy: %s  keys: %s  type \"help\" for commands, \"quit\" to exit\n", tree.Policy(), options.KeyKind)

	for {
		line, err := console.ReadLine()
		if io.EOF == err {
			return nil
		}
		if nil != err {
			return err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "quit", "exit", "q":
			return nil
		}

		if err := in.Execute(line); nil != err {
			log.Debugf("command: %q  error: %s", line, err)
			fmt.Fprintf(out, "error: %s\n", err)
		}
	}
}
