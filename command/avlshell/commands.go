// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/util"
	"github.com/bitmark-inc/avlmap/workload"
)

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "help", "h", "?":
		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version string\n\n")
		fmt.Printf("  shell                      (sh)     - interactive prompt on the terminal\n\n")
		fmt.Printf("  run                        (r)      - run the configured workload\n")
		fmt.Printf("                                        --watch to repeat whenever the file changes\n\n")
		fmt.Printf("  script FILE…               (s)      - execute command files\n\n")
		fmt.Printf("options:\n\n")
		fmt.Printf("  --config-file=FILE  -c FILE  Lua configuration file\n")
		fmt.Printf("  --verbose           -v       log to the console as well\n")
		fmt.Printf("  --version           -V       display version string\n")
		fmt.Printf("  --watch             -w       with run: watch the configuration file\n")
		fmt.Printf("\n")
		exitwithstatus.Exit(1)

	default:
		return false
	}
	return true
}

// commands that need configuration and logging
func processCommand(log *logger.L, program string, arguments []string, configurationFile string, watch bool, options *Configuration) error {

	command := arguments[0]
	arguments = arguments[1:]

	switch command {
	case "shell", "sh":
		return runShell(log, options)

	case "run", "r":
		if !watch {
			return runWorkload(log, options)
		}
		if "" == configurationFile {
			return fault.ErrMissingArgument
		}
		return watchWorkload(log, configurationFile, options)

	case "script", "s":
		if 0 == len(arguments) {
			return fault.ErrMissingArgument
		}
		return runScripts(log, arguments, options)

	default:
		return fault.ErrUnknownCommand
	}
}

func newTree(options *Configuration) (*avl.Tree, error) {
	policy, err := avl.ParsePolicy(options.Policy)
	if nil != err {
		return nil, err
	}
	return avl.NewPolicy(policy), nil
}

func runWorkload(log *logger.L, options *Configuration) error {
	report, err := workload.Run(log, options.Workload, os.Stdout)
	if nil != report {
		fmt.Printf("%s\n", report)
	}
	return err
}

// run once, then again after every change until the file is removed
// or the program is interrupted
func watchWorkload(log *logger.L, configurationFile string, options *Configuration) error {
	wlog := logger.New(fileWatcherLoggerPrefix)

	channel := newWatcherChannel()
	watcher, err := newFileWatcher(configurationFile, wlog, channel)
	if nil != err {
		return err
	}
	defer watcher.Stop()

	if err := watcher.Start(); nil != err {
		return err
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	for {
		if err := runWorkload(log, options); nil != err {
			log.Errorf("workload error: %s", err)
			fmt.Printf("workload error: %s\n", err)
		}

	reload:
		for {
			changed, err := watcher.wait(interrupt)
			if fault.ErrInterrupted == err {
				return nil
			}
			if !changed {
				log.Warn("configuration removed")
				return nil
			}

			newOptions, err := getConfiguration(configurationFile)
			if nil != err {
				log.Errorf("configuration reload error: %s", err)
				fmt.Printf("configuration reload error: %s\n", err)
				continue reload
			}
			options = newOptions
			break reload
		}
		log.Infof("configuration reloaded: %v", options.Workload)
	}
}

func runScripts(log *logger.L, fileNames []string, options *Configuration) error {
	tree, err := newTree(options)
	if nil != err {
		return err
	}

	in, err := workload.NewInterpreter(log, tree, options.KeyKind, os.Stdout)
	if nil != err {
		return err
	}

	for _, fileName := range fileNames {
		if !util.EnsureFileExists(fileName) {
			return fmt.Errorf("script: %q does not exist", fileName)
		}
		f, err := os.Open(fileName)
		if nil != err {
			return err
		}
		err = in.Process(fileName, f)
		f.Close()
		if nil != err {
			return err
		}
		log.Infof("script: %q  count: %d", fileName, tree.Count())
	}
	return nil
}
