// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/configuration"
	"github.com/bitmark-inc/avlmap/item"
	"github.com/bitmark-inc/avlmap/util"
	"github.com/bitmark-inc/avlmap/workload"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "avlshell.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

var defaultLogLevels = LoglevelMap{
	logger.DefaultTag: "critical",
}

// Configuration - everything read from the Lua file
type Configuration struct {
	DataDirectory string                 `gluamapper:"data_directory" json:"data_directory"`
	KeyKind       string                 `gluamapper:"key_kind" json:"key_kind"`
	Policy        string                 `gluamapper:"policy" json:"policy"`
	Workload      workload.Configuration `gluamapper:"workload" json:"workload"`
	Logging       logger.Configuration   `gluamapper:"logging" json:"logging"`
}

func defaultConfiguration(dataDirectory string) *Configuration {
	return &Configuration{
		DataDirectory: dataDirectory,
		KeyKind:       item.KindString,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}
}

// will read decode and verify the configuration, an empty file name
// gives the defaults relative to the current directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	if "" == configurationFileName {
		dataDirectory, err := os.Getwd()
		if nil != err {
			return nil, err
		}
		options := defaultConfiguration(dataDirectory)
		return options, verify(options)
	}

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration(".")

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)
	}

	return options, verify(options)
}

// check directories and nested settings
func verify(options *Configuration) error {

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return err
	} else if !fileInfo.IsDir() {
		return fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)

	// the workload inherits the shell's key settings unless it has its own
	if "" == options.Workload.KeyKind {
		options.Workload.KeyKind = options.KeyKind
	}
	if "" == options.Workload.Policy {
		options.Workload.Policy = options.Policy
	}
	if !item.ValidKind(options.KeyKind) {
		return fmt.Errorf("key kind: %q is not supported", options.KeyKind)
	}
	return options.Workload.Validate()
}
