// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
)

const (
	logDirectory = "log"
	logFileName  = "test.log"
)

func setupLogger(t *testing.T) {
	removeTestFiles()
	_ = os.Mkdir(logDirectory, 0770)
	err := logger.Initialise(logger.Configuration{
		Directory: logDirectory,
		File:      logFileName,
		Size:      50000,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	if nil != err {
		t.Fatalf("logger initialise error: %s", err)
	}
}

func teardown() {
	logger.Finalise()
	removeTestFiles()
}

func removeTestFiles() {
	os.RemoveAll(logDirectory)
}

// directory holding a configuration file with the given content
func writeConfiguration(t *testing.T, content string) (string, string) {
	dir, err := ioutil.TempDir("", "avlshell")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := dir + "/test.conf"
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return dir, fileName
}
