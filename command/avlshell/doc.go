// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlshell - exercise the avl ordered map
//
// commands:
//
//   avlshell [-c FILE] shell           interactive prompt on the terminal
//   avlshell -c FILE run [--watch]     run the configured workload
//   avlshell [-c FILE] script FILE…    execute command files
//   avlshell version|help
//
// see avlshell.conf.sample for the configuration file format
package main
