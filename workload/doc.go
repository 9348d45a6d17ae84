// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package workload - drive an avl.Tree with generated or scripted
// operations and audit it
//
// Run performs a seeded random mix of insert, overwrite and remove,
// keeping a plain map as the reference model and auditing the tree
// against it at a configurable interval.  Interpreter executes one line
// command at a time and is shared by the interactive shell and by
// script files.
package workload
