// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// links to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access to the whole tree.  Rotations and node swaps touch
//       several nodes at once and cannot be locked piecemeal.
//
// Nodes are kept in a per-tree arena and refer to each other by
// index, slot zero being the absent node.  Deleted slots are kept on
// a free list and reused by later inserts.
//
// Delete of a node with two children exchanges the node's position
// with its in-order predecessor rather than copying data, so a key
// keeps the same node for as long as it is in the tree.  The
// balancing policy is chosen when the tree is created: AVL (the
// default) or Unbalanced, which leaves the plain binary search tree
// as built and is used to validate the auditors.
//
// This version allows for data associated with key, which can be
// overwritten by an insert with the same key.
package avl
