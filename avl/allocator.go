// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - a key item must implement the Compare function
//
// Compare returns a negative number, zero or a positive number when
// the receiver is less than, equal to or greater than the argument.
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// index of a node within its tree's arena
type nodeIndex int32

// the absent node, slot zero of every arena is never used
const nilNode nodeIndex = 0

// a node in the tree
type node struct {
	left    nodeIndex   // left sub-tree
	right   nodeIndex   // right sub-tree
	up      nodeIndex   // points to parent node, or next free slot when reclaimed
	key     Item        // key part for ordering
	value   interface{} // value part for data storage
	balance int8        // -1, 0, +1
}

// storage for the nodes of one tree
type arena struct {
	nodes     []node    // slot zero is the absent node
	pool      nodeIndex // linked list of reclaimed nodes
	freeNodes int       // number of nodes in the pool
}

// access a node, the pointer is only valid until the next allocation
func (a *arena) node(n nodeIndex) *node {
	return &a.nodes[n]
}

// allocate a new node, reuses reclaimed nodes if any are available
func (a *arena) newNode(key Item, value interface{}, up nodeIndex) nodeIndex {
	if 0 == len(a.nodes) {
		a.nodes = make([]node, 1, 16)
	}
	if nilNode == a.pool {
		if 0 != a.freeNodes {
			panic("pool corrupt")
		}
		a.nodes = append(a.nodes, node{
			key:   key,
			value: value,
			up:    up,
		})
		return nodeIndex(len(a.nodes) - 1)
	}
	n := a.pool
	p := &a.nodes[n]
	a.pool = p.up
	*p = node{
		key:   key,
		value: value,
		up:    up,
	}
	a.freeNodes -= 1
	return n
}

// reclaim a node and keep it in the pool
func (a *arena) freeNode(n nodeIndex) {
	a.nodes[n] = node{
		up: a.pool, // use as free list pointer
	}
	a.pool = n
	a.freeNodes += 1
}

// drop every slot, all nodes must already be released
func (a *arena) reset() {
	a.nodes = nil
	a.pool = nilNode
	a.freeNodes = 0
}

// number of slots in use
func (a *arena) inUse() int {
	if 0 == len(a.nodes) {
		return 0
	}
	return len(a.nodes) - 1 - a.freeNodes
}
