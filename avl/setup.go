// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"

	"github.com/bitmark-inc/avlmap/fault"
)

// Policy - selects how a tree restores balance after a mutation
type Policy int

// the available policies
const (
	AVL        Policy = iota // height balanced, the default
	Unbalanced Policy = iota // plain binary search tree
)

// String - policy name as used by configuration files
func (p Policy) String() string {
	switch p {
	case AVL:
		return "avl"
	case Unbalanced:
		return "unbalanced"
	default:
		return "unknown"
	}
}

// ParsePolicy - convert a configuration name to a policy
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(name) {
	case "", "avl":
		return AVL, nil
	case "unbalanced", "bst":
		return Unbalanced, nil
	default:
		return AVL, fault.ErrInvalidPolicy
	}
}

// the hooks a balancing policy receives from the structural layer
type balancer interface {
	// a new leaf n was attached
	inserted(tree *Tree, n nodeIndex)
	// a node was spliced out below parent, diff is +1 if it was
	// the left child and -1 if it was the right child
	removed(tree *Tree, parent nodeIndex, diff int8)
	// n1 and n2 have exchanged positions
	swapped(tree *Tree, n1 nodeIndex, n2 nodeIndex)
}

// Tree - type to hold the root node of a tree
//
// The zero value is an empty AVL tree ready to use.
type Tree struct {
	arena
	root   nodeIndex
	count  int
	policy Policy
	bal    balancer
}

// New - create an initially empty AVL tree
func New() *Tree {
	return NewPolicy(AVL)
}

// NewPolicy - create an initially empty tree using a specific
// balancing policy
func NewPolicy(policy Policy) *Tree {
	tree := &Tree{
		root:   nilNode,
		count:  0,
		policy: policy,
	}
	switch policy {
	case AVL:
		tree.bal = avlBalancer{}
	case Unbalanced:
		tree.bal = unbalanced{}
	default:
		fault.Panicf("avl: unknown balancing policy: %d", policy)
	}
	return tree
}

// the policy in force, a zero value tree is AVL
func (tree *Tree) balancer() balancer {
	if nil == tree.bal {
		tree.bal = avlBalancer{}
	}
	return tree.bal
}

// Policy - the balancing policy of this tree
func (tree *Tree) Policy() Policy {
	return tree.policy
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nilNode == tree.root
}

// Empty - alias of IsEmpty
func (tree *Tree) Empty() bool {
	return tree.IsEmpty()
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - iterator at the root node of the tree, End() if empty
func (tree *Tree) Root() Iterator {
	return tree.iterator(tree.root)
}

// ChildrenAtDepth - returns all nodes at a specific depth of a tree,
// left to right, the root being depth zero
func (tree *Tree) ChildrenAtDepth(depth uint) []Iterator {
	nodes := []Iterator{}
	tree.childrenAtDepth(tree.root, depth, &nodes)
	return nodes
}

func (tree *Tree) childrenAtDepth(n nodeIndex, depth uint, nodes *[]Iterator) {
	if nilNode == n {
		return
	}
	if 0 == depth {
		*nodes = append(*nodes, tree.iterator(n))
		return
	}
	p := tree.node(n)
	tree.childrenAtDepth(p.left, depth-1, nodes)
	tree.childrenAtDepth(p.right, depth-1, nodes)
}

// make parent refer to newChild in the slot that held oldChild, an
// absent parent means oldChild was the root
func (tree *Tree) replaceChild(parent nodeIndex, oldChild nodeIndex, newChild nodeIndex) {
	if nilNode == parent {
		tree.root = newChild
		return
	}
	p := tree.node(parent)
	if p.left == oldChild {
		p.left = newChild
	} else {
		p.right = newChild
	}
}
