// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
)

type intItem int

func (i intItem) Compare(x interface{}) int {
	j := x.(intItem)
	switch {
	case i < j:
		return -1
	case i > j:
		return 1
	default:
		return 0
	}
}

func build(policy avl.Policy, keys ...int) *avl.Tree {
	tree := avl.NewPolicy(policy)
	for _, k := range keys {
		tree.Insert(intItem(k), k*10)
	}
	return tree
}

func keysOf(nodes []avl.Iterator) []int {
	keys := make([]int, 0, len(nodes))
	for _, it := range nodes {
		keys = append(keys, int(it.Key().(intItem)))
	}
	return keys
}

func inOrder(tree *avl.Tree) []int {
	keys := []int{}
	for it := tree.Begin(); it != tree.End(); it = it.Next() {
		keys = append(keys, int(it.Key().(intItem)))
	}
	return keys
}

func TestAscendingInsertIsComplete(t *testing.T) {
	tree := build(avl.AVL, 1, 2, 3, 4, 5, 6, 7)

	assert.Equal(t, intItem(4), tree.Root().Key(), "wrong root")
	assert.Equal(t, 3, tree.Height(), "wrong height")
	assert.Equal(t, []int{2, 6}, keysOf(tree.ChildrenAtDepth(1)), "wrong depth 1")
	assert.Equal(t, []int{1, 3, 5, 7}, keysOf(tree.ChildrenAtDepth(2)), "wrong depth 2")
	assert.True(t, tree.IsBalanced(), "not balanced")
	assert.True(t, tree.CheckBalances(), "stored balances wrong")
	assert.True(t, tree.CheckUp(), "parent links wrong")
	assert.Equal(t, 7, tree.Count(), "wrong count")
}

func TestRemoveRootWithTwoChildren(t *testing.T) {
	tree := build(avl.AVL, 5, 3, 8, 1, 4, 7, 9)
	tree.Remove(intItem(5))

	assert.Equal(t, intItem(4), tree.Root().Key(), "predecessor not in root position")
	assert.Equal(t, []int{3, 8}, keysOf(tree.ChildrenAtDepth(1)), "wrong depth 1")
	assert.Equal(t, []int{1, 3, 4, 7, 8, 9}, inOrder(tree), "wrong order")
	assert.True(t, tree.Find(intItem(5)).IsEnd(), "removed key found")
	assert.True(t, tree.IsBalanced(), "not balanced")
	assert.True(t, tree.CheckBalances(), "stored balances wrong")
	assert.True(t, tree.CheckUp(), "parent links wrong")
	assert.Equal(t, 6, tree.Count(), "wrong count")
}

func TestInsertDoubleRotation(t *testing.T) {
	tree := build(avl.AVL, 50, 20, 80, 10, 30, 25)
	assert.Equal(t, intItem(30), tree.Root().Key(), "wrong root")
	assert.Equal(t, []int{20, 50}, keysOf(tree.ChildrenAtDepth(1)), "wrong depth 1")
	assert.Equal(t, []int{10, 25, 80}, keysOf(tree.ChildrenAtDepth(2)), "wrong depth 2")
	assert.True(t, tree.CheckBalances(), "stored balances wrong")

	tree = build(avl.AVL, 50, 20, 80, 10, 30, 35)
	assert.Equal(t, intItem(30), tree.Root().Key(), "wrong root")
	assert.Equal(t, []int{10, 35, 80}, keysOf(tree.ChildrenAtDepth(2)), "wrong depth 2")
	assert.True(t, tree.CheckBalances(), "stored balances wrong")

	// mirror image
	tree = build(avl.AVL, 50, 20, 80, 70, 90, 75)
	assert.Equal(t, intItem(70), tree.Root().Key(), "wrong root")
	assert.Equal(t, []int{50, 80}, keysOf(tree.ChildrenAtDepth(1)), "wrong depth 1")
	assert.True(t, tree.CheckBalances(), "stored balances wrong")
}

func TestRemoveRebalancing(t *testing.T) {
	items := []struct {
		keys   []int
		remove int
		root   int
		depth1 []int
	}{
		{[]int{5, 3, 8, 1}, 8, 3, []int{1, 5}},             // single rotation
		{[]int{5, 3, 8, 1, 4}, 8, 3, []int{1, 5}},          // single rotation, height kept
		{[]int{5, 3, 8, 4}, 8, 4, []int{3, 5}},             // double rotation
		{[]int{5, 3, 8, 9}, 3, 8, []int{5, 9}},             // mirror single rotation
		{[]int{5, 3, 8, 7, 9}, 3, 8, []int{5, 9}},          // mirror, height kept
		{[]int{5, 3, 8, 7}, 3, 7, []int{5, 8}},             // mirror double rotation
		{[]int{5, 3, 8, 1, 4, 7, 9, 2}, 8, 5, []int{3, 7}}, // predecessor swap, no rotation
	}

	for i, item := range items {
		tree := build(avl.AVL, item.keys...)
		tree.Remove(intItem(item.remove))
		assert.Equal(t, intItem(item.root), tree.Root().Key(), "%d: wrong root", i)
		assert.Equal(t, item.depth1, keysOf(tree.ChildrenAtDepth(1)), "%d: wrong depth 1", i)
		assert.True(t, tree.IsBalanced(), "%d: not balanced", i)
		assert.True(t, tree.CheckBalances(), "%d: stored balances wrong", i)
		assert.True(t, tree.CheckUp(), "%d: parent links wrong", i)
		assert.Equal(t, len(item.keys)-1, tree.Count(), "%d: wrong count", i)
	}
}

func TestDuplicateInsertOverwrites(t *testing.T) {
	tree := build(avl.AVL, 1, 2, 3)
	before := tree.Find(intItem(2))
	tree.Insert(intItem(2), "two")

	assert.Equal(t, 3, tree.Count(), "count changed")
	assert.Equal(t, before, tree.Find(intItem(2)), "node changed")
	v, err := tree.At(intItem(2))
	assert.Nil(t, err, "at error")
	assert.Equal(t, "two", v, "value not overwritten")
}

func TestRemoveAbsentKey(t *testing.T) {
	tree := build(avl.AVL, 1, 2, 3)
	tree.Remove(intItem(9))
	assert.Equal(t, []int{1, 2, 3}, inOrder(tree), "tree changed")
	assert.Equal(t, 3, tree.Count(), "count changed")

	empty := avl.New()
	empty.Remove(intItem(1))
	assert.True(t, empty.IsEmpty(), "empty tree changed")
}

func TestInsertAllRemoveAll(t *testing.T) {
	keys := []int{41, 7, 93, 12, 66, 3, 58, 29, 80, 15, 1, 99, 34}
	tree := build(avl.AVL, keys...)
	for _, k := range keys {
		tree.Remove(intItem(k))
		assert.True(t, tree.IsBalanced(), "not balanced after removing: %d", k)
		assert.True(t, tree.CheckBalances(), "stored balances wrong after removing: %d", k)
	}
	assert.True(t, tree.IsEmpty(), "not empty")
	assert.True(t, tree.Empty(), "not empty")
	assert.Equal(t, 0, tree.Count(), "count not zero")
	assert.True(t, tree.Begin().IsEnd(), "begin not end")
	assert.Equal(t, 0, tree.Height(), "height not zero")
}

func TestAtAndAssign(t *testing.T) {
	tree := build(avl.AVL, 1, 2, 3)

	_, err := tree.At(intItem(4))
	assert.Equal(t, fault.ErrKeyNotFound, err, "wrong at error")
	assert.True(t, fault.IsErrNotFound(err), "wrong error class")

	err = tree.Assign(intItem(4), 40)
	assert.Equal(t, fault.ErrKeyNotFound, err, "wrong assign error")
	assert.Equal(t, 3, tree.Count(), "assign added a node")

	err = tree.Assign(intItem(3), "three")
	assert.Nil(t, err, "assign error")
	assert.Equal(t, "three", tree.Find(intItem(3)).Value(), "value not assigned")

	it := tree.Find(intItem(1))
	it.SetValue(100)
	v, err := tree.At(intItem(1))
	assert.Nil(t, err, "at error")
	assert.Equal(t, 100, v, "value not set through iterator")
}

func TestEndIterator(t *testing.T) {
	tree := build(avl.AVL, 1, 2)
	assert.Equal(t, tree.End(), tree.Find(intItem(7)), "miss is not end")
	assert.Equal(t, tree.End(), tree.Last().Next(), "after last is not end")
	assert.Equal(t, tree.End(), tree.First().Prev(), "before first is not end")
	assert.Equal(t, avl.New().End(), tree.End(), "end iterators differ")

	assert.Panics(t, func() { tree.End().Key() }, "key of end")
	assert.Panics(t, func() { tree.End().Value() }, "value of end")
	assert.Panics(t, func() { tree.End().Next() }, "next of end")
	assert.Panics(t, func() { tree.End().SetValue(1) }, "set value of end")
}

func TestClear(t *testing.T) {
	tree := build(avl.AVL, 3, 1, 2, 5, 4)
	tree.Clear()
	assert.True(t, tree.IsEmpty(), "not empty")
	assert.Equal(t, 0, tree.Count(), "count not zero")

	tree.Clear()
	assert.True(t, tree.IsEmpty(), "not empty after second clear")

	tree.Insert(intItem(8), 80)
	assert.Equal(t, []int{8}, inOrder(tree), "tree not usable after clear")
}

func TestZeroValueTree(t *testing.T) {
	var tree avl.Tree
	assert.Equal(t, avl.AVL, tree.Policy(), "wrong policy")
	for i := 1; i <= 15; i += 1 {
		tree.Insert(intItem(i), i)
	}
	assert.Equal(t, 4, tree.Height(), "wrong height")
	assert.True(t, tree.CheckBalances(), "stored balances wrong")
}

func TestUnbalancedPolicy(t *testing.T) {
	tree := build(avl.Unbalanced, 1, 2, 3, 4, 5)
	assert.Equal(t, avl.Unbalanced, tree.Policy(), "wrong policy")
	assert.Equal(t, intItem(1), tree.Root().Key(), "root moved")
	assert.Equal(t, 5, tree.Height(), "wrong height")
	assert.False(t, tree.IsBalanced(), "chain reported balanced")
	assert.True(t, tree.CheckUp(), "parent links wrong")

	tree.Remove(intItem(1))
	tree.Remove(intItem(4))
	assert.Equal(t, []int{2, 3, 5}, inOrder(tree), "wrong order")
	assert.True(t, tree.CheckUp(), "parent links wrong")

	tree = build(avl.Unbalanced, 4, 2, 6, 1, 3, 5, 7)
	tree.Remove(intItem(4))
	assert.Equal(t, intItem(3), tree.Root().Key(), "predecessor not in root position")
	assert.Equal(t, []int{1, 2, 3, 5, 6, 7}, inOrder(tree), "wrong order")
}

func TestParsePolicy(t *testing.T) {
	items := []struct {
		name   string
		policy avl.Policy
		err    error
	}{
		{"", avl.AVL, nil},
		{"avl", avl.AVL, nil},
		{"AVL", avl.AVL, nil},
		{"unbalanced", avl.Unbalanced, nil},
		{"bst", avl.Unbalanced, nil},
		{"red-black", avl.AVL, fault.ErrInvalidPolicy},
	}
	for _, item := range items {
		p, err := avl.ParsePolicy(item.name)
		assert.Equal(t, item.err, err, "error for: %q", item.name)
		assert.Equal(t, item.policy, p, "policy for: %q", item.name)
		if nil == err && "" != item.name {
			assert.Equal(t, strings.ToLower(item.name), p.String(), "round trip: %q", item.name)
		}
	}
}

func TestFprint(t *testing.T) {
	tree := build(avl.AVL, 2, 1, 3)
	buffer := &bytes.Buffer{}
	depth := tree.Fprint(buffer, false)
	assert.Equal(t, 2, depth, "wrong depth")

	expected := "       /------+ 3 ^2\n" +
		"|------+ 2 ^<nil>\n" +
		"       \\------+ 1 ^2\n"
	assert.Equal(t, expected, buffer.String(), "wrong output")

	buffer.Reset()
	tree.Fprint(buffer, true)
	assert.Contains(t, buffer.String(), "2 → 20 ^<nil> +0", "data not printed")

	buffer.Reset()
	assert.Equal(t, 0, avl.New().Fprint(buffer, false), "empty depth")
	assert.Equal(t, "", buffer.String(), "empty output")
}
