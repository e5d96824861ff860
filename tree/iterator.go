// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/bstree/stack"
)

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Next - given a node, return the node that follows it in order or
// nil if no more nodes.
//
// the walk is by structure rather than by key, so runs of equal keys
// are visited one node at a time
func (tree *Node) Next() *Node {
	if tree.right != nil {
		return tree.right.first()
	}
	for up := tree.up; up != nil; tree, up = up, up.up {
		if up.left == tree {
			return up
		}
	}
	return nil
}

// Prev - given a node, return the node that precedes it in order or
// nil if no more nodes
func (tree *Node) Prev() *Node {
	if tree.left != nil {
		return tree.left.last()
	}
	for up := tree.up; up != nil; tree, up = up, up.up {
		if up.right == tree {
			return up
		}
	}
	return nil
}

// Iterator - ascending in-order walk driven by an explicit stack
//
// the stack holds the path of nodes whose key has not yet been
// produced, so the walk never follows parent links.  An iterator
// cannot be restarted, and inserting or deleting while one is live
// is not supported: the stacked nodes may be moved or reused and the
// sequence becomes meaningless.
type Iterator struct {
	pending *stack.Stack
}

// Iterator - create an iterator positioned before the lowest key
func (tree *Tree) Iterator() *Iterator {
	it := &Iterator{
		pending: stack.New(),
	}
	it.pushLeft(tree.root)
	return it
}

// HasNext - true if Next will produce a key
func (it *Iterator) HasNext() bool {
	return !it.pending.IsEmpty()
}

// Next - the next key in ascending order, nil once exhausted
func (it *Iterator) Next() Item {
	top, err := it.pending.Pop()
	if nil != err {
		return nil
	}
	p := top.(*Node)
	it.pushLeft(p.right)
	return p.key
}

// internal: stack a node and its chain of left children
func (it *Iterator) pushLeft(p *Node) {
	for ; nil != p; p = p.left {
		it.pending.Push(p)
	}
}
