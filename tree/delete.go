// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Delete - removes a specific item from the tree
//
// the first node found on the search path is removed, which is not
// necessarily the lowest of several equal keys.  Returns false and
// leaves the tree untouched if the key is not present.
func (tree *Tree) Delete(key Item) bool {
	p := search(key, tree.root)
	if nil == p {
		return false
	}
	p = tree.substitute(p)
	tree.balancer.remove(tree, p)
	tree.count -= 1
	tree.freeNode(p) // return deleted node to pool
	return true
}

// internal: when p has a left sub-tree, move the highest key of that
// sub-tree into p and return the node that held it instead
//
// either way the returned node has at most one child; a node that
// takes another key is no longer the last one added
func (tree *Tree) substitute(p *Node) *Node {
	if nil == p.left {
		return p
	}
	q := p.left.last()
	p.key = q.key
	if tree.last == p {
		tree.last = nil
	}
	return q
}

// internal: splice the only child of p (possibly nil) into the
// position of p
//
// returns the child that took the position and the former parent of
// p, the two places a balancer restarts from
func (tree *Tree) unlink(p *Node) (*Node, *Node) {
	if nil != p.left && nil != p.right {
		fault.Panicf("tree: unlink of node: %v with two children", p.key)
	}
	child := p.left
	if nil == child {
		child = p.right
	}
	up := p.up
	tree.replace(p, child)
	p.left = nil
	p.right = nil
	p.up = nil
	return child, up
}

// internal: make q occupy the position of p below p's parent, or the
// root; q may be nil
func (tree *Tree) replace(p *Node, q *Node) {
	switch {
	case nil == p.up:
		tree.root = q
	case p == p.up.left:
		p.up.left = q
	default:
		p.up.right = q
	}
	if nil != q {
		q.up = p.up
	}
}
