// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// per-tree node allocator, a tree is single threaded so no lock
type allocator struct {
	pool       *Node // linked list of reclaimed nodes
	totalNodes int   // total nodes created
	freeNodes  int   // number of nodes in the pool
}

// internal: allocate a node for key, reusing a reclaimed node if any
// are available; the balancer sets up its bookkeeping
func (tree *Tree) newNode(key Item) *Node {
	a := &tree.pool
	p := a.pool
	if nil == p {
		a.totalNodes += 1
		p = &Node{}
	} else {
		a.pool = p.up
		a.freeNodes -= 1
		p.up = nil // ensure freelist pointer is cleared
	}
	p.key = key
	tree.balancer.initialise(p)
	return p
}

// internal: reclaim a node and keep it in the pool
//
// the node must already be unlinked from the tree
func (tree *Tree) freeNode(p *Node) {
	if tree.last == p {
		tree.last = nil
	}
	a := &tree.pool
	p.left = nil
	p.right = nil
	p.key = nil
	p.height = 0
	p.colour = None
	p.up = a.pool // use as free list pointer
	a.pool = p
	a.freeNodes += 1
}
