// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/bstree/fault"
)

// RotateLeft - rotate the sub-tree at p to the left:
//
//	    p              r
//	   / \            / \
//	  a   r    ->    p   c
//	     / \        / \
//	    b   c      a   b
//
// nothing happens if p is nil or has no right child.  Self-balancing
// trees refuse with ErrRotationNotSupported since an outside rotation
// would break their invariant.
func (tree *Tree) RotateLeft(p *Node) error {
	if !tree.balancer.rotatable() {
		return fault.ErrRotationNotSupported
	}
	if nil != p {
		tree.rotateLeft(p)
	}
	return nil
}

// RotateRight - mirror image of RotateLeft, p must have a left child
func (tree *Tree) RotateRight(p *Node) error {
	if !tree.balancer.rotatable() {
		return fault.ErrRotationNotSupported
	}
	if nil != p {
		tree.rotateRight(p)
	}
	return nil
}

// internal: right child takes the place of p
func (tree *Tree) rotateLeft(p *Node) {
	r := p.right
	if nil == r {
		return
	}
	tree.replace(p, r)
	p.right = r.left
	if nil != p.right {
		p.right.up = p
	}
	r.left = p
	p.up = r
}

// internal: left child takes the place of p
func (tree *Tree) rotateRight(p *Node) {
	l := p.left
	if nil == l {
		return
	}
	tree.replace(p, l)
	p.left = l.right
	if nil != p.left {
		p.left.up = p
	}
	l.right = p
	p.up = l
}
