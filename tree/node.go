// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Item - a key item must implement the Compare function
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Colour - red-black node colour
type Colour int

// possible colours, None until a red-black tree assigns one
const (
	None Colour = iota
	Red
	Black
)

// String - printable colour name
func (c Colour) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// Node - a node in the tree
//
// only the child links own nodes, the up link is a back reference
type Node struct {
	left   *Node  // left sub-tree
	right  *Node  // right sub-tree
	up     *Node  // points to parent node
	key    Item   // key part for ordering
	height int    // AVL: 1 + max(child heights), leaf is 0
	colour Colour // red-black: Red or Black
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// HasParent - true unless this is the root
func (p *Node) HasParent() bool {
	return nil != p.up
}

// HasLeft - true if there is a left sub-tree
func (p *Node) HasLeft() bool {
	return nil != p.left
}

// HasRight - true if there is a right sub-tree
func (p *Node) HasRight() bool {
	return nil != p.right
}

// Parent - return parent node of a node
func (p *Node) Parent() (*Node, error) {
	if nil == p.up {
		return nil, fault.ErrNoParent
	}
	return p.up, nil
}

// Left - return the root of the left sub-tree
func (p *Node) Left() (*Node, error) {
	if nil == p.left {
		return nil, fault.ErrNoLeftChild
	}
	return p.left, nil
}

// Right - return the root of the right sub-tree
func (p *Node) Right() (*Node, error) {
	if nil == p.right {
		return nil, fault.ErrNoRightChild
	}
	return p.right, nil
}

// Height - stored AVL height, an absent node has height -1
func (p *Node) Height() int {
	if nil == p {
		return -1
	}
	return p.height
}

// Balance - AVL balance factor: height(left) - height(right)
func (p *Node) Balance() int {
	return p.left.Height() - p.right.Height()
}

// Colour - stored red-black colour, an absent node counts as Black
func (p *Node) Colour() Colour {
	if nil == p {
		return Black
	}
	return p.colour
}

// Depth - number of links from the root to this node
func (p *Node) Depth() int {
	count := 0
	for up := p.up; nil != up; up = up.up {
		count += 1
	}
	return count
}

// internal: true if this node hangs to the left of its parent
func (p *Node) isLeft() bool {
	return nil != p.up && p == p.up.left
}

// internal: the other child of this node's parent
func (p *Node) sibling() *Node {
	if p.isLeft() {
		return p.up.right
	}
	return p.up.left
}

// internal: true for a leaf
func (p *Node) isLeaf() bool {
	return nil == p.left && nil == p.right
}
