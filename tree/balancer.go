// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
)

// balancer - the strategy that keeps a tree's shape invariant
//
// the tree does the ordered placement and hands the balancer the
// point of mutation; the balancer owns the node bookkeeping fields
type balancer interface {
	name() string

	// prepare bookkeeping of a freshly allocated node
	initialise(p *Node)

	// restore the invariant after p was attached as a leaf
	inserted(tree *Tree, p *Node)

	// unlink p, which has at most one child, and restore the
	// invariant; p is released by the caller
	remove(tree *Tree, p *Node)

	// whether callers may rotate nodes directly
	rotatable() bool

	// node text for String and Print
	label(p *Node) string

	// bookkeeping equality for Equal
	same(p *Node, q *Node) bool

	// validate bookkeeping of the whole tree
	check(tree *Tree) error
}

// ordered - no balancing at all
type ordered struct{}

func (ordered) name() string { return "ordered" }

func (ordered) initialise(p *Node) {}

func (ordered) inserted(tree *Tree, p *Node) {}

func (ordered) remove(tree *Tree, p *Node) {
	tree.unlink(p)
}

func (ordered) rotatable() bool { return true }

func (ordered) label(p *Node) string {
	return fmt.Sprintf("%v", p.key)
}

func (ordered) same(p *Node, q *Node) bool { return true }

func (ordered) check(tree *Tree) error { return nil }
