// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"

	"github.com/bitmark-inc/bstree/fault"
)

// avl - height balancing
//
// every node stores its height and after each change the path to the
// root is re-measured; a node whose sub-trees differ in height by two
// is repaired with a single or double rotation
type avl struct{}

func (avl) name() string { return "avl" }

func (avl) initialise(p *Node) {
	p.height = 0
}

func (b avl) inserted(tree *Tree, p *Node) {
	b.rebalance(tree, p)
}

func (b avl) remove(tree *Tree, p *Node) {
	_, up := tree.unlink(p)
	b.rebalance(tree, up)
}

func (avl) rotatable() bool { return false }

func (avl) label(p *Node) string {
	return fmt.Sprintf("%v %d/%d", p.key, p.height, p.Balance())
}

func (avl) same(p *Node, q *Node) bool {
	return p.height == q.height
}

// walk from p to the root restoring heights and balance
//
// the walk does not stop after a rotation, every ancestor's height is
// recomputed
func (avl) rebalance(tree *Tree, p *Node) {
	for ; nil != p; p = p.up {
		updateHeight(p)

		switch p.Balance() {
		case -2: // right heavy
			if 1 == p.right.Balance() {
				avlRotateRight(tree, p.right)
			}
			avlRotateLeft(tree, p)
		case +2: // left heavy
			if -1 == p.left.Balance() {
				avlRotateLeft(tree, p.left)
			}
			avlRotateRight(tree, p)
		}
	}
}

// p moves down, re-measure it then its new parent
func avlRotateLeft(tree *Tree, p *Node) {
	tree.rotateLeft(p)
	updateHeight(p)
	updateHeight(p.up)
}

func avlRotateRight(tree *Tree, p *Node) {
	tree.rotateRight(p)
	updateHeight(p)
	updateHeight(p.up)
}

func updateHeight(p *Node) {
	l := p.left.Height()
	r := p.right.Height()
	if l > r {
		p.height = 1 + l
	} else {
		p.height = 1 + r
	}
}

// heights must be exact and balanced everywhere
func (avl) check(tree *Tree) error {
	_, err := checkHeight(tree.root)
	return err
}

func checkHeight(p *Node) (int, error) {
	if nil == p {
		return -1, nil
	}
	l, err := checkHeight(p.left)
	if nil != err {
		return 0, err
	}
	r, err := checkHeight(p.right)
	if nil != err {
		return 0, err
	}
	h := 1 + l
	if r > l {
		h = 1 + r
	}
	if h != p.height {
		return 0, fault.ErrHeightIncorrect
	}
	if d := l - r; d < -1 || d > 1 {
		return 0, fault.ErrHeightUnbalanced
	}
	return h, nil
}
