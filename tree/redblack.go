// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"

	"github.com/bitmark-inc/bstree/fault"
)

// redBlack - colour balancing
//
//   1. every node is Red or Black, absent children count as Black
//   2. the root is Black
//   3. a Red node has only Black children
//   4. every path from a node down to an absent child passes the
//      same number of Black nodes
type redBlack struct{}

func (redBlack) name() string { return "redblack" }

func (redBlack) initialise(p *Node) {
	p.colour = None
}

func (redBlack) inserted(tree *Tree, p *Node) {
	p.colour = Red
	insertFixup(tree, p)
}

// a leaf is first given a Black phantom child so that the fixup always
// starts from a real node with a real parent
func (redBlack) remove(tree *Tree, p *Node) {
	var phantom *Node
	if p.isLeaf() {
		phantom = tree.newNode(nil)
		phantom.colour = Black
		phantom.up = p
		p.left = phantom
	}

	child, _ := tree.unlink(p)

	if Black == p.colour && Black == child.colour {
		deleteFixup(tree, child)
	} else {
		child.colour = Black
	}

	if nil != phantom {
		tree.replace(phantom, nil)
		phantom.up = nil
		tree.freeNode(phantom)
	}
}

func (redBlack) rotatable() bool { return false }

func (redBlack) label(p *Node) string {
	c := "B"
	if Red == p.colour {
		c = "R"
	}
	return fmt.Sprintf("%s{%v}", c, p.key)
}

func (redBlack) same(p *Node, q *Node) bool {
	return p.colour == q.colour
}

// repair a Red node p that may have a Red parent
func insertFixup(tree *Tree, p *Node) {
	for {
		// Case 1: p is the root
		up := p.up
		if nil == up {
			p.colour = Black
			tree.root = p
			return
		}

		// Case 2: parent is Black, nothing is violated
		if Black == up.colour {
			return
		}

		// a Red parent is never the root, so the grandparent exists
		grand := up.up
		uncle := up.sibling()

		// Case 3: uncle is Red, push the Red up to the grandparent
		if Red == uncle.Colour() {
			up.colour = Black
			uncle.colour = Black
			grand.colour = Red
			p = grand
			continue
		}

		// Case 4: p and its parent lean opposite ways, straighten
		// them so that the old parent is now the lower node
		if p.isLeft() != up.isLeft() {
			if up.isLeft() {
				tree.rotateLeft(up)
			} else {
				tree.rotateRight(up)
			}
			p, up = up, p
		}

		// Case 5: p, parent and grandparent are in a line
		up.colour = Black
		grand.colour = Red
		if p.isLeft() {
			tree.rotateRight(grand)
		} else {
			tree.rotateLeft(grand)
		}
		return
	}
}

// p carries an extra Black that must be pushed up or absorbed
func deleteFixup(tree *Tree, p *Node) {
	for {
		// Case 1: p is the root, the extra Black simply disappears
		up := p.up
		if nil == up {
			p.colour = Black
			tree.root = p
			return
		}

		sibling := p.sibling()
		if nil == sibling {
			fault.Panicf("tree: red-black node: %v has no sibling", p.key)
		}

		// Case 2: Red sibling, rotate so that p gets a Black sibling
		if Red == sibling.colour {
			sibling.colour = Black
			up.colour = Red
			if p.isLeft() {
				tree.rotateLeft(up)
			} else {
				tree.rotateRight(up)
			}
			up = p.up
			sibling = p.sibling()
		}

		nearLeft := sibling.left
		nearRight := sibling.right
		blackNephews := Black == nearLeft.Colour() && Black == nearRight.Colour()

		// Case 3: everything around p is Black, move the problem up
		if Black == up.colour && Black == sibling.colour && blackNephews {
			sibling.colour = Red
			p = up
			continue
		}

		// Case 4: parent Red, sibling and nephews Black, swap colours
		if Black == sibling.colour && blackNephews && Red == up.colour {
			up.colour = Black
			sibling.colour = Red
			return
		}

		// Case 5: only the nephew nearer to p is Red, turn it into
		// the far nephew
		left := p.isLeft()
		if nearLeft.Colour() != nearRight.Colour() &&
			((left && Black == nearRight.Colour()) || (!left && Black == nearLeft.Colour())) {
			if Red == nearLeft.Colour() {
				nearLeft.colour = Black
			} else {
				nearRight.colour = Black
			}
			sibling.colour = Red
			if left {
				tree.rotateRight(sibling)
			} else {
				tree.rotateLeft(sibling)
			}
			sibling = p.sibling()
		}

		// Case 6: far nephew is Red, rotate the parent towards p
		sibling.colour = up.colour
		up.colour = Black
		if left {
			sibling.right.colour = Black
			tree.rotateLeft(up)
		} else {
			sibling.left.colour = Black
			tree.rotateRight(up)
		}
		return
	}
}

// colours, red children and black heights must all be correct
func (redBlack) check(tree *Tree) error {
	if nil == tree.root {
		return nil
	}
	if Black != tree.root.colour {
		return fault.ErrRootNotBlack
	}
	_, err := blackHeight(tree.root)
	return err
}

// count of Black nodes on every path below p, including p
func blackHeight(p *Node) (int, error) {
	if nil == p {
		return 0, nil
	}
	if Red != p.colour && Black != p.colour {
		return 0, fault.ErrUncolouredNode
	}
	if Red == p.colour && (Red == p.left.Colour() || Red == p.right.Colour()) {
		return 0, fault.ErrRedWithRedChild
	}
	l, err := blackHeight(p.left)
	if nil != err {
		return 0, err
	}
	r, err := blackHeight(p.right)
	if nil != err {
		return 0, err
	}
	if l != r {
		return 0, fault.ErrBlackHeightMismatch
	}
	if Black == p.colour {
		return l + 1, nil
	}
	return l, nil
}
