// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Insert - insert a new node into the tree
//
// a key equal to existing keys is added to the right of them, so the
// tree may hold duplicates
func (tree *Tree) Insert(key Item) error {
	if nil == key {
		return fault.ErrNilItem
	}
	p := tree.newNode(key)
	if nil == tree.root {
		tree.root = p
	} else {
		attach(tree.root, p)
	}
	tree.last = p
	tree.count += 1
	tree.balancer.inserted(tree, p)
	return nil
}

// InsertAll - insert every item in order
//
// all items are checked first, a nil item fails the whole call before
// the tree is changed
func (tree *Tree) InsertAll(items []Item) error {
	for _, key := range items {
		if nil == key {
			return fault.ErrNilItem
		}
	}
	for _, key := range items {
		if err := tree.Insert(key); nil != err {
			return err
		}
	}
	return nil
}

// internal: descend from the sub-tree root and hang the new node on
// the first empty slot, strictly lower keys go left
func attach(root *Node, p *Node) {
	up := root
	for {
		if p.key.Compare(up.key) < 0 {
			if nil == up.left {
				up.left = p
				break
			}
			up = up.left
		} else {
			if nil == up.right {
				up.right = p
				break
			}
			up = up.right
		}
	}
	p.up = up
}
