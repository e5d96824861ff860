// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Tree - type to hold the root node of a tree
type Tree struct {
	root     *Node
	count    int
	last     *Node // most recent insert, for diagnostics only
	balancer balancer
	pool     allocator
}

// New - create an initially empty ordered tree that performs no
// balancing
func New() *Tree {
	return create(ordered{})
}

// NewAVL - create an initially empty height balanced tree
func NewAVL() *Tree {
	return create(avl{})
}

// NewRedBlack - create an initially empty colour balanced tree
func NewRedBlack() *Tree {
	return create(redBlack{})
}

// NewByName - create an empty tree for a balancer name as returned by
// Kind, e.g. from a configuration file
func NewByName(name string) (*Tree, error) {
	for _, b := range []balancer{ordered{}, avl{}, redBlack{}} {
		if b.name() == name {
			return create(b), nil
		}
	}
	return nil, fault.ErrInvalidBalancer
}

// NewFromItems - create a tree for a balancer name and insert a
// collection of items into it
func NewFromItems(name string, items []Item) (*Tree, error) {
	tree, err := NewByName(name)
	if nil != err {
		return nil, err
	}
	if err := tree.InsertAll(items); nil != err {
		return nil, err
	}
	return tree, nil
}

func create(b balancer) *Tree {
	return &Tree{
		root:     nil,
		count:    0,
		balancer: b,
	}
}

// Kind - the name of the balancing strategy
func (tree *Tree) Kind() string {
	return tree.balancer.name()
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() (*Node, error) {
	if nil == tree.root {
		return nil, fault.ErrEmptyTree
	}
	return tree.root, nil
}

// LastAdded - the node created by the most recent Insert, nil if that
// node has since been released or now holds a different key
func (tree *Tree) LastAdded() *Node {
	return tree.last
}

// Depth - length of the longest path from the root to a leaf, -1 for
// an empty tree
func (tree *Tree) Depth() int {
	return depth(tree.root)
}

func depth(p *Node) int {
	if nil == p {
		return -1
	}
	l := depth(p.left)
	r := depth(p.right)
	if l > r {
		return 1 + l
	}
	return 1 + r
}
