// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// Equal - true if both trees use the same balancing, have the same
// shape, equal keys at each position and the same node bookkeeping
func (tree *Tree) Equal(other *Tree) bool {
	if nil == other {
		return false
	}
	if tree == other {
		return true
	}
	if tree.balancer.name() != other.balancer.name() {
		return false
	}
	return tree.equalNodes(tree.root, other.root)
}

func (tree *Tree) equalNodes(p *Node, q *Node) bool {
	if nil == p || nil == q {
		return p == q
	}
	if 0 != p.key.Compare(q.key) {
		return false
	}
	if !tree.balancer.same(p, q) {
		return false
	}
	return tree.equalNodes(p.left, q.left) && tree.equalNodes(p.right, q.right)
}
