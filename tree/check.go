// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/bstree/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// Check - validate the whole tree, returning the first broken
// invariant found
//
// parent links, key order and the node count are checked for every
// kind of tree, followed by the balancer's own rules
func (tree *Tree) Check() error {
	if !tree.CheckUp() {
		return fault.ErrBrokenParentLink
	}

	n := 0
	var previous Item
	for p := tree.First(); nil != p; p = p.Next() {
		if nil != previous && p.key.Compare(previous) < 0 {
			return fault.ErrOrderViolated
		}
		previous = p.key
		n += 1
	}
	if n != tree.count {
		return fault.ErrCountMismatch
	}

	return tree.balancer.check(tree)
}
