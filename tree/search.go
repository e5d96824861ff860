// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

// Search - find a specific item, nil if not present
func (tree *Tree) Search(key Item) *Node {
	return search(key, tree.root)
}

// Contains - true if an equal key is in the tree
func (tree *Tree) Contains(key Item) bool {
	return nil != search(key, tree.root)
}

// internal: order guided descent, the first equal key wins
func search(key Item, p *Node) *Node {
	if nil == key {
		return nil
	}
	for nil != p {
		switch c := key.Compare(p.key); {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return p
		}
	}
	return nil
}
