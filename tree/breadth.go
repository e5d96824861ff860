// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/bstree/queue"
)

// Breadth - visit nodes level by level, left to right, starting at
// the root; stops early when visit returns false
func (tree *Tree) Breadth(visit func(*Node) bool) {
	if nil == tree.root {
		return
	}
	q := queue.New()
	q.Push(tree.root)

	for !q.IsEmpty() {
		item, err := q.Pop()
		if nil != err {
			return
		}
		p := item.(*Node)
		if !visit(p) {
			return
		}
		if nil != p.left {
			q.Push(p.left)
		}
		if nil != p.right {
			q.Push(p.right)
		}
	}
}

// Width - the largest number of nodes on any one level, 0 for an empty
// tree
func (tree *Tree) Width() int {
	if nil == tree.root {
		return 0
	}
	q := queue.New()
	q.Push(tree.root)

	width := 0
	for !q.IsEmpty() {
		n := q.Len() // the queue holds exactly one level here
		if n > width {
			width = n
		}
		for i := 0; i < n; i += 1 {
			item, err := q.Pop()
			if nil != err {
				return width
			}
			p := item.(*Node)
			if nil != p.left {
				q.Push(p.left)
			}
			if nil != p.right {
				q.Push(p.right)
			}
		}
	}
	return width
}
