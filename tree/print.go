// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"io"
	"strings"
)

// String - multi-line drawing of the tree, root first and each child
// on its own line below its parent, empty tree is ""
func (tree *Tree) String() string {
	if nil == tree.root {
		return ""
	}
	d := &drawing{
		label: tree.balancer.label,
		open:  make([]bool, 0, 16),
	}
	d.node(tree.root, 0)
	return strings.TrimSuffix(d.b.String(), "\n")
}

// to control the drawing routine
type drawing struct {
	b     strings.Builder
	label func(*Node) string
	open  []bool // a branch at that level still has a right side to draw
}

func (d *drawing) node(p *Node, level int) {
	d.b.WriteString(d.label(p))
	d.b.WriteByte('\n')

	for len(d.open) <= level {
		d.open = append(d.open, false)
	}
	d.open[level] = true

	switch {
	case nil != p.left && nil != p.right:
		d.indent(level)
		d.b.WriteString("├─›")
		d.node(p.left, level+1)
		d.indent(level)
		d.b.WriteString("└─»")
		d.open[level] = false
		d.node(p.right, level+1)
	case nil != p.left:
		d.indent(level)
		d.b.WriteString("└─›")
		d.open[level] = false
		d.node(p.left, level+1)
	case nil != p.right:
		d.indent(level)
		d.b.WriteString("└─»")
		d.open[level] = false
		d.node(p.right, level+1)
	}
}

func (d *drawing) indent(level int) {
	for i := 0; i < level; i += 1 {
		if d.open[i] {
			d.b.WriteString("│  ")
		} else {
			d.b.WriteString("   ")
		}
	}
}

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree lying
// on its side, the right sub-tree above its parent
//
// returns the number of levels printed
func (tree *Tree) Print(w io.Writer) int {
	return tree.printTree(w, tree.root, "", root)
}

// internal print - returns the maximum depth of the tree
func (tree *Tree) printTree(w io.Writer, p *Node, prefix string, br branch) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = tree.printTree(w, p.right, prefix+t, right)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if nil != p.up {
		up = p.up.key
	}
	fmt.Fprintf(w, "%s ^%v\n", tree.balancer.label(p), up)
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = tree.printTree(w, p.left, prefix+t, left)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
