// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tree - ordered binary search trees with parent pointers
// and a choice of balancing strategy
//
// Three kinds of tree share one structure:
//
//   New()         - plain ordered tree, shape depends on insertion order
//   NewAVL()      - height balanced, every node's subtree heights
//                   differ by at most one
//   NewRedBlack() - colour balanced, equal black height on every path
//
// Items are ordered by their Compare method.  Duplicates are allowed
// and are placed to the right of equal items, so a tree behaves as a
// sorted multiset rather than a map.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Node handles returned by Search, Root, First, Last etc. are only
// valid until the next Delete: deletion moves items between nodes and
// released nodes are reused by later inserts.
package tree
