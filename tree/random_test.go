// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/bitmark-inc/bstree/tree"
)

func TestRandomTree(t *testing.T) {
	for _, c := range constructors {
		t.Run(c.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(20200101))
			for round := 0; round < 20; round += 1 {
				randomTree(t, c.new, rng, 1+rng.Intn(300), 1+rng.Intn(100))
			}
		})
	}
}

// insert random keys, possibly repeated, then delete them all in a
// different random order, validating after each step
func randomTree(t *testing.T, create func() *tree.Tree, rng *rand.Rand, total int, span int) {

	tr := create()
	keys := make([]int, total)
	for i := range keys {
		keys[i] = rng.Intn(span)
		if err := tr.Insert(intItem(keys[i])); nil != err {
			t.Fatalf("insert: %d  error: %s", keys[i], err)
		}
		if err := tr.Check(); nil != err {
			dump(t, tr)
			t.Fatalf("insert: %d  inconsistent tree: %s", keys[i], err)
		}
	}

	sorted := append([]int(nil), keys...)
	sort.Ints(sorted)
	it := tr.Iterator()
	for i, k := range sorted {
		item := it.Next()
		if nil == item || intItem(k) != item.(intItem) {
			t.Fatalf("[%d] iterator: %v  expected: %d", i, item, k)
		}
	}
	if it.HasNext() {
		t.Fatal("iterator not finished")
	}

	rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })

	for i, k := range keys {
		if !tr.Delete(intItem(k)) {
			t.Fatalf("delete: %d not found", k)
		}
		if err := tr.Check(); nil != err {
			dump(t, tr)
			t.Fatalf("delete: %d  inconsistent tree: %s", k, err)
		}
		if len(keys)-i-1 != tr.Count() {
			t.Fatalf("delete: %d  count: %d  expected: %d", k, tr.Count(), len(keys)-i-1)
		}
	}
	if !tr.IsEmpty() {
		dump(t, tr)
		t.Fatal("remaining nodes")
	}
}
