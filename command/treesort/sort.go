// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/bitmark-inc/bstree/configuration"
	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/tree"
	"github.com/bitmark-inc/logger"
)

// longest line accepted from an input
const maximumLineLength = 1024 * 1024

// sorter - accumulates lines in a tree
type sorter struct {
	log      *logger.L
	tree     *tree.Tree
	collator *lineCollator
}

func newSorter(log *logger.L, balancer string, language string) (*sorter, error) {
	t, err := tree.NewByName(balancer)
	if nil != err {
		return nil, err
	}
	c, err := newCollator(language)
	if nil != err {
		return nil, err
	}
	s := &sorter{
		log:      log,
		tree:     t,
		collator: c,
	}
	return s, nil
}

// readFrom - add every line of a reader, returning the number added
//
// an input that fails part way adds nothing
func (s *sorter) readFrom(name string, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maximumLineLength)

	lines := make([]tree.Item, 0, 256)
	for scanner.Scan() {
		lines = append(lines, s.collator.makeLine(scanner.Text()))
	}
	if err := scanner.Err(); nil != err {
		s.log.Errorf("read: %q  error: %s", name, err)
		return 0, err
	}
	if err := s.tree.InsertAll(lines); nil != err {
		return 0, err
	}
	s.log.Infof("read: %q  lines: %d", name, len(lines))
	return len(lines), nil
}

// checkInputs - every named input must be an existing file, returns
// the first that is not
func checkInputs(names []string) (string, error) {
	for _, name := range names {
		if !configuration.EnsureFileExists(name) {
			return name, fault.ErrFileNotFound
		}
	}
	return "", nil
}

// writeTo - output lines in ascending order, or descending if reverse
func (s *sorter) writeTo(w io.Writer, reverse bool) error {
	out := bufio.NewWriter(w)

	if reverse {
		for p := s.tree.Last(); nil != p; p = p.Prev() {
			if _, err := fmt.Fprintln(out, p.Key()); nil != err {
				return err
			}
		}
	} else {
		it := s.tree.Iterator()
		for it.HasNext() {
			if _, err := fmt.Fprintln(out, it.Next()); nil != err {
				return err
			}
		}
	}
	return out.Flush()
}

// check - validate the tree after loading
func (s *sorter) check() error {
	err := s.tree.Check()
	if nil != err {
		fault.Criticalf("%s tree: check failed: %s", s.tree.Kind(), err)
		return err
	}
	s.log.Debugf("%s tree: check passed  count: %d  depth: %d", s.tree.Kind(), s.tree.Count(), s.tree.Depth())
	return nil
}

// dump - debug print of the tree
func (s *sorter) dump(w io.Writer) {
	depth := s.tree.Print(w)
	s.log.Debugf("dump depth: %d  width: %d", depth, s.tree.Width())
}
