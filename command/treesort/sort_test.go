// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/bstree/fault"
)

const poem = `Zorro
árbol
Casa
banana
casa
--
Árbol
`

func TestSortAscending(t *testing.T) {
	for _, balancer := range []string{"ordered", "avl", "redblack"} {
		s, err := newSorter(logger.New(logCategory), balancer, "und")
		require.Nil(t, err, "sorter: %s", balancer)

		n, err := s.readFrom("poem", strings.NewReader(poem))
		assert.Nil(t, err, "%s: read", balancer)
		assert.Equal(t, 7, n, "%s: line count", balancer)
		assert.Nil(t, s.check(), "%s: check", balancer)

		buffer := &bytes.Buffer{}
		assert.Nil(t, s.writeTo(buffer, false), "%s: write", balancer)

		// equal keys keep input order
		expected := "--\nárbol\nÁrbol\nbanana\nCasa\ncasa\nZorro\n"
		assert.Equal(t, expected, buffer.String(), "%s: wrong order", balancer)
	}
}

func TestSortReverse(t *testing.T) {
	s, err := newSorter(logger.New(logCategory), "redblack", "und")
	require.Nil(t, err, "sorter")

	_, err = s.readFrom("poem", strings.NewReader(poem))
	assert.Nil(t, err, "read")

	buffer := &bytes.Buffer{}
	assert.Nil(t, s.writeTo(buffer, true), "write")

	expected := "Zorro\ncasa\nCasa\nbanana\nÁrbol\nárbol\n--\n"
	assert.Equal(t, expected, buffer.String(), "wrong order")
}

func TestSortSeveralInputs(t *testing.T) {
	s, err := newSorter(logger.New(logCategory), "avl", "en")
	require.Nil(t, err, "sorter")

	_, err = s.readFrom("one", strings.NewReader("delta\nalpha\n"))
	assert.Nil(t, err, "read one")
	_, err = s.readFrom("two", strings.NewReader("charlie\nbravo"))
	assert.Nil(t, err, "read two")

	buffer := &bytes.Buffer{}
	assert.Nil(t, s.writeTo(buffer, false), "write")
	assert.Equal(t, "alpha\nbravo\ncharlie\ndelta\n", buffer.String(), "wrong order")
}

func TestSortEmptyInput(t *testing.T) {
	s, err := newSorter(logger.New(logCategory), "ordered", "und")
	require.Nil(t, err, "sorter")

	n, err := s.readFrom("empty", strings.NewReader(""))
	assert.Nil(t, err, "read")
	assert.Equal(t, 0, n, "lines")

	buffer := &bytes.Buffer{}
	assert.Nil(t, s.writeTo(buffer, false), "write")
	assert.Equal(t, "", buffer.String(), "output")
}

func TestSortDump(t *testing.T) {
	s, err := newSorter(logger.New(logCategory), "redblack", "und")
	require.Nil(t, err, "sorter")
	_, _ = s.readFrom("abc", strings.NewReader("b\na\nc\n"))

	buffer := &bytes.Buffer{}
	s.dump(buffer)
	assert.Equal(t, 3, strings.Count(buffer.String(), "\n"), "dump lines")
	assert.Contains(t, buffer.String(), "B{b} ^<nil>", "root")
}

func TestNewSorterErrors(t *testing.T) {
	_, err := newSorter(logger.New(logCategory), "splay", "und")
	assert.Equal(t, fault.ErrInvalidBalancer, err, "balancer")

	_, err = newSorter(logger.New(logCategory), "avl", "!!")
	assert.Equal(t, fault.ErrUnsupportedLanguageTag, err, "language")
}

func TestCheckInputs(t *testing.T) {
	present := writeConfiguration(t, "input.txt", "b\na\n")
	absent := filepath.Join(testingDirName, "absent.txt")

	name, err := checkInputs([]string{present})
	assert.Nil(t, err, "present input")
	assert.Equal(t, "", name, "name")

	name, err = checkInputs([]string{present, absent, testingDirName})
	assert.Equal(t, fault.ErrFileNotFound, err, "wrong error")
	assert.Equal(t, absent, name, "first missing input")

	name, err = checkInputs(nil)
	assert.Nil(t, err, "no inputs")
	assert.Equal(t, "", name, "name")
}

// fails after the first chunk of data
type failingReader struct {
	sent bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.sent {
		return 0, errors.New("device gone")
	}
	r.sent = true
	return copy(p, "one\ntwo\nthr"), nil
}

func TestReadFailureAddsNothing(t *testing.T) {
	s, err := newSorter(logger.New(logCategory), "avl", "und")
	require.Nil(t, err, "sorter")

	n, err := s.readFrom("failing", &failingReader{})
	assert.NotNil(t, err, "no error")
	assert.Equal(t, 0, n, "lines reported")
	assert.True(t, s.tree.IsEmpty(), "partial input kept")
}
