// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/stack"
)

func TestPushPop(t *testing.T) {
	s := stack.New()
	assert.True(t, s.IsEmpty(), "new stack is not empty")

	for i := 0; i < 100; i += 1 {
		s.Push(i)
	}
	assert.False(t, s.IsEmpty(), "stack is empty after push")

	for i := 99; i >= 0; i -= 1 {
		item, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, i, item, "items not in reverse order")
	}
	assert.True(t, s.IsEmpty(), "stack not empty after popping everything")
}

func TestEmpty(t *testing.T) {
	s := stack.New()

	_, err := s.Pop()
	assert.Equal(t, fault.ErrStackEmpty, err, "wrong error")
	assert.True(t, fault.IsErrNotFound(err), "wrong error class: %v", err)

	s.Push("one")
	item, err := s.Pop()
	assert.Nil(t, err, "pop after push")
	assert.Equal(t, "one", item, "wrong item")
	_, err = s.Pop()
	assert.Equal(t, fault.ErrStackEmpty, err, "stack not empty again")
}
