// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package queue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/queue"
)

func TestPushPop(t *testing.T) {
	q := queue.New()
	assert.True(t, q.IsEmpty(), "new queue is not empty")

	words := []string{"one", "two", "three", "four"}
	for _, w := range words {
		q.Push(w)
	}
	assert.Equal(t, len(words), q.Len(), "wrong length")

	for _, w := range words {
		item, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, w, item, "items not in arrival order")
	}
	assert.True(t, q.IsEmpty(), "queue not empty after popping everything")

	_, err := q.Pop()
	assert.Equal(t, fault.ErrQueueEmpty, err, "wrong error")
}

// pushing while draining keeps arrival order
func TestInterleaved(t *testing.T) {
	q := queue.New()
	q.Push(1)
	q.Push(2)

	item, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, 1, item)

	q.Push(3)
	for _, expected := range []int{2, 3} {
		item, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, expected, item)
	}
}
