// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package queue - a first-in first-out sequence
//
// Note: not thread safe
package queue

import (
	"container/list"

	"github.com/bitmark-inc/bstree/fault"
)

// Queue - items leave in the order they arrived
type Queue struct {
	l *list.List
}

// New - create an initially empty queue
func New() *Queue {
	return &Queue{
		l: list.New(),
	}
}

// Push - add an item at the back
func (q *Queue) Push(item interface{}) {
	q.l.PushBack(item)
}

// Pop - remove and return the front item
func (q *Queue) Pop() (interface{}, error) {
	front := q.l.Front()
	if nil == front {
		return nil, fault.ErrQueueEmpty
	}
	return q.l.Remove(front), nil
}

// IsEmpty - true if nothing is queued
func (q *Queue) IsEmpty() bool {
	return 0 == q.l.Len()
}

// Len - number of queued items
func (q *Queue) Len() int {
	return q.l.Len()
}
