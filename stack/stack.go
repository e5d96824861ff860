// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stack - a last-in first-out sequence
//
// Note: not thread safe
package stack

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Stack - type to hold the stacked items, top is the last element
type Stack struct {
	items []interface{}
}

// New - create an initially empty stack
func New() *Stack {
	return &Stack{
		items: make([]interface{}, 0, 16),
	}
}

// Push - put an item on top of the stack
func (s *Stack) Push(item interface{}) {
	s.items = append(s.items, item)
}

// Pop - remove and return the top item
func (s *Stack) Pop() (interface{}, error) {
	n := len(s.items)
	if 0 == n {
		return nil, fault.ErrStackEmpty
	}
	item := s.items[n-1]
	s.items[n-1] = nil // do not keep a reference to the popped item
	s.items = s.items[:n-1]
	return item, nil
}

// IsEmpty - true if nothing is stacked
func (s *Stack) IsEmpty() bool {
	return 0 == len(s.items)
}
