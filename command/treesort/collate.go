// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/patrickmn/go-cache"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/bitmark-inc/bstree/fault"
)

// line - one input line ordered by its collation key
//
// only letters take part in the comparison and case, accents and
// width are ignored, so "Éte" and "e-t-e" are equal
type line struct {
	text string
	key  []byte
}

// Compare - order by collation key
func (l *line) Compare(x interface{}) int {
	return bytes.Compare(l.key, x.(*line).key)
}

// String - the original text
func (l *line) String() string {
	return l.text
}

// lineCollator - produce lines with keys for one language
//
// keys are remembered by their letters, so repeated lines and lines
// differing only in punctuation are collated once
type lineCollator struct {
	collator *collate.Collator
	buffer   collate.Buffer
	keys     *cache.Cache
}

func newCollator(tag string) (*lineCollator, error) {
	t, err := language.Parse(tag)
	if nil != err {
		return nil, fault.ErrUnsupportedLanguageTag
	}
	c := &lineCollator{
		collator: collate.New(t, collate.Loose),
		keys:     cache.New(cache.NoExpiration, 0),
	}
	return c, nil
}

// makeLine - compute the key for a line of text
func (c *lineCollator) makeLine(text string) *line {
	letters := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, text)

	if key, ok := c.keys.Get(letters); ok {
		return &line{
			text: text,
			key:  key.([]byte),
		}
	}

	// the key refers to the buffer, so it is copied before the reset
	k := c.collator.KeyFromString(&c.buffer, letters)
	key := make([]byte, len(k))
	copy(key, k)
	c.buffer.Reset()
	c.keys.Set(letters, key, cache.NoExpiration)

	return &line{
		text: text,
		key:  key,
	}
}
