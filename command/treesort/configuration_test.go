// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/bstree/fault"
)

func writeConfiguration(t *testing.T, name string, content string) string {
	fileName := filepath.Join(testingDirName, name)
	require.Nil(t, ioutil.WriteFile(fileName, []byte(content), 0600), "write")
	return fileName
}

func TestConfigurationDefaults(t *testing.T) {
	fileName := writeConfiguration(t, "empty.conf", `return {}`)

	c, err := getConfiguration(fileName)
	require.Nil(t, err, "configuration")

	assert.Equal(t, defaultBalancer, c.Balancer, "balancer")
	assert.Equal(t, defaultLanguage, c.Language, "language")
	assert.False(t, c.Reverse, "reverse")
	assert.Equal(t, defaultLogFile, c.Logging.File, "log file")
	assert.True(t, filepath.IsAbs(c.Logging.Directory), "log directory not absolute: %q", c.Logging.Directory)
	assert.Equal(t, "log", filepath.Base(c.Logging.Directory), "log directory")
}

func TestConfigurationValues(t *testing.T) {
	fileName := writeConfiguration(t, "values.conf", `
return {
    balancer = "AVL",
    reverse = true,
    language = "es",
    logging = {
        directory = "logs",
        file = "sort.log",
    },
}
`)

	c, err := getConfiguration(fileName)
	require.Nil(t, err, "configuration")

	assert.Equal(t, "avl", c.Balancer, "balancer")
	assert.Equal(t, "es", c.Language, "language")
	assert.True(t, c.Reverse, "reverse")
	assert.Equal(t, "sort.log", c.Logging.File, "log file")
	assert.Equal(t, "logs", filepath.Base(c.Logging.Directory), "log directory")
}

func TestConfigurationRejects(t *testing.T) {
	rejects := map[string]string{
		"balancer.conf": `return { balancer = "splay" }`,
		"language.conf": `return { language = "??" }`,
		"file.conf":     `return { logging = { file = "sub/sort.log" } }`,
		"syntax.conf":   `return {`,
	}
	for name, content := range rejects {
		fileName := writeConfiguration(t, name, content)
		_, err := getConfiguration(fileName)
		assert.NotNil(t, err, "accepted: %s", name)
	}
}

func TestConfigurationWithoutFile(t *testing.T) {
	c, err := getConfiguration("")
	require.Nil(t, err, "configuration")
	assert.Equal(t, defaultBalancer, c.Balancer, "balancer")
	assert.True(t, filepath.IsAbs(c.Logging.Directory), "log directory")
}

func TestConfigurationMissingFile(t *testing.T) {
	c, err := getConfiguration(filepath.Join(testingDirName, "absent.conf"))
	assert.Nil(t, c, "configuration returned")
	assert.Equal(t, fault.ErrFileNotFound, err, "wrong error")

	c, err = getConfiguration(testingDirName)
	assert.Nil(t, c, "directory accepted")
	assert.Equal(t, fault.ErrFileNotFound, err, "wrong error")
}
