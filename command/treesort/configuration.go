// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/bstree/configuration"
	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/tree"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories are relative to the configuration file)
const (
	defaultBalancer = "redblack"
	defaultLanguage = "und"

	defaultLogDirectory = "log"
	defaultLogFile      = "treesort.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		logger.DefaultTag: "critical",
	}
)

// Configuration - configuration file data
type Configuration struct {
	Balancer string               `gluamapper:"balancer" json:"balancer"`
	Reverse  bool                 `gluamapper:"reverse" json:"reverse"`
	Language string               `gluamapper:"language" json:"language"`
	Logging  logger.Configuration `gluamapper:"logging" json:"logging"`
}

func defaultConfiguration() *Configuration {
	return &Configuration{
		Balancer: defaultBalancer,
		Reverse:  false,
		Language: defaultLanguage,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}
}

// will read decode and verify the configuration
//
// an empty file name selects the defaults with the log kept in the
// system temporary directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := defaultConfiguration()
	baseDirectory := os.TempDir()

	if "" != configurationFileName {
		configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		if !configuration.EnsureFileExists(configurationFileName) {
			return nil, fault.ErrFileNotFound
		}

		// relative paths are from the configuration file's directory
		baseDirectory, _ = filepath.Split(configurationFileName)

		if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
			return nil, err
		}
	} else {
		options.Logging.Directory = "."
	}

	// balancer names are case insensitive
	options.Balancer = strings.ToLower(options.Balancer)
	if _, err := tree.NewByName(options.Balancer); nil != err {
		return nil, fmt.Errorf("Balancer: %q is not supported", options.Balancer)
	}

	if _, err := newCollator(options.Language); nil != err {
		return nil, fmt.Errorf("Language: %q error: %s", options.Language, err)
	}

	// fail if the log file is not a simple file name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = configuration.EnsureAbsolute(baseDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}
