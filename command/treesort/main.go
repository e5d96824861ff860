// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "reverse", HasArg: getoptions.NO_ARGUMENT, Short: 'r'},
		{Long: "balancer", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'b'},
		{Long: "check", HasArg: getoptions.NO_ARGUMENT, Short: 'k'},
		{Long: "dump", HasArg: getoptions.NO_ARGUMENT, Short: 'd'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--config-file=FILE] [--reverse] [--balancer=avl|redblack|ordered] [--check] [--dump] [files...]", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: at most one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// command line overrides
	if len(options["reverse"]) > 0 {
		theConfiguration.Reverse = true
	}
	if n := len(options["balancer"]); n > 0 {
		theConfiguration.Balancer = options["balancer"][n-1]
	}
	if len(options["verbose"]) > 0 {
		levels := make(map[string]string)
		for k, v := range theConfiguration.Logging.Levels {
			levels[k] = v
		}
		levels["main"] = "debug"
		theConfiguration.Logging.Levels = levels
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	s, err := newSorter(log, theConfiguration.Balancer, theConfiguration.Language)
	if nil != err {
		log.Criticalf("sorter setup error: %s", err)
		exitwithstatus.Message("%s: balancer: %q error: %s", program, theConfiguration.Balancer, err)
	}
	log.Infof("balancer: %s", s.tree.Kind())

	if name, err := checkInputs(arguments); nil != err {
		log.Errorf("input: %q  error: %s", name, err)
		exitwithstatus.Message("%s: input: %q  error: %s", program, name, err)
	}

	if 0 == len(arguments) {
		if _, err := s.readFrom("<stdin>", os.Stdin); nil != err {
			exitwithstatus.Message("%s: read standard input error: %s", program, err)
		}
	}
	for _, fileName := range arguments {
		f, err := os.Open(fileName)
		if nil != err {
			log.Errorf("open: %q  error: %s", fileName, err)
			exitwithstatus.Message("%s: open: %q  error: %s", program, fileName, err)
		}
		_, err = s.readFrom(fileName, f)
		f.Close()
		if nil != err {
			exitwithstatus.Message("%s: read: %q  error: %s", program, fileName, err)
		}
	}

	if len(options["check"]) > 0 {
		if err := s.check(); nil != err {
			exitwithstatus.Message("%s: %s tree is inconsistent: %s", program, s.tree.Kind(), err)
		}
	}

	if len(options["dump"]) > 0 {
		s.dump(os.Stderr)
	}

	if err := s.writeTo(os.Stdout, theConfiguration.Reverse); nil != err {
		log.Errorf("write error: %s", err)
		exitwithstatus.Message("%s: write error: %s", program, err)
	}
	log.Infof("lines: %d", s.tree.Count())
}
