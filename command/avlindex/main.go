// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/index"
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
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 0 == len(arguments) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE command [arguments...]\n"+
			"  commands: count | get HEX | floor HEX | ceiling HEX | first | last | list | check | print", program)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Console = true
	}

	// start logging
	if err = os.MkdirAll(masterConfiguration.Logging.Directory, 0700); nil != err {
		exitwithstatus.Message("%s: log directory: %q  error: %s", program, masterConfiguration.Logging.Directory, err)
	}
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// ------------------
	// start of real main
	// ------------------

	db, err := leveldb.OpenFile(masterConfiguration.Database, &opt.Options{
		ErrorIfMissing: true,
		ReadOnly:       true,
	})
	if nil != err {
		log.Criticalf("open database: %q  error: %s", masterConfiguration.Database, err)
		exitwithstatus.Message("%s: open database: %q  error: %s", program, masterConfiguration.Database, err)
	}
	defer db.Close()

	ix := index.New(logger.New("index"), masterConfiguration.Table[0])
	defer ix.Reset()

	// read from a snapshot so the table is consistent
	snapshot, err := db.GetSnapshot()
	if nil != err {
		exitwithstatus.Message("%s: snapshot error: %s", program, err)
	}
	n, err := ix.Load(snapshot)
	snapshot.Release()
	if nil != err {
		exitwithstatus.Message("%s: load table: %q  error: %s", program, masterConfiguration.Table, err)
	}
	log.Infof("table: %q  records: %d", masterConfiguration.Table, n)
	if 0 == len(options["quiet"]) {
		fmt.Fprintf(os.Stderr, "table: %q  records: %d\n", masterConfiguration.Table, n)
	}

	command := arguments[0]
	if err := processCommand(os.Stdout, ix, command, arguments[1:]); nil != err {
		log.Errorf("command: %s  error: %s", command, err)
		exitwithstatus.Message("%s: command: %s  error: %s", program, command, err)
	}
}
