// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Command giro converts a payment spreadsheet into a fixed-width bank
// upload file without running the HTTP server.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/moov-io/giro"
	"github.com/moov-io/giro/pkg/banks"
	"github.com/moov-io/giro/pkg/batches"
	"github.com/moov-io/giro/pkg/config"
	"github.com/moov-io/giro/pkg/spreadsheet"
	"github.com/moov-io/giro/pkg/util"
)

var (
	flagInput      = flag.String("input", "", "Filepath of the payment spreadsheet (xlsx)")
	flagOutput     = flag.String("output", "", "Filepath for the generated file (defaults next to the input)")
	flagConfigFile = flag.String("config", "", "Filepath for config file to load")
	flagValueDate  = flag.String("value-date", "", "Value date for the batch (YYYY-MM-DD, defaults to today)")
)

func main() {
	flag.Parse()

	cfg, err := config.FromFile(util.Or(os.Getenv("CONFIG_FILE"), *flagConfigFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := cfg.Logger
	logger.Log("startup", fmt.Sprintf("giro %s", giro.Version))

	if *flagInput == "" {
		fmt.Fprintf(os.Stderr, "ERROR: -input is required\n")
		os.Exit(1)
	}

	valueDate := time.Now()
	if *flagValueDate != "" {
		valueDate = util.FirstParsedTime(*flagValueDate, util.YYMMDDTimeFormat, "20060102")
		if valueDate.IsZero() {
			fmt.Fprintf(os.Stderr, "ERROR: unable to parse -value-date %q\n", *flagValueDate)
			os.Exit(1)
		}
	}

	source, err := ioutil.ReadFile(*flagInput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: reading %s: %v\n", *flagInput, err)
		os.Exit(1)
	}
	instructions, err := spreadsheet.ReadInstructions(bytes.NewReader(source))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	if len(instructions) == 0 {
		fmt.Fprintf(os.Stderr, "ERROR: no payment instructions found in %s\n", *flagInput)
		os.Exit(1)
	}

	directory := banks.NewDirectory(cfg.Banks.Mapping, cfg.Banks.DefaultBIC)
	service := batches.NewService(logger, directory)

	file, err := service.BuildFile(cfg.Organisation.Profile(), valueDate, instructions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	output := *flagOutput
	if output == "" {
		output = file.Filename() + ".txt"
	}
	if err := ioutil.WriteFile(output, file.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: writing %s: %v\n", output, err)
		os.Exit(1)
	}

	logger.Log(
		"output", output,
		"details", len(file.Details),
		"total", file.TotalAmount().String(),
		"hashTotal", file.HashTotal())
}
