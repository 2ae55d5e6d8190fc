// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package girofile

import (
	"strings"
	"testing"
	"time"

	"github.com/moov-io/giro/pkg/model"
)

// headerWidths mirrors the positional table in the format document.
// Their sum must equal RecordLength; a drift here corrupts every
// offset after the drifted field.
var headerWidths = []int{1, 10, 1, 10, 1, 12, 11, 3, 34, 140, 8, 8, 140, 16, 10, 105, 105, 440}

func TestHeader__widths(t *testing.T) {
	sum := 0
	for _, w := range headerWidths {
		sum += w
	}
	if sum != RecordLength {
		t.Fatalf("header field widths sum to %d, want %d", sum, RecordLength)
	}
}

func TestHeader__build(t *testing.T) {
	when := time.Date(2023, time.August, 15, 0, 0, 0, 0, time.UTC)
	record, err := NewBatchHeader(testProfile(), when).build()
	if err != nil {
		t.Fatal(err)
	}
	if len(record) != RecordLength {
		t.Fatalf("built %d bytes", len(record))
	}

	// spot check byte positions (zero-based slices)
	if record[0] != '1' {
		t.Errorf("record type %q", record[0])
	}
	if v := record[1:11]; v != "UGAI150800" {
		t.Errorf("file name %q", v)
	}
	if record[11] != 'P' {
		t.Errorf("payment type %q", record[11])
	}
	if v := record[12:22]; v != "NORMAL    " {
		t.Errorf("service type %q", v)
	}
	if record[22] != 'B' {
		t.Errorf("processing mode %q", record[22])
	}
	if v := record[35:46]; v != "UOVBSGSGXXX" {
		t.Errorf("BIC %q", v)
	}
	if v := record[46:49]; v != "SGD" {
		t.Errorf("currency %q", v)
	}
	if v := record[49:83]; v != PadRight("123", 34) {
		t.Errorf("account %q", v)
	}
	if v := record[83:223]; v != PadRight("ACME", 140) {
		t.Errorf("name %q", v)
	}
	if v := record[223:231]; v != "20230815" {
		t.Errorf("creation date %q", v)
	}
	if v := record[231:239]; v != "20230815" {
		t.Errorf("value date %q", v)
	}
	if v := record[379:395]; v != PadRight("REF1", 16) {
		t.Errorf("customer reference %q", v)
	}
	if v := record[615:]; v != strings.Repeat(" ", 440) {
		t.Errorf("filler not blank: %q", v[:20])
	}
}

func TestHeader__fastMode(t *testing.T) {
	profile := testProfile()
	profile.ProcessingMode = model.FastGIRO

	when := time.Date(2023, time.January, 2, 0, 0, 0, 0, time.UTC)
	record, err := NewBatchHeader(profile, when).build()
	if err != nil {
		t.Fatal(err)
	}
	if record[22] != 'I' {
		t.Errorf("processing mode %q", record[22])
	}
	if v := record[1:11]; v != "UGAI020100" {
		t.Errorf("file name %q", v)
	}
}

func TestHeader__longFields(t *testing.T) {
	profile := testProfile()
	profile.Name = strings.Repeat("N", 200)
	profile.AccountNumber = strings.Repeat("4", 60)
	profile.CustomerReference = strings.Repeat("R", 40)

	record, err := NewBatchHeader(profile, time.Now()).build()
	if err != nil {
		t.Fatal(err)
	}
	if len(record) != RecordLength {
		t.Fatalf("built %d bytes", len(record))
	}
}

func TestHeader__invalidMode(t *testing.T) {
	profile := testProfile()
	profile.ProcessingMode = model.ProcessingMode("X")

	if _, err := NewBatchHeader(profile, time.Now()).build(); err == nil {
		t.Error("expected error")
	}
}

func TestHeader__Filename(t *testing.T) {
	when := time.Date(2023, time.December, 5, 0, 0, 0, 0, time.UTC)
	if v := Filename(when); v != "UGAI051200" {
		t.Errorf("got %q", v)
	}
}
