// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package girofile

import (
	"strings"
	"testing"
)

func TestTrailer__build(t *testing.T) {
	trailer := BatchTrailer{
		TotalAmountCents: 10000000,
		TotalCount:       1,
		HashTotal:        "0000000123456789",
	}
	record, err := trailer.build()
	if err != nil {
		t.Fatal(err)
	}
	if len(record) != RecordLength {
		t.Fatalf("built %d bytes", len(record))
	}

	if record[0] != '9' {
		t.Errorf("record type %q", record[0])
	}
	if v := record[1:19]; v != "000000000010000000" {
		t.Errorf("total amount %q", v)
	}
	if v := record[19:26]; v != "0000001" {
		t.Errorf("total count %q", v)
	}
	if v := record[26:42]; v != "0000000123456789" {
		t.Errorf("hash total %q", v)
	}
	if v := record[42:]; v != strings.Repeat(" ", 1013) {
		t.Errorf("filler not blank: %q", v[:20])
	}
}

func TestTrailer__zeroBatch(t *testing.T) {
	trailer := BatchTrailer{
		TotalAmountCents: 0,
		TotalCount:       0,
		HashTotal:        strings.Repeat("0", 16),
	}
	record, err := trailer.build()
	if err != nil {
		t.Fatal(err)
	}
	if v := record[1:19]; v != "000000000000000000" {
		t.Errorf("total amount %q", v)
	}
	if v := record[19:26]; v != "0000000" {
		t.Errorf("total count %q", v)
	}
}

func TestTrailer__errors(t *testing.T) {
	// a count too wide for its field must abort, not truncate
	tr := BatchTrailer{TotalCount: 10000000, HashTotal: strings.Repeat("0", 16)}
	if _, err := tr.build(); err == nil {
		t.Error("expected error")
	}

	tr = BatchTrailer{TotalCount: 1, HashTotal: "123"}
	if _, err := tr.build(); err == nil {
		t.Error("expected error for short hash total")
	}

	tr = BatchTrailer{TotalAmountCents: -1, TotalCount: 1, HashTotal: strings.Repeat("0", 16)}
	if _, err := tr.build(); err == nil {
		t.Error("expected error for negative amount")
	}
}
