// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package girofile

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/moov-io/giro/pkg/model"
)

func TestFile__Create(t *testing.T) {
	when := time.Date(2023, time.August, 15, 0, 0, 0, 0, time.UTC)

	file := NewFile(testProfile(), when)
	amt, _ := model.NewAmount("SGD", "100.00")
	file.AddDetail(PaymentDetail{
		BIC:                   "UOVBSGSGXXX",
		AccountNumber:         "987654",
		AccountName:           "JOHN TAN",
		Amount:                *amt,
		RemittanceInformation: "PAY",
		RecipientName:         "JOHN TAN",
		Email:                 "john@example.com",
	})

	if err := file.Create(); err != nil {
		t.Fatal(err)
	}

	lines := bytes.Split(file.Bytes(), []byte("\r\n"))
	// trailing terminator leaves one empty element
	if len(lines) != 4 || len(lines[3]) != 0 {
		t.Fatalf("got %d lines", len(lines))
	}
	for i := 0; i < 3; i++ {
		if len(lines[i]) != RecordLength {
			t.Errorf("line %d is %d bytes", i+1, len(lines[i]))
		}
	}

	trailer := string(lines[2])
	// SGD 100.00 is 10,000 cents
	if v := trailer[1:19]; v != "000000000000010000" {
		t.Errorf("total amount %q", v)
	}
	if v := trailer[19:26]; v != "0000001" {
		t.Errorf("total count %q", v)
	}

	// the embedded hash total must reproduce from the built records
	want, err := CalculateHashTotal(string(lines[0]), []string{string(lines[1])})
	if err != nil {
		t.Fatal(err)
	}
	if v := trailer[26:42]; v != want {
		t.Errorf("hash total %q, want %q", v, want)
	}
	if file.HashTotal() != want {
		t.Errorf("HashTotal() = %q", file.HashTotal())
	}

	if v := file.TotalAmount().String(); v != "SGD 100.00" {
		t.Errorf("total amount %q", v)
	}
	if v := file.Filename(); v != "UGAI150800" {
		t.Errorf("filename %q", v)
	}
}

func TestFile__sequenceFromOrder(t *testing.T) {
	file := NewFile(testProfile(), time.Now())
	amt, _ := model.NewAmount("SGD", "1.00")
	for i := 0; i < 3; i++ {
		file.AddDetail(PaymentDetail{
			// a stale upstream sequence must be overwritten
			SequenceNumber: 99,
			BIC:            "DBSSSGSGXXX",
			AccountNumber:  "111",
			AccountName:    "A",
			Amount:         *amt,
			RecipientName:  "A",
		})
	}
	if err := file.Create(); err != nil {
		t.Fatal(err)
	}

	lines := bytes.Split(file.Bytes(), []byte("\r\n"))
	for i := 0; i < 3; i++ {
		detail := string(lines[i+1])
		want := PadRight("REF000"+string(rune('1'+i)), 35)
		if v := detail[207:242]; v != want {
			t.Errorf("detail %d end-to-end ID %q", i+1, v)
		}
	}
}

func TestFile__emptyBatch(t *testing.T) {
	when := time.Date(2023, time.August, 15, 0, 0, 0, 0, time.UTC)

	file := NewFile(testProfile(), when)
	if err := file.Create(); err != nil {
		t.Fatal(err)
	}

	lines := bytes.Split(file.Bytes(), []byte("\r\n"))
	if len(lines) != 3 || len(lines[2]) != 0 {
		t.Fatalf("got %d lines", len(lines))
	}

	trailer := string(lines[1])
	if v := trailer[19:26]; v != "0000000" {
		t.Errorf("total count %q", v)
	}
	if v := trailer[1:19]; v != "000000000000000000" {
		t.Errorf("total amount %q", v)
	}
	if v := trailer[26:42]; len(v) != 16 {
		t.Errorf("hash total %q", v)
	}
}

func TestFile__idempotent(t *testing.T) {
	when := time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)
	amt, _ := model.NewAmount("SGD", "52.10")

	build := func() []byte {
		file := NewFile(testProfile(), when)
		file.AddDetail(PaymentDetail{
			BIC:           "OCBCSGSGXXX",
			AccountNumber: "5551234",
			AccountName:   "MARY LIM",
			Amount:        *amt,
			RecipientName: "MARY LIM",
			Email:         "mary@example.com",
		})
		if err := file.Create(); err != nil {
			t.Fatal(err)
		}
		return file.Bytes()
	}

	if !bytes.Equal(build(), build()) {
		t.Error("two runs over identical input differ")
	}
}

func TestFile__nonASCII(t *testing.T) {
	file := NewFile(testProfile(), time.Now())
	amt, _ := model.NewAmount("SGD", "1.00")
	file.AddDetail(PaymentDetail{
		BIC:           "DBSSSGSGXXX",
		AccountNumber: "111",
		AccountName:   "ANDRÉ",
		Amount:        *amt,
		RecipientName: "ANDRÉ",
	})

	err := file.Create()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "non-ASCII") {
		t.Errorf("unexpected error: %v", err)
	}
	if len(file.Bytes()) != 0 {
		t.Error("partial output left behind")
	}
}

func TestFile__tooManyDetails(t *testing.T) {
	file := NewFile(testProfile(), time.Now())
	file.Details = make([]PaymentDetail, MaxDetailRecords+1)

	if err := file.Create(); err == nil {
		t.Error("expected error")
	}
}
