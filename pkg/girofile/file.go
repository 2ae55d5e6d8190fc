// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package girofile renders payment batches into UOB's FAST/GIRO bulk
// interchange format (Format Specification v4.8): a Type 1 header,
// one Type 2 record per payment, and a Type 9 trailer, each exactly
// 1055 ASCII bytes and CRLF terminated.
package girofile

import (
	"fmt"
	"strings"
	"time"

	"github.com/moov-io/giro/pkg/model"
)

const (
	// RecordLength is the exact byte length of every record type.
	RecordLength = 1055

	// MaxDetailRecords bounds batch size. It keeps memory use sane
	// and keeps the int64 hash accumulator far from overflow (each
	// detail contributes under 30M to the sum).
	MaxDetailRecords = 100000

	lineTerminator = "\r\n"
)

// File is one complete batch. Populate Header and Details, then call
// Create. Files hold no shared state, so independent batches can be
// built concurrently.
type File struct {
	Header  BatchHeader
	Details []PaymentDetail

	// Trailer is populated by Create once totals and the hash are final.
	Trailer BatchTrailer

	contents string
}

// NewFile returns a File for the organisation with both batch dates
// set from effectiveDate.
func NewFile(profile model.OrganisationProfile, effectiveDate time.Time) *File {
	return &File{
		Header: NewBatchHeader(profile, effectiveDate),
	}
}

// AddDetail appends a payment to the batch. Sequence numbers are
// assigned during Create from batch order, so callers only supply
// payment fields.
func (f *File) AddDetail(detail PaymentDetail) {
	f.Details = append(f.Details, detail)
}

// Create builds every record, computes the hash total, and assembles
// the final output buffer. Encoding is all-or-nothing: any error
// leaves no partial output behind.
func (f *File) Create() error {
	f.contents = ""

	if len(f.Details) > MaxDetailRecords {
		return fmt.Errorf("girofile: %d details exceeds maximum of %d", len(f.Details), MaxDetailRecords)
	}

	header, err := f.Header.build()
	if err != nil {
		return fmt.Errorf("girofile: header: %v", err)
	}

	var totalCents int64
	details := make([]string, len(f.Details))
	for i := range f.Details {
		// Sequence numbers are 1-based batch positions. They feed the
		// end-to-end ID, so an upstream row number must not leak in.
		f.Details[i].SequenceNumber = i + 1

		record, err := f.Details[i].build()
		if err != nil {
			return fmt.Errorf("girofile: %v", err)
		}
		details[i] = record
		totalCents += f.Details[i].Amount.Int64()
	}

	hashTotal, err := CalculateHashTotal(header, details)
	if err != nil {
		return fmt.Errorf("girofile: %v", err)
	}

	f.Trailer = BatchTrailer{
		TotalAmountCents: totalCents,
		TotalCount:       len(details),
		HashTotal:        hashTotal,
	}
	trailer, err := f.Trailer.build()
	if err != nil {
		return fmt.Errorf("girofile: %v", err)
	}

	var out strings.Builder
	out.WriteString(header)
	out.WriteString(lineTerminator)
	for i := range details {
		out.WriteString(details[i])
		out.WriteString(lineTerminator)
	}
	out.WriteString(trailer)
	out.WriteString(lineTerminator)
	f.contents = out.String()

	return nil
}

// Bytes returns the assembled file. Create must have been called.
func (f *File) Bytes() []byte {
	return []byte(f.contents)
}

// HashTotal returns the integrity value embedded in the trailer.
func (f *File) HashTotal() string {
	return f.Trailer.HashTotal
}

// TotalAmount returns the batch total as an Amount.
func (f *File) TotalAmount() *model.Amount {
	amt, _ := model.NewAmountFromInt(currencyCode, f.Trailer.TotalAmountCents)
	if amt == nil {
		return &model.Amount{}
	}
	return amt
}

// Filename returns the derived batch file name without extension.
func (f *File) Filename() string {
	return f.Header.FileName
}

// checkRecord asserts the two invariants every built record must
// hold: exactly RecordLength bytes and ASCII throughout. A length
// failure means the field widths drifted, which is a programming
// error, not a data error.
func checkRecord(record, name string) (string, error) {
	if len(record) != RecordLength {
		return "", fmt.Errorf("%s: built %d bytes, want %d", name, len(record), RecordLength)
	}
	if err := model.CheckASCII(record); err != nil {
		return "", fmt.Errorf("%s: %v", name, err)
	}
	return record, nil
}
