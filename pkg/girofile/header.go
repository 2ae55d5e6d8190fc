// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package girofile

import (
	"fmt"
	"strings"
	"time"

	"github.com/moov-io/giro/pkg/model"
)

const (
	// serviceType is fixed for bulk payment batches.
	serviceType = "NORMAL"

	// paymentType 'P' marks the batch as outgoing payments.
	paymentType = "P"

	// currencyCode is the only currency the format carries.
	currencyCode = "SGD"

	dateFormat = "20060102" // YYYYMMDD
)

// BatchHeader is the Type 1 record opening every file. It is derived
// from the organisation profile plus the batch dates and is immutable
// once built.
type BatchHeader struct {
	// FileName is the derived name, i.e. "UGAI150800" (max 10 characters)
	FileName string

	ProcessingMode model.ProcessingMode

	// BIC is the originating bank identifier (max 11 characters)
	BIC string

	// AccountNumber is the originating account (max 34 characters)
	AccountNumber string

	// AccountName is the originating account name (max 140 characters)
	AccountName string

	// CustomerReference is the bulk customer reference (max 16 characters)
	CustomerReference string

	// CreationDate and ValueDate are written as YYYYMMDD.
	CreationDate time.Time
	ValueDate    time.Time
}

// NewBatchHeader builds a header descriptor from an organisation
// profile. Both batch dates default to effectiveDate, matching how
// the bank's portal derives them.
func NewBatchHeader(profile model.OrganisationProfile, effectiveDate time.Time) BatchHeader {
	return BatchHeader{
		FileName:          Filename(effectiveDate),
		ProcessingMode:    profile.ProcessingMode,
		BIC:               profile.BIC,
		AccountNumber:     profile.AccountNumber,
		AccountName:       profile.Name,
		CustomerReference: profile.CustomerReference,
		CreationDate:      effectiveDate,
		ValueDate:         effectiveDate,
	}
}

// Filename derives the batch file name from the creation date:
// "UGAI" + day + month + "00". Callers append ".txt" when writing.
func Filename(creationDate time.Time) string {
	return fmt.Sprintf("UGAI%s00", creationDate.Format("0201"))
}

// build renders the header as an exactly 1055 byte record.
//
// Positions (1-based): record type (1), file name (2-11), payment
// type (12), service type (13-22), processing mode (23), company ID
// (24-35), originating BIC (36-46), currency (47-49), originating
// account (50-83), originating name (84-223), creation date (224-231),
// value date (232-239), ultimate originator (240-379), customer
// reference (380-395), software label (396-405), advice header lines
// (406-510, 511-615), filler (616-1055).
func (h BatchHeader) build() (string, error) {
	if err := h.ProcessingMode.Validate(); err != nil {
		return "", err
	}

	var record strings.Builder
	record.WriteString("1")
	record.WriteString(PadRight(h.FileName, 10))
	record.WriteString(paymentType)
	record.WriteString(PadRight(serviceType, 10))
	record.WriteString(string(h.ProcessingMode))
	record.WriteString(PadRight("", 12)) // company ID, conditional
	record.WriteString(PadRight(h.BIC, 11))
	record.WriteString(currencyCode)
	record.WriteString(PadRight(h.AccountNumber, 34))
	record.WriteString(PadRight(h.AccountName, 140))
	record.WriteString(h.CreationDate.Format(dateFormat))
	record.WriteString(h.ValueDate.Format(dateFormat))
	record.WriteString(PadRight("", 140)) // ultimate originating customer
	record.WriteString(PadRight(h.CustomerReference, 16))
	record.WriteString(PadRight("", 10))  // software label
	record.WriteString(PadRight("", 105)) // payment advice header line 1
	record.WriteString(PadRight("", 105)) // payment advice header line 2
	record.WriteString(PadRight("", 440)) // filler

	return checkRecord(record.String(), "batch header")
}
