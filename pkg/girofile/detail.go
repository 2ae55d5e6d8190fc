// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package girofile

import (
	"fmt"
	"strings"

	"github.com/moov-io/giro/pkg/model"
)

// purposeCode 'OTHR' is written on every detail record.
const purposeCode = "OTHR"

// PaymentDetail is the Type 2 record for one payment instruction.
// The receiving BIC is expected to be resolved (with fallback) before
// the detail is built.
type PaymentDetail struct {
	// SequenceNumber is assigned by File.Create from the detail's
	// 1-based position in the batch and feeds the end-to-end ID.
	SequenceNumber int

	// BIC is the receiving bank identifier (max 11 characters)
	BIC string

	// AccountNumber is the receiving account, digits only (max 34 characters)
	AccountNumber string

	// AccountName is the name on the receiving account (max 140 characters)
	AccountName string

	Amount model.Amount

	// RemittanceInformation is the payment description shown on the
	// recipient's statement and advice (max 140 characters)
	RemittanceInformation string

	// RecipientName appears on the emailed payment advice (max 35 characters)
	RecipientName string

	// Email receives the payment advice (max 50 characters)
	Email string
}

// endToEndID builds the reference carried through to the receiving
// bank: "REF" plus the sequence number zero-padded to four digits.
func (d PaymentDetail) endToEndID() string {
	return fmt.Sprintf("REF%04d", d.SequenceNumber)
}

// build renders the detail as an exactly 1055 byte record.
//
// Positions (1-based): record type (1), receiving BIC (2-12),
// receiving account (13-46), receiving account name (47-186),
// currency (187-189), amount (190-207), end-to-end ID (208-242),
// mandate ID (243-277), purpose code (278-281), remittance
// information (282-421), ultimate payer/beneficiary (422-561),
// customer reference (562-577), payment advice fields (578-583),
// beneficiary name/address lines (584-863), city/country/postal
// (864-898), email (899-948), facsimile (949-968), payer name lines
// (969-1038), filler (1039-1055).
func (d PaymentDetail) build() (string, error) {
	amount, err := FormatCents(d.Amount.Int64())
	if err != nil {
		return "", fmt.Errorf("detail %d: %v", d.SequenceNumber, err)
	}

	var record strings.Builder
	record.WriteString("2")
	record.WriteString(PadRight(d.BIC, 11))
	record.WriteString(PadRight(model.CleanAccountNumber(d.AccountNumber), 34))
	record.WriteString(PadRight(d.AccountName, 140))
	record.WriteString(currencyCode)
	record.WriteString(amount)
	record.WriteString(PadRight(d.endToEndID(), 35))
	record.WriteString(PadRight("", 35)) // mandate ID
	record.WriteString(purposeCode)
	record.WriteString(PadRight(d.RemittanceInformation, 140))
	record.WriteString(PadRight("", 140)) // ultimate payer/beneficiary
	record.WriteString(PadRight("", 16))  // customer reference

	// Payment advice delivery: emailed, consolidated format.
	record.WriteString("Y")              // advice indicator
	record.WriteString(" ")              // delivery mode (post)
	record.WriteString("E")              // delivery mode (email)
	record.WriteString(PadRight("", 2))  // filler
	record.WriteString("2")              // advice format

	record.WriteString(PadRight(d.RecipientName, 35))
	record.WriteString(PadRight("", 35)) // beneficiary name line 2
	record.WriteString(PadRight("", 35)) // beneficiary name line 3
	record.WriteString(PadRight("", 35)) // beneficiary name line 4
	record.WriteString(PadRight("", 35)) // beneficiary address line 1
	record.WriteString(PadRight("", 35)) // beneficiary address line 2
	record.WriteString(PadRight("", 35)) // beneficiary address line 3
	record.WriteString(PadRight("", 35)) // beneficiary address line 4
	record.WriteString(PadRight("", 17)) // beneficiary city
	record.WriteString(PadRight("", 3))  // beneficiary country code
	record.WriteString(PadRight("", 15)) // beneficiary postal code
	record.WriteString(PadRight(d.Email, 50))
	record.WriteString(PadRight("", 20)) // facsimile number
	record.WriteString(PadRight("", 35)) // payer's name line 1
	record.WriteString(PadRight("", 35)) // payer's name line 2
	record.WriteString(PadRight("", 17)) // filler

	return checkRecord(record.String(), fmt.Sprintf("payment detail %d", d.SequenceNumber))
}
