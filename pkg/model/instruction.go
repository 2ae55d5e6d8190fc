// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package model

import (
	"fmt"
	"strings"
)

// PaymentInstruction is one row of a payment run: a single recipient
// and the amount they are to be paid.
type PaymentInstruction struct {
	// Ordinal is the row's identifier from the source spreadsheet.
	// The sequence number written into each detail record is the
	// 1-based position within the cleaned batch, not this value.
	Ordinal int `json:"ordinal"`

	// RecipientName is the display name used on the payment advice.
	RecipientName string `json:"recipientName"`

	// BankName identifies the receiving bank, i.e. "UOB - 7375".
	BankName string `json:"bankName"`

	// AccountNumber is the receiving account, digits only.
	AccountNumber string `json:"accountNumber"`

	// AccountName is the name on the receiving account.
	AccountName string `json:"accountName"`

	Email string `json:"email"`

	// Description overrides the organisation's default payment
	// description for this row when set.
	Description string `json:"description,omitempty"`

	Amount Amount `json:"amount"`
}

// CleanAccountNumber strips the decimal artifacts numeric spreadsheet
// cells leave behind (i.e. "987654.0") from an account number.
func CleanAccountNumber(num string) string {
	num = strings.TrimSuffix(num, ".0")
	return strings.ReplaceAll(num, ".", "")
}

// Validate rejects an instruction missing any critical field so a
// malformed detail record is never built. Upstream readers filter
// such rows already, so a failure here names the row and field for
// the caller's error report.
func (p PaymentInstruction) Validate() error {
	if p.Ordinal <= 0 {
		return fmt.Errorf("row %d: missing ordinal identifier", p.Ordinal)
	}
	if strings.TrimSpace(p.RecipientName) == "" {
		return fmt.Errorf("row %d: missing recipient name", p.Ordinal)
	}
	if strings.TrimSpace(p.AccountNumber) == "" {
		return fmt.Errorf("row %d: missing account number", p.Ordinal)
	}
	if err := p.Amount.Validate(); err != nil {
		return fmt.Errorf("row %d: amount: %v", p.Ordinal, err)
	}
	fields := map[string]string{
		"recipientName": p.RecipientName,
		"bankName":      p.BankName,
		"accountNumber": p.AccountNumber,
		"accountName":   p.AccountName,
		"email":         p.Email,
		"description":   p.Description,
	}
	for name, value := range fields {
		if err := CheckASCII(value); err != nil {
			return fmt.Errorf("row %d: %s: %v", p.Ordinal, name, err)
		}
	}
	return nil
}

// CheckASCII returns an error if value contains any byte outside the
// ASCII range. The output charset is guaranteed to the bank, so
// non-ASCII content fails the batch rather than being substituted.
func CheckASCII(value string) error {
	for i := 0; i < len(value); i++ {
		if value[i] > 0x7f {
			return fmt.Errorf("non-ASCII byte 0x%02x at offset %d", value[i], i)
		}
	}
	return nil
}
