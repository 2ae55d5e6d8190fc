// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package girofile

import (
	"fmt"
	"strings"
)

// BatchTrailer is the Type 9 record closing every file. It is built
// only after every detail record and the hash total are final.
type BatchTrailer struct {
	// TotalAmountCents is the sum of every detail amount, in cents.
	TotalAmountCents int64

	// TotalCount is the number of detail records in the batch.
	TotalCount int

	// HashTotal is the 16 digit integrity value computed over the
	// header and detail records. It is embedded as-is, never
	// re-derived here.
	HashTotal string
}

// build renders the trailer as an exactly 1055 byte record.
//
// Positions (1-based): record type (1), total amount (2-19), total
// count (20-26), hash total (27-42), filler (43-1055).
func (t BatchTrailer) build() (string, error) {
	amount, err := FormatCents(t.TotalAmountCents)
	if err != nil {
		return "", fmt.Errorf("trailer: %v", err)
	}
	count, err := PadLeftZero(int64(t.TotalCount), 7)
	if err != nil {
		return "", fmt.Errorf("trailer: %v", err)
	}
	if len(t.HashTotal) != HashTotalLength {
		return "", fmt.Errorf("trailer: hash total %q is not %d digits", t.HashTotal, HashTotalLength)
	}

	var record strings.Builder
	record.WriteString("9")
	record.WriteString(amount)
	record.WriteString(count)
	record.WriteString(t.HashTotal)
	record.WriteString(PadRight("", 1013)) // filler

	return checkRecord(record.String(), "batch trailer")
}
