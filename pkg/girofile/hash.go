// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package girofile

import (
	"fmt"
	"strconv"
	"strings"
)

// HashTotalLength is the width of the trailer's integrity field.
const HashTotalLength = 16

// fieldCheckSummary sums (i+1) * byte value over the first
// min(len(field), limit) bytes. It runs over raw record bytes, so
// padding spaces contribute to the result. That is intentional: the
// receiving system computes the same sum over the same byte ranges.
func fieldCheckSummary(field string, limit int) int64 {
	if limit > len(field) {
		limit = len(field)
	}
	var total int64
	for i := 0; i < limit; i++ {
		total += int64(i+1) * int64(field[i])
	}
	return total
}

// CalculateHashTotal computes the file-level integrity value from the
// built header and detail records (the trailer is excluded). The
// result is the last 16 decimal digits of the accumulated sum,
// left-zero-padded. It guards against accidental corruption, not
// tampering by an adversary.
//
// Byte ranges below are zero-based slices of the 1055 byte records;
// the bank's format document numbers the same ranges from 1.
func CalculateHashTotal(headerRecord string, detailRecords []string) (string, error) {
	if len(headerRecord) != RecordLength {
		return "", fmt.Errorf("hash total: header record is %d bytes", len(headerRecord))
	}

	origBIC := headerRecord[35:46]
	origAccount := headerRecord[49:83]
	origName := headerRecord[83:223]
	paymentType := headerRecord[11]

	total1 := fieldCheckSummary(origBIC, 11) +
		fieldCheckSummary(origAccount, 34) +
		fieldCheckSummary(origName, 140)

	var paymentCode int64
	switch paymentType {
	case 'P':
		paymentCode = 20
	case 'R':
		paymentCode = 22
	default: // 'C' and anything else
		paymentCode = 30
	}

	// hashCode rotates 1,2,..,9,1,2,.. across detail records. The
	// cycle never returns to zero after the first record; a plain
	// mod-10 rotation produces an incompatible hash total.
	var total2 int64
	hashCode := int64(0)
	for i, record := range detailRecords {
		if len(record) != RecordLength {
			return "", fmt.Errorf("hash total: detail record %d is %d bytes", i+1, len(record))
		}
		if hashCode == 9 {
			hashCode = 1
		} else {
			hashCode++
		}

		recvBIC := record[7:18]
		recvAccount := record[18:52]
		recvName := record[52:192]
		currency := record[186:189]
		amount := record[189:207]
		purpose := record[277:281]

		total2 += fieldCheckSummary(recvBIC, 11) +
			fieldCheckSummary(recvAccount, 34)*hashCode +
			fieldCheckSummary(recvName, 140)*hashCode +
			fieldCheckSummary(currency, 3) +
			fieldCheckSummary(amount, 18) +
			fieldCheckSummary(purpose, 4) +
			paymentCode*hashCode
	}

	return reduceHashTotal(total1 + total2), nil
}

// reduceHashTotal keeps the last 16 decimal digits of the accumulated
// sum, left-zero-padding shorter values.
func reduceHashTotal(sum int64) string {
	out := strconv.FormatInt(sum, 10)
	if len(out) > HashTotalLength {
		out = out[len(out)-HashTotalLength:]
	}
	return strings.Repeat("0", HashTotalLength-len(out)) + out
}
