// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package girofile

import (
	"fmt"
	"strconv"
	"strings"
)

// amountDigits is the width of every monetary field in the format.
const amountDigits = 18

// PadRight truncates text to width bytes and pads the remainder with
// spaces. Over-long values are silently truncated, which is the
// field-fitting behavior the bank's format expects for alpha fields.
func PadRight(text string, width int) string {
	if len(text) > width {
		text = text[:width]
	}
	return text + strings.Repeat(" ", width-len(text))
}

// PadLeftZero formats n as decimal digits left-padded with zeros to
// exactly width bytes. A value needing more digits than width is an
// error because truncating an amount or count would corrupt the record.
func PadLeftZero(n int64, width int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("girofile: negative value %d for %d digit field", n, width)
	}
	out := strconv.FormatInt(n, 10)
	if len(out) > width {
		return "", fmt.Errorf("girofile: %d overflows %d digit field", n, width)
	}
	return strings.Repeat("0", width-len(out)) + out, nil
}

// FormatAmount converts a decimal currency amount into integer cents
// and formats it as an 18 digit zero-padded field.
//
// The conversion multiplies by 100 and truncates rather than rounding.
// That matches files the bank has already accepted, so keep it even
// though values near a half-cent boundary can land one cent low.
func FormatAmount(amount float64) (string, error) {
	if amount < 0 {
		return "", fmt.Errorf("girofile: negative amount %.2f", amount)
	}
	return PadLeftZero(int64(amount*100), amountDigits)
}

// FormatCents formats an amount already expressed in integer cents.
func FormatCents(cents int64) (string, error) {
	return PadLeftZero(cents, amountDigits)
}
