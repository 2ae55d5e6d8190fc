// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
)

var (
	// ErrDifferentCurrencies is returned when an operation on an Amount instance is attempted with another Amount of a different currency (symbol).
	ErrDifferentCurrencies = errors.New("different currencies")

	// ErrNegativeAmount is returned when a payment amount parses below zero.
	ErrNegativeAmount = errors.New("negative amount")
)

// Amount represents units of a particular currency.
type Amount struct {
	number int64
	symbol string // ISO 4217, i.e. SGD, USD
}

// Int64 returns the currency amount in integer cents.
// Example: "SGD 1.11" returns 111
func (a *Amount) Int64() int64 {
	if a == nil {
		return 0
	}
	return a.number
}

func (a *Amount) Validate() error {
	if a == nil {
		return errors.New("nil Amount")
	}
	_, err := currency.ParseISO(a.symbol)
	return err
}

func (a Amount) Equal(other Amount) bool {
	return a.String() == other.String()
}

// Plus returns an Amount of adding both Amount instances together.
// Currency symbols must match for Plus to return without errors.
func (a Amount) Plus(other Amount) (Amount, error) {
	if a.symbol != other.symbol {
		return a, ErrDifferentCurrencies
	}
	return Amount{number: a.number + other.number, symbol: a.symbol}, nil
}

// NewAmountFromInt returns an Amount object after converting an integer amount (in cents)
// and validating the ISO 4217 currency symbol.
func NewAmountFromInt(symbol string, number int64) (*Amount, error) {
	if number < 0 {
		return nil, ErrNegativeAmount
	}
	sym, err := currency.ParseISO(symbol)
	if err != nil {
		return nil, err
	}
	return &Amount{number: number, symbol: sym.String()}, nil
}

// NewAmountFromFloat converts a decimal amount into integer cents by
// multiplying by 100 and truncating. Spreadsheet cells arrive as floats
// and the bank's reference converter truncates rather than rounds, so
// this must too for generated files to stay byte-identical.
func NewAmountFromFloat(symbol string, amount float64) (*Amount, error) {
	if amount < 0 {
		return nil, ErrNegativeAmount
	}
	return NewAmountFromInt(symbol, int64(amount*100))
}

// NewAmount returns an Amount object after validating the ISO 4217 currency symbol.
func NewAmount(symbol string, number string) (*Amount, error) {
	var amt Amount
	if err := amt.FromString(fmt.Sprintf("%s %s", symbol, number)); err != nil {
		return nil, err
	}
	return &amt, nil
}

// String returns an amount formatted with the currency.
// Examples:
//   SGD 12.53
//   SGD 0.02
//
// The symbol returned corresponds to the ISO 4217 standard.
// Only one period used to signify decimal value will be included.
func (a *Amount) String() string {
	if a == nil || a.symbol == "" || a.number < 0 {
		return "SGD 0.00"
	}
	return fmt.Sprintf("%s %s", a.symbol, formattedNumber(a.number))
}

func formattedNumber(number int64) string {
	if number <= 0 {
		return "0.00"
	}
	if number < 10 {
		return fmt.Sprintf("0.0%d", number)
	}
	if number < 100 {
		return fmt.Sprintf("0.%d", number)
	}
	str := fmt.Sprintf("%d", number)
	parts := []string{str[:len(str)-2], str[len(str)-2:]}
	return strings.Join(parts, ".")
}

// FromString attempts to parse str as a valid currency symbol and
// the quantity.
// Examples:
//   SGD 12.53
func (a *Amount) FromString(str string) error {
	if a == nil {
		a = &Amount{}
	}

	parts := strings.Fields(str)
	if len(parts) != 2 {
		return fmt.Errorf("invalid Amount format: %q", str)
	}

	sym, err := currency.ParseISO(parts[0])
	if err != nil {
		return err
	}

	var number int64
	idx := strings.Index(parts[1], ".")
	if idx == -1 {
		// No decimal (i.e. "12") so treat as whole units
		whole, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return err
		}
		number = whole * 100
	} else {
		whole, err := strconv.ParseInt(parts[1][:idx], 10, 64)
		if err != nil {
			return err
		}
		dec, err := parseCents(parts[1][idx+1:])
		if err != nil {
			return err
		}
		number = (whole * 100) + dec
	}
	if number < 0 {
		return fmt.Errorf("unable to read %s", parts[1])
	}

	a.number = number
	a.symbol = sym.String()
	return nil
}

// parseCents reads the fractional part of an amount. Fractional cents
// are rejected since each detail record carries whole cents only.
func parseCents(str string) (int64, error) {
	if len(str) > 2 {
		if v := strings.TrimRight(str[2:], "0"); v != "" {
			return 0, fmt.Errorf("amount has fractional cents: .%s", str)
		}
		str = str[:2]
	}
	if len(str) == 1 {
		str += "0" // ".5" means 50 cents
	}
	return strconv.ParseInt(str, 10, 64)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return a.FromString(s)
}
