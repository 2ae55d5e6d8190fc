// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package spreadsheet reads payment runs out of the Excel workbooks
// organisations upload. It filters out incomplete and summary rows so
// the encoder downstream only ever sees complete instructions.
package spreadsheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/moov-io/giro/pkg/model"

	"github.com/xuri/excelize/v2"
)

// Column names expected in the header row. Workbooks in the wild
// carry trailing spaces on a couple of these, so matching trims
// surrounding whitespace.
const (
	colOrdinal       = "No"
	colRecipientName = "Name of Recipient"
	colEmail         = "Email"
	colBank          = "Bank"
	colAccountName   = "Bank Account Name"
	colAccountNumber = "Bank Account Number"
	colDescription   = "Description"
	colAmount        = "Amount"
)

var requiredColumns = []string{
	colOrdinal, colRecipientName, colBank, colAccountName, colAccountNumber, colAmount,
}

// ReadInstructions parses the first sheet of an xlsx workbook into
// ordered payment instructions. Rows missing an ordinal, recipient
// name, account number, or amount are dropped; workbooks commonly
// carry a totals row that trips all four.
func ReadInstructions(r io.Reader) ([]model.PaymentInstruction, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: open: %v", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("spreadsheet: no sheets found")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: read %s: %v", sheetName, err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("spreadsheet: %s has no header row", sheetName)
	}

	columns, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	var out []model.PaymentInstruction
	for _, row := range rows[1:] {
		inst, ok := readRow(columns, row)
		if !ok {
			continue
		}
		out = append(out, inst)
	}
	return out, nil
}

// mapColumns locates each expected column in the header row. Every
// required column must be present; Email and Description are optional.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i := range header {
		columns[strings.TrimSpace(header[i])] = i
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("spreadsheet: missing columns: %s", strings.Join(missing, ", "))
	}
	return columns, nil
}

func readRow(columns map[string]int, row []string) (model.PaymentInstruction, bool) {
	cell := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	ordinal, err := strconv.Atoi(strings.TrimSuffix(cell(colOrdinal), ".0"))
	if err != nil || ordinal <= 0 {
		return model.PaymentInstruction{}, false
	}
	recipient := cell(colRecipientName)
	account := model.CleanAccountNumber(cell(colAccountNumber))
	rawAmount := cell(colAmount)
	if recipient == "" || account == "" || rawAmount == "" {
		return model.PaymentInstruction{}, false
	}

	value, err := strconv.ParseFloat(rawAmount, 64)
	if err != nil {
		return model.PaymentInstruction{}, false
	}
	amt, err := model.NewAmountFromFloat("SGD", value)
	if err != nil {
		return model.PaymentInstruction{}, false
	}

	return model.PaymentInstruction{
		Ordinal:       ordinal,
		RecipientName: recipient,
		BankName:      cell(colBank),
		AccountNumber: account,
		AccountName:   cell(colAccountName),
		Email:         cell(colEmail),
		Description:   cell(colDescription),
		Amount:        *amt,
	}, true
}
