// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package banks resolves human-readable Singapore bank names to the
// 11 character BIC codes written into detail records.
package banks

import (
	"sort"
	"strings"
)

// DefaultBIC is written when a bank name can't be resolved. Lookups
// never fail a batch; callers are expected to log the miss.
const DefaultBIC = "DBSSSGSGXXX"

// bicCodes maps the bank names found in payment spreadsheets to BIC
// codes. Names include the bank's clearing code, i.e. "UOB - 7375".
var bicCodes = map[string]string{
	"DBS/POSB - 7171":                  "DBSSSGSGXXX",
	"OCBC - 7339":                      "OCBCSGSGXXX",
	"UOB - 7375":                       "UOVBSGSGXXX",
	"Standard Chartered - 9496":        "SCBLSGSGXXX",
	"HSBC - 7232":                      "HSBCSGSGXXX",
	"Citibank - 7214":                  "CITISGSGXXX",
	"Maybank - 7302":                   "MBBESGSGXXX",
	"Maybank Singapore Limited - 7302": "MBBESGSGXXX",
	"Bank of China - 7366":             "BKCHSGSGXXX",
}

// Directory is an immutable bank-name to BIC mapping. Names are
// matched case-insensitively with surrounding whitespace ignored,
// so entries survive config loaders that fold map keys to lower
// case. The zero value is unusable; construct one with NewDirectory.
type Directory struct {
	codes      map[string]string // keyed by normalized name
	names      []string
	defaultBIC string
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NewDirectory builds a Directory from the built-in bank table plus
// any extra mappings (i.e. from config). Extra entries win over the
// built-in table. The maps are copied, so a Directory never changes
// after construction.
func NewDirectory(extra map[string]string, defaultBIC string) *Directory {
	codes := make(map[string]string, len(bicCodes)+len(extra))
	var names []string
	for name, bic := range bicCodes {
		codes[normalize(name)] = bic
		names = append(names, name)
	}
	for name, bic := range extra {
		key := normalize(name)
		if _, exists := codes[key]; !exists {
			names = append(names, name)
		}
		codes[key] = bic
	}
	sort.Strings(names)
	if defaultBIC == "" {
		defaultBIC = DefaultBIC
	}
	return &Directory{codes: codes, names: names, defaultBIC: defaultBIC}
}

// Lookup resolves a bank name to its BIC. Unknown names return the
// directory's default BIC and false so callers can surface a warning
// while the batch continues.
func (d *Directory) Lookup(bankName string) (string, bool) {
	if bic, ok := d.codes[normalize(bankName)]; ok {
		return bic, true
	}
	return d.defaultBIC, false
}

// Names returns every bank name the directory can resolve, sorted.
func (d *Directory) Names() []string {
	return append([]string(nil), d.names...)
}
