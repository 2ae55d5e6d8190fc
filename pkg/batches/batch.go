// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package batches generates fixed-width payment files from uploaded
// spreadsheets and keeps a record of every batch for later download.
package batches

import (
	"time"

	"github.com/moov-io/giro/pkg/model"
)

// Batch is the stored summary of one generated payment file. Account
// numbers never appear here, only counts and totals.
type Batch struct {
	BatchID      string       `json:"batchID"`
	Organisation string       `json:"organisation"`
	FileName     string       `json:"fileName"`
	DetailCount  int          `json:"detailCount"`
	TotalAmount  model.Amount `json:"totalAmount"`
	HashTotal    string       `json:"hashTotal"`

	// SourceSHA256 fingerprints the uploaded spreadsheet so repeat
	// submissions of the same workbook can be spotted.
	SourceSHA256 string `json:"sourceSHA256"`

	Created time.Time `json:"created"`
}
