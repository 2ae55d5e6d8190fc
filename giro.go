// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package giro generates bulk payment interchange files for UOB's
// FAST/GIRO service (Format Specification v4.8). Each file is a batch
// header record, one detail record per payment instruction, and a
// trailer record carrying totals and a positional hash total.
package giro

// Version is the current semantic version of this module.
const Version = "v0.4.0"
