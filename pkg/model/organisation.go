// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package model

import (
	"fmt"
)

// ProcessingMode selects the payment rail for a batch.
type ProcessingMode string

const (
	// NormalGIRO processes payments on the standard GIRO rail.
	NormalGIRO ProcessingMode = "B"

	// FastGIRO processes payments on the FAST rail at higher charges.
	FastGIRO ProcessingMode = "I"
)

func (m ProcessingMode) Validate() error {
	switch m {
	case NormalGIRO, FastGIRO:
		return nil
	}
	return fmt.Errorf("invalid processing mode: %q", string(m))
}

// OrganisationProfile describes the originating party of a batch.
// It is supplied once per batch and never mutated during encoding.
type OrganisationProfile struct {
	// Name is the originating account name (max 140 characters)
	Name string `json:"name"`

	// AccountNumber is the originating account (max 34 characters)
	AccountNumber string `json:"accountNumber"`

	// BIC is the originating bank's SWIFT/BIC code (max 11 characters)
	BIC string `json:"bic"`

	// CustomerReference is the bulk customer reference (max 16 characters)
	CustomerReference string `json:"customerReference"`

	// PaymentDescription appears as remittance information on every
	// detail record and on emailed payment advices (max 140 characters)
	PaymentDescription string `json:"paymentDescription"`

	ProcessingMode ProcessingMode `json:"processingMode"`
}

func (p OrganisationProfile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("organisation profile: missing name")
	}
	if p.AccountNumber == "" {
		return fmt.Errorf("organisation profile: missing account number")
	}
	if p.BIC == "" {
		return fmt.Errorf("organisation profile: missing BIC")
	}
	if err := p.ProcessingMode.Validate(); err != nil {
		return fmt.Errorf("organisation profile: %v", err)
	}
	fields := map[string]string{
		"name":               p.Name,
		"accountNumber":      p.AccountNumber,
		"bic":                p.BIC,
		"customerReference":  p.CustomerReference,
		"paymentDescription": p.PaymentDescription,
	}
	for name, value := range fields {
		if err := CheckASCII(value); err != nil {
			return fmt.Errorf("organisation profile: %s: %v", name, err)
		}
	}
	return nil
}
