// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package model

import (
	"testing"
)

func validProfile() OrganisationProfile {
	return OrganisationProfile{
		Name:               "SINGAPORE OLYMPIC FOUNDATION",
		AccountNumber:      "3663050778",
		BIC:                "UOVBSGSGXXX",
		CustomerReference:  "SOFPLSAWARD",
		PaymentDescription: "SOFPLS SCHOLARSHIP",
		ProcessingMode:     NormalGIRO,
	}
}

func TestOrganisationProfile__Validate(t *testing.T) {
	if err := validProfile().Validate(); err != nil {
		t.Fatal(err)
	}

	p := validProfile()
	p.Name = ""
	if err := p.Validate(); err == nil {
		t.Error("expected error")
	}

	p = validProfile()
	p.AccountNumber = ""
	if err := p.Validate(); err == nil {
		t.Error("expected error")
	}

	p = validProfile()
	p.BIC = ""
	if err := p.Validate(); err == nil {
		t.Error("expected error")
	}

	p = validProfile()
	p.PaymentDescription = "prix d'excellence é"
	if err := p.Validate(); err == nil {
		t.Error("expected error for non-ASCII description")
	}
}

func TestProcessingMode(t *testing.T) {
	if err := NormalGIRO.Validate(); err != nil {
		t.Error(err)
	}
	if err := FastGIRO.Validate(); err != nil {
		t.Error(err)
	}
	if err := ProcessingMode("").Validate(); err == nil {
		t.Error("expected error")
	}
	if err := ProcessingMode("Z").Validate(); err == nil {
		t.Error("expected error")
	}
}
