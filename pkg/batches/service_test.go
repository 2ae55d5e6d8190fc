// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package batches

import (
	"strings"
	"testing"
	"time"

	"github.com/moov-io/giro/pkg/banks"
	"github.com/moov-io/giro/pkg/model"

	"github.com/go-kit/kit/log"
)

func testProfile() model.OrganisationProfile {
	return model.OrganisationProfile{
		Name:               "ACME PTE LTD",
		AccountNumber:      "1234567890",
		BIC:                "UOVBSGSGXXX",
		CustomerReference:  "ACMEREF",
		PaymentDescription: "SALARY",
		ProcessingMode:     model.NormalGIRO,
	}
}

func testInstruction(ordinal int, bankName string) model.PaymentInstruction {
	amt, _ := model.NewAmountFromInt("SGD", 10050)
	return model.PaymentInstruction{
		Ordinal:       ordinal,
		RecipientName: "JOHN TAN",
		BankName:      bankName,
		AccountNumber: "987654",
		AccountName:   "JOHN TAN",
		Email:         "john@example.com",
		Amount:        *amt,
	}
}

func TestService__BuildFile(t *testing.T) {
	service := NewService(log.NewNopLogger(), banks.NewDirectory(nil, ""))

	effectiveDate := time.Date(2023, time.August, 15, 0, 0, 0, 0, time.UTC)
	file, err := service.BuildFile(testProfile(), effectiveDate, []model.PaymentInstruction{
		testInstruction(1, "UOB - 7375"),
		testInstruction(2, "OCBC - 7339"),
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(file.Details) != 2 {
		t.Fatalf("got %d details", len(file.Details))
	}
	if file.Details[0].BIC != "UOVBSGSGXXX" {
		t.Errorf("got %q", file.Details[0].BIC)
	}
	if file.Details[1].BIC != "OCBCSGSGXXX" {
		t.Errorf("got %q", file.Details[1].BIC)
	}
	if v := file.TotalAmount().String(); v != "SGD 201.00" {
		t.Errorf("total %q", v)
	}
	if len(file.HashTotal()) != 16 {
		t.Errorf("hash total %q", file.HashTotal())
	}
}

func TestService__unknownBankFallsBack(t *testing.T) {
	service := NewService(log.NewNopLogger(), banks.NewDirectory(nil, "UOVBSGSGXXX"))

	file, err := service.BuildFile(testProfile(), time.Now(), []model.PaymentInstruction{
		testInstruction(1, "Some Credit Union"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if file.Details[0].BIC != "UOVBSGSGXXX" {
		t.Errorf("got %q", file.Details[0].BIC)
	}
}

func TestService__descriptionOverride(t *testing.T) {
	service := NewService(log.NewNopLogger(), banks.NewDirectory(nil, ""))

	first := testInstruction(1, "UOB - 7375")
	second := testInstruction(2, "UOB - 7375")
	second.Description = "BONUS"

	file, err := service.BuildFile(testProfile(), time.Now(), []model.PaymentInstruction{first, second})
	if err != nil {
		t.Fatal(err)
	}
	if v := file.Details[0].RemittanceInformation; v != "SALARY" {
		t.Errorf("got %q", v)
	}
	if v := file.Details[1].RemittanceInformation; v != "BONUS" {
		t.Errorf("got %q", v)
	}
}

func TestService__invalidProfile(t *testing.T) {
	service := NewService(log.NewNopLogger(), banks.NewDirectory(nil, ""))

	profile := testProfile()
	profile.AccountNumber = ""

	if _, err := service.BuildFile(profile, time.Now(), nil); err == nil {
		t.Error("expected error")
	}
}

func TestService__invalidInstruction(t *testing.T) {
	service := NewService(log.NewNopLogger(), banks.NewDirectory(nil, ""))

	inst := testInstruction(3, "UOB - 7375")
	inst.RecipientName = "ANDR\xc3\x89 LEE"

	_, err := service.BuildFile(testProfile(), time.Now(), []model.PaymentInstruction{inst})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "row 3") {
		t.Errorf("got %v", err)
	}
}
