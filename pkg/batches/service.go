// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package batches

import (
	"fmt"
	"time"

	"github.com/moov-io/giro/pkg/banks"
	"github.com/moov-io/giro/pkg/girofile"
	"github.com/moov-io/giro/pkg/model"
	"github.com/moov-io/giro/x/mask"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

var (
	filesCreated = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Name: "giro_files_created",
		Help: "Count of payment batch files generated",
	}, nil)

	bankLookupFallbacks = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Name: "giro_bank_lookup_fallbacks",
		Help: "Count of payment instructions whose bank name was not recognized",
	}, nil)
)

// Service turns payment instructions into a fixed-width batch file.
type Service struct {
	logger    log.Logger
	directory *banks.Directory
}

func NewService(logger log.Logger, directory *banks.Directory) *Service {
	return &Service{
		logger:    logger,
		directory: directory,
	}
}

// BankNames returns every bank name instructions can carry, for
// upload forms to offer as choices.
func (s *Service) BankNames() []string {
	return s.directory.Names()
}

// BuildFile validates the organisation profile and every instruction,
// resolves each receiving BIC and renders the batch file. Instructions
// naming an unknown bank fall back to the directory's default BIC with
// a warning rather than failing the batch.
func (s *Service) BuildFile(profile model.OrganisationProfile, effectiveDate time.Time, instructions []model.PaymentInstruction) (*girofile.File, error) {
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("organisation: %v", err)
	}

	file := girofile.NewFile(profile, effectiveDate)
	for i := range instructions {
		inst := instructions[i]
		if err := inst.Validate(); err != nil {
			return nil, err
		}

		bic, found := s.directory.Lookup(inst.BankName)
		if !found {
			bankLookupFallbacks.Add(1)
			s.logger.Log(
				"batches", fmt.Sprintf("unknown bank %q on row %d, using default BIC", inst.BankName, inst.Ordinal),
				"bic", bic,
				"account", mask.AccountNumber(inst.AccountNumber))
		}

		description := inst.Description
		if description == "" {
			description = profile.PaymentDescription
		}

		file.AddDetail(girofile.PaymentDetail{
			BIC:                   bic,
			AccountNumber:         model.CleanAccountNumber(inst.AccountNumber),
			AccountName:           inst.AccountName,
			Amount:                inst.Amount,
			RemittanceInformation: description,
			RecipientName:         inst.RecipientName,
			Email:                 inst.Email,
		})
	}

	if err := file.Create(); err != nil {
		return nil, err
	}
	filesCreated.Add(1)
	return file, nil
}
