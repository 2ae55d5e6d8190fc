// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package batches

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/moov-io/base"
	"github.com/moov-io/giro/internal/hash"
	"github.com/moov-io/giro/pkg/id"
	"github.com/moov-io/giro/pkg/model"
	"github.com/moov-io/giro/pkg/spreadsheet"
	"github.com/moov-io/giro/pkg/util"
	"github.com/moov-io/giro/x/route"

	"github.com/go-kit/kit/log"
	"github.com/gorilla/mux"
)

// 10MB, well above any payment run we've seen
const maxUploadSize = 10 << 20

type Router struct {
	Logger   log.Logger
	Repo     Repository
	Service  *Service
	Defaults model.OrganisationProfile

	GetBatches   http.HandlerFunc
	CreateBatch  http.HandlerFunc
	GetBatch     http.HandlerFunc
	GetBatchFile http.HandlerFunc
	DeleteBatch  http.HandlerFunc
	GetBankNames http.HandlerFunc
}

func NewRouter(logger log.Logger, repo Repository, service *Service, defaults model.OrganisationProfile) *Router {
	return &Router{
		Logger:       logger,
		Repo:         repo,
		Service:      service,
		Defaults:     defaults,
		GetBatches:   GetBatches(logger, repo),
		CreateBatch:  CreateBatch(logger, repo, service, defaults),
		GetBatch:     GetBatch(logger, repo),
		GetBatchFile: GetBatchFile(logger, repo),
		DeleteBatch:  DeleteBatch(logger, repo),
		GetBankNames: GetBankNames(logger, service),
	}
}

func (c *Router) RegisterRoutes(r *mux.Router) {
	r.Methods("GET").Path("/batches").HandlerFunc(c.GetBatches)
	r.Methods("POST").Path("/batches").HandlerFunc(c.CreateBatch)
	r.Methods("GET").Path("/batches/{batchID}").HandlerFunc(c.GetBatch)
	r.Methods("GET").Path("/batches/{batchID}/file").HandlerFunc(c.GetBatchFile)
	r.Methods("DELETE").Path("/batches/{batchID}").HandlerFunc(c.DeleteBatch)
	r.Methods("GET").Path("/banks").HandlerFunc(c.GetBankNames)
}

func getBatchID(r *http.Request) id.Batch {
	return id.Batch(route.ReadPathID("batchID", r))
}

func GetBatches(logger log.Logger, repo Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responder := route.NewResponder(logger, w, r)

		batches, err := repo.GetBatches()
		if err != nil {
			responder.Problem(err)
			return
		}
		if batches == nil {
			batches = []*Batch{}
		}

		responder.Respond(func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(batches)
		})
	}
}

// readProfile merges multipart form fields over the configured
// organisation defaults.
func readProfile(defaults model.OrganisationProfile, r *http.Request) model.OrganisationProfile {
	profile := defaults
	if v := r.FormValue("name"); v != "" {
		profile.Name = v
	}
	if v := r.FormValue("accountNumber"); v != "" {
		profile.AccountNumber = v
	}
	if v := r.FormValue("bic"); v != "" {
		profile.BIC = v
	}
	if v := r.FormValue("customerReference"); v != "" {
		profile.CustomerReference = v
	}
	if v := r.FormValue("paymentDescription"); v != "" {
		profile.PaymentDescription = v
	}
	if v := r.FormValue("processingMode"); v != "" {
		profile.ProcessingMode = model.ProcessingMode(v)
	}
	return profile
}

// readValueDate parses an optional valueDate form field, defaulting to
// today when absent.
func readValueDate(r *http.Request) (time.Time, error) {
	v := r.FormValue("valueDate")
	if v == "" {
		return time.Now(), nil
	}
	when := util.FirstParsedTime(v, util.YYMMDDTimeFormat, "20060102")
	if when.IsZero() {
		return time.Time{}, fmt.Errorf("unable to parse valueDate %q", v)
	}
	return when, nil
}

func CreateBatch(logger log.Logger, repo Repository, service *Service, defaults model.OrganisationProfile) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responder := route.NewResponder(logger, w, r)

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			responder.Problem(fmt.Errorf("unable to parse multipart form: %v", err))
			return
		}

		upload, _, err := r.FormFile("file")
		if err != nil {
			responder.Problem(fmt.Errorf("missing file upload: %v", err))
			return
		}
		defer upload.Close()

		source, err := ioutil.ReadAll(upload)
		if err != nil {
			responder.Problem(err)
			return
		}
		digest, err := hash.Contents(source)
		if err != nil {
			responder.Problem(err)
			return
		}

		instructions, err := spreadsheet.ReadInstructions(bytes.NewReader(source))
		if err != nil {
			responder.Problem(err)
			return
		}
		if len(instructions) == 0 {
			responder.Problem(errors.New("no payment instructions found"))
			return
		}

		valueDate, err := readValueDate(r)
		if err != nil {
			responder.Problem(err)
			return
		}

		file, err := service.BuildFile(readProfile(defaults, r), valueDate, instructions)
		if err != nil {
			responder.Problem(err)
			return
		}

		batch := &Batch{
			BatchID:      base.ID(),
			Organisation: file.Header.AccountName,
			FileName:     file.Filename(),
			DetailCount:  len(file.Details),
			TotalAmount:  *file.TotalAmount(),
			HashTotal:    file.HashTotal(),
			SourceSHA256: digest,
			Created:      time.Now(),
		}
		if err := repo.SaveBatch(batch, file.Bytes()); err != nil {
			responder.Problem(err)
			return
		}

		responder.Log("batches", fmt.Sprintf("created batch %s with %d details", batch.BatchID, batch.DetailCount))
		responder.Respond(func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(batch)
		})
	}
}

func GetBatch(logger log.Logger, repo Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responder := route.NewResponder(logger, w, r)

		batch, err := repo.GetBatch(getBatchID(r))
		if err != nil {
			responder.Problem(err)
			return
		}
		if batch == nil {
			responder.Respond(func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusNotFound)
			})
			return
		}

		responder.Respond(func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(batch)
		})
	}
}

func GetBatchFile(logger log.Logger, repo Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responder := route.NewResponder(logger, w, r)

		batchID := getBatchID(r)
		batch, err := repo.GetBatch(batchID)
		if err != nil {
			responder.Problem(err)
			return
		}
		if batch == nil {
			responder.Respond(func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusNotFound)
			})
			return
		}

		contents, err := repo.GetBatchContents(batchID)
		if err != nil {
			responder.Problem(err)
			return
		}

		responder.Respond(func(w http.ResponseWriter) {
			w.Header().Set("Content-Type", "text/plain")
			w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.txt", batch.FileName))
			w.WriteHeader(http.StatusOK)
			w.Write(contents)
		})
	}
}

func GetBankNames(logger log.Logger, service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responder := route.NewResponder(logger, w, r)

		responder.Respond(func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(service.BankNames())
		})
	}
}

func DeleteBatch(logger log.Logger, repo Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responder := route.NewResponder(logger, w, r)

		if err := repo.DeleteBatch(getBatchID(r)); err != nil {
			responder.Problem(err)
			return
		}

		responder.Respond(func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusOK)
		})
	}
}
