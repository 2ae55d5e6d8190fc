// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/moov-io/giro/pkg/database"
	"github.com/moov-io/giro/pkg/model"

	"github.com/go-kit/kit/log"
	"github.com/spf13/viper"
)

type Config struct {
	Logger  log.Logger `yaml:"-" json:"-"`
	Logging Logging

	Http  HTTP
	Admin Admin

	Database database.Config

	Organisation Organisation
	Banks        Banks
}

type Logging struct {
	Format string
	Level  string
}

type HTTP struct {
	BindAddress string
}

type Admin struct {
	BindAddress string
}

// Organisation holds default originator details for batches. Requests
// can override any of these fields.
type Organisation struct {
	Name               string
	AccountNumber      string
	BIC                string
	CustomerReference  string
	PaymentDescription string
	ProcessingMode     string
}

// Profile converts configured defaults into an OrganisationProfile,
// defaulting to the normal GIRO rail.
func (o Organisation) Profile() model.OrganisationProfile {
	mode := model.ProcessingMode(o.ProcessingMode)
	if o.ProcessingMode == "" {
		mode = model.NormalGIRO
	}
	return model.OrganisationProfile{
		Name:               o.Name,
		AccountNumber:      o.AccountNumber,
		BIC:                o.BIC,
		CustomerReference:  o.CustomerReference,
		PaymentDescription: o.PaymentDescription,
		ProcessingMode:     mode,
	}
}

func (o Organisation) Validate() error {
	if o.ProcessingMode == "" {
		return nil
	}
	return model.ProcessingMode(o.ProcessingMode).Validate()
}

// Banks adds extra bank-name mappings on top of the built-in table
// and optionally overrides the fallback BIC for unresolvable names.
// Mapping keys arrive lower-cased from the yaml loader; bank-name
// matching is case-insensitive so that's harmless.
type Banks struct {
	DefaultBIC string
	Mapping    map[string]string
}

func Empty() *Config {
	return &Config{
		Logger: log.NewNopLogger(),
		Admin: Admin{
			BindAddress: ":9494",
		},
		Http: HTTP{
			BindAddress: ":8484",
		},
		Database: database.Config{
			// Set the default path inside this path if no other database is defined.
			SQLite: &database.SQLiteConfig{
				Path: "giro.db",
			},
		},
	}
}

func FromFile(path string) (*Config, error) {
	cfg := Empty()
	if path != "" {
		bs, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %v", path, err)
		}
		return Read(bs)
	}
	cfg = setupLogger(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Read(data []byte) (*Config, error) {
	vip := viper.New()
	vip.SetConfigType("yaml")
	if err := vip.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("problem reading config: %v", err)
	}

	cfg := Empty()
	if err := vip.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("problem unmarshaling config: %v", err)
	}

	cfg = setupLogger(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogger(cfg *Config) *Config {
	if strings.EqualFold(cfg.Logging.Format, "json") {
		cfg.Logger = log.NewJSONLogger(os.Stderr)
	} else {
		cfg.Logger = log.NewLogfmtLogger(os.Stderr)
	}

	cfg.Logger = log.With(cfg.Logger, "ts", log.DefaultTimestampUTC)
	cfg.Logger = log.With(cfg.Logger, "caller", log.DefaultCaller)

	return cfg
}

// Validate checks a Config fields and performs various confirmations
// their values conform to expectations.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.New("missing Config")
	}

	if err := cfg.Organisation.Validate(); err != nil {
		return fmt.Errorf("organisation: %v", err)
	}
	for name, bic := range cfg.Banks.Mapping {
		if name == "" || bic == "" {
			return fmt.Errorf("banks: incomplete mapping %q=%q", name, bic)
		}
		if len(bic) > 11 {
			return fmt.Errorf("banks: BIC %q for %q is longer than 11 characters", bic, name)
		}
	}

	return nil
}
