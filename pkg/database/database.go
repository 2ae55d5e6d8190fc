// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/moov-io/giro/pkg/util"

	"github.com/go-kit/kit/log"
	"github.com/lopezator/migrator"
)

// Config selects which database to connect to. With neither section
// set the DATABASE_TYPE environment variable decides, defaulting
// to a local sqlite file.
type Config struct {
	SQLite *SQLiteConfig `yaml:"sqlite" json:"sqlite"`
	MySQL  *MySQLConfig  `yaml:"mysql" json:"mysql"`
}

type SQLiteConfig struct {
	Path string `yaml:"path" json:"path"`
}

type MySQLConfig struct {
	Address  string `yaml:"address" json:"address"`
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
	Database string `yaml:"database" json:"database"`
}

// Type returns a string for which database to be used.
func Type() string {
	return util.Or(os.Getenv("DATABASE_TYPE"), "sqlite")
}

// New establishes a database connection according to the config,
// falling back to environmental variables.
func New(ctx context.Context, logger log.Logger, cfg Config) (*sql.DB, error) {
	switch {
	case cfg.MySQL != nil:
		my := cfg.MySQL
		logger.Log("database", "connecting to mysql")
		return mysqlConnection(logger,
			util.Or(my.Username, os.Getenv("MYSQL_USER")),
			util.Or(my.Password, os.Getenv("MYSQL_PASSWORD")),
			my.Address, my.Database).Connect(ctx)

	case cfg.SQLite != nil:
		logger.Log("database", "connecting to sqlite")
		return sqliteConnection(logger, sqlitePath(cfg.SQLite.Path)).Connect(ctx)
	}

	_type := Type()
	logger.Log("database", fmt.Sprintf("looking for %s database provider", _type))
	switch strings.ToLower(_type) {
	case "sqlite":
		return sqliteConnection(logger, sqlitePath("")).Connect(ctx)
	case "mysql":
		return mysqlConnection(logger, os.Getenv("MYSQL_USER"), os.Getenv("MYSQL_PASSWORD"), os.Getenv("MYSQL_ADDRESS"), os.Getenv("MYSQL_DATABASE")).Connect(ctx)
	}
	return nil, fmt.Errorf("unknown database type %q", _type)
}

func execsql(name, raw string) *migrator.MigrationNoTx {
	return &migrator.MigrationNoTx{
		Name: name,
		Func: func(db *sql.DB) error {
			_, err := db.Exec(raw)
			return err
		},
	}
}

// UniqueViolation returns true when the provided error matches a database error
// for duplicate entries (violating a unique table constraint).
func UniqueViolation(err error) bool {
	return MySQLUniqueViolation(err) || SqliteUniqueViolation(err)
}
