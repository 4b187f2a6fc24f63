// Copyright (c) Facebook, Inc. and its affiliates.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package rdbms

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/facebookincubator/citrigger/pkg/logging"
	"github.com/facebookincubator/citrigger/pkg/storage"

	// this blank import registers the mysql driver
	_ "github.com/go-sql-driver/mysql"
)

var log = logging.GetLogger("plugin/storage/rdbms")

// RDBMS implements a storage engine which stores the trigger history in a
// relational database via the database/sql package. Only MySQL is officially
// supported. The connection is opened lazily on first use.
type RDBMS struct {
	driverName string
	dbURI      string

	initOnce *sync.Once
	initErr  error

	db *sql.DB
}

// Reset restores a clean state in the database. It's meant to be used after
// integration tests.
func (r *RDBMS) Reset() error {
	if err := r.init(); err != nil {
		return fmt.Errorf("could not initialize database: %w", err)
	}
	if _, err := r.db.Exec("truncate triggers"); err != nil {
		return fmt.Errorf("could not truncate table triggers: %w", err)
	}
	return nil
}

func (r *RDBMS) init() error {
	r.initOnce.Do(func() {
		driverName := "mysql"
		if r.driverName != "" {
			driverName = r.driverName
		}
		db, err := sql.Open(driverName, r.dbURI)
		if err != nil {
			r.initErr = fmt.Errorf("could not initialize database for trigger history: %w", err)
			return
		}
		for _, stmt := range schema {
			if _, err := db.Exec(stmt); err != nil {
				_ = db.Close()
				r.initErr = fmt.Errorf("could not create schema: %w", err)
				return
			}
		}
		r.db = db
	})
	return r.initErr
}

// Version returns the schema version recorded in the database
func (r *RDBMS) Version() (uint64, error) {
	if err := r.init(); err != nil {
		return 0, fmt.Errorf("could not initialize database: %w", err)
	}
	var version uint64
	if err := r.db.QueryRow("select max(version) from schema_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("could not read schema version: %w", err)
	}
	return version, nil
}

// Close closes the database connection, if any was opened
func (r *RDBMS) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Opt is a function type that sets parameters on the RDBMS object
type Opt func(rdbms *RDBMS)

// DriverName allows using a mysql-compatible driver (e.g. a wrapper around mysql
// or a syntax-compatible variant).
func DriverName(name string) Opt {
	return func(rdbms *RDBMS) {
		rdbms.driverName = name
	}
}

// New creates a RDBMS history storage backend with default parameters
func New(dbURI string, opts ...Opt) storage.ResettableStorage {
	backend := RDBMS{
		dbURI:    dbURI,
		initOnce: &sync.Once{},
	}
	for _, opt := range opts {
		opt(&backend)
	}
	return &backend
}
