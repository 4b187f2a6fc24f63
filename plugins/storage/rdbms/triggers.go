// Copyright (c) Facebook, Inc. and its affiliates.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package rdbms

import (
	"fmt"

	"github.com/facebookincubator/citrigger/pkg/storage"
)

// StoreTrigger stores a new trigger record in the database
func (r *RDBMS) StoreTrigger(record storage.Record) error {
	if err := r.init(); err != nil {
		return fmt.Errorf("could not initialize database: %w", err)
	}
	insertStatement := "insert into triggers (pr_id, ts, os_version, require_test, status_code, outcome, log, record_time) values (?, ?, ?, ?, ?, ?, ?, ?)"
	log.Debugf("Executing statement: %s", insertStatement)
	if _, err := r.db.Exec(insertStatement,
		record.PRID,
		record.Timestamp,
		record.OSVersion,
		record.RequireTest,
		record.StatusCode,
		string(record.Outcome),
		record.Log,
		record.RecordTime,
	); err != nil {
		return fmt.Errorf("could not store trigger for pr %s: %w", record.PRID, err)
	}
	return nil
}

// ListTriggers retrieves the trigger records of a pull request, oldest first
func (r *RDBMS) ListTriggers(prID string) ([]storage.Record, error) {
	if err := r.init(); err != nil {
		return nil, fmt.Errorf("could not initialize database: %w", err)
	}
	selectStatement := "select pr_id, ts, os_version, require_test, status_code, outcome, log, record_time from triggers"
	var args []interface{}
	if prID != "" {
		selectStatement += " where pr_id = ?"
		args = append(args, prID)
	}
	selectStatement += " order by trigger_id"
	log.Debugf("Executing query: %s", selectStatement)
	rows, err := r.db.Query(selectStatement, args...)
	if err != nil {
		return nil, fmt.Errorf("could not list triggers for pr %s: %w", prID, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Warningf("could not close rows for trigger list: %v", err)
		}
	}()

	var records []storage.Record
	for rows.Next() {
		var (
			rec     storage.Record
			outcome string
			logText *string
		)
		if err := rows.Scan(
			&rec.PRID,
			&rec.Timestamp,
			&rec.OSVersion,
			&rec.RequireTest,
			&rec.StatusCode,
			&outcome,
			&logText,
			&rec.RecordTime,
		); err != nil {
			return nil, fmt.Errorf("could not read trigger record: %w", err)
		}
		rec.Outcome = storage.Outcome(outcome)
		if logText != nil {
			rec.Log = *logText
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not list triggers for pr %s: %w", prID, err)
	}
	return records, nil
}
