// Copyright (c) Facebook, Inc. and its affiliates.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package storage

import (
	"time"

	"github.com/facebookincubator/citrigger/pkg/api"
)

// Outcome is the last known state of a trigger.
type Outcome string

// Possible trigger outcomes
const (
	// OutcomeSubmitted means the webhook received the trigger and the client
	// did not wait for completion.
	OutcomeSubmitted Outcome = "submitted"
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
	// OutcomeUnknown covers unexpected terminal statuses and interrupted waits.
	OutcomeUnknown Outcome = "unknown"
)

// Record describes one trigger sent to the webhook.
type Record struct {
	PRID        string    `json:"pr_id"`
	Timestamp   string    `json:"timestamp"`
	OSVersion   string    `json:"os_version"`
	RequireTest bool      `json:"require_test"`
	StatusCode  int       `json:"status_code"`
	Outcome     Outcome   `json:"outcome"`
	Log         string    `json:"log,omitempty"`
	RecordTime  time.Time `json:"record_time"`
}

// NewRecord returns a record for a payload that was answered with statusCode.
func NewRecord(info api.TestInfo, statusCode int, recordTime time.Time) Record {
	return Record{
		PRID:        info.PRID,
		Timestamp:   info.Timestamp,
		OSVersion:   info.OSVersion,
		RequireTest: info.RequireTest,
		StatusCode:  statusCode,
		Outcome:     OutcomeSubmitted,
		RecordTime:  recordTime,
	}
}

// TriggerStorage defines the interface that implements persistence for
// trigger history
type TriggerStorage interface {
	StoreTrigger(record Record) error
	// ListTriggers returns the records for a pull request, oldest first.
	// An empty prID returns every record.
	ListTriggers(prID string) ([]Record, error)
}
