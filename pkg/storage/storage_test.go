// Copyright (c) Facebook, Inc. and its affiliates.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/facebookincubator/citrigger/pkg/api"

	"github.com/stretchr/testify/require"
)

type versionedStorage struct {
	version uint64
	err     error
}

func (v versionedStorage) StoreTrigger(Record) error { return nil }
func (v versionedStorage) ListTriggers(string) ([]Record, error) { return nil, nil }
func (v versionedStorage) Version() (uint64, error) { return v.version, v.err }
func (v versionedStorage) Close() error { return nil }

func TestCheck(t *testing.T) {
	require.Error(t, Check(nil))
	require.Error(t, Check(versionedStorage{version: 0}))
	require.Error(t, Check(versionedStorage{err: errors.New("db down")}))
	require.NoError(t, Check(versionedStorage{version: MinStorageVersion}))
}

func TestNewRecord(t *testing.T) {
	now := time.Unix(10, 0)
	rec := NewRecord(api.TestInfo{OSVersion: "ubuntu20.04", Type: "ci", PRID: "7", Timestamp: "100000", RequireTest: true}, 202, now)
	require.Equal(t, Record{
		PRID:        "7",
		Timestamp:   "100000",
		OSVersion:   "ubuntu20.04",
		RequireTest: true,
		StatusCode:  202,
		Outcome:     OutcomeSubmitted,
		RecordTime:  now,
	}, rec)
}
