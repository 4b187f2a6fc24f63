// Copyright (c) Facebook, Inc. and its affiliates.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

// +build integration_storage integration

package rdbms

import (
	"testing"
	"time"

	"github.com/facebookincubator/citrigger/pkg/storage"

	"github.com/stretchr/testify/require"
)

const integDBURI = "citrigger:citrigger@tcp(mysql:3306)/citrigger_integ?parseTime=true"

func TestRDBMSTriggers(t *testing.T) {
	stor := New(integDBURI)
	defer stor.Close()
	require.NoError(t, storage.Check(stor))
	require.NoError(t, stor.Reset())

	now := time.Now().UTC().Truncate(time.Millisecond)
	r0 := storage.Record{PRID: "1", Timestamp: "10", OSVersion: "ubuntu20.04", RequireTest: true, StatusCode: 200, Outcome: storage.OutcomeSubmitted, RecordTime: now}
	r1 := storage.Record{PRID: "2", Timestamp: "11", OSVersion: "ubuntu20.04", StatusCode: 200, Outcome: storage.OutcomeFailed, Log: "boom", RecordTime: now}
	require.NoError(t, stor.StoreTrigger(r0))
	require.NoError(t, stor.StoreTrigger(r1))

	recs, err := stor.ListTriggers("2")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, r1.Log, recs[0].Log)
	require.Equal(t, r1.Outcome, recs[0].Outcome)
	require.True(t, r1.RecordTime.Equal(recs[0].RecordTime))

	recs, err = stor.ListTriggers("")
	require.NoError(t, err)
	require.Len(t, recs, 2)
}
