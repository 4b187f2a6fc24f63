// Copyright (c) Facebook, Inc. and its affiliates.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package rdbms

import (
	"testing"

	"github.com/facebookincubator/citrigger/pkg/storage"

	"github.com/stretchr/testify/require"
)

func TestUnknownDriver(t *testing.T) {
	stor := New("whatever", DriverName("no-such-driver"))
	_, err := stor.Version()
	require.Error(t, err)
	require.Error(t, stor.StoreTrigger(storage.Record{PRID: "1"}))
	_, err = stor.ListTriggers("1")
	require.Error(t, err)
	require.NoError(t, stor.Close())
}

func TestSchemaVersion(t *testing.T) {
	require.GreaterOrEqual(t, uint64(schemaVersion), storage.MinStorageVersion)
	require.NotEmpty(t, schema)
}
