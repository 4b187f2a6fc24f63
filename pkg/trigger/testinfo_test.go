// Copyright (c) Facebook, Inc. and its affiliates.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package trigger

import (
	"strconv"
	"testing"
	"time"

	"github.com/facebookincubator/citrigger/pkg/api"

	"github.com/stretchr/testify/require"
)

func TestTimestamp(t *testing.T) {
	now := time.Unix(1600000000, 123456789)
	require.Equal(t, "16000000001234", Timestamp(now))
	require.Equal(t, "0", Timestamp(time.Unix(0, 99999)))
}

func TestTimestampIncreases(t *testing.T) {
	first := Timestamp(time.Now())
	time.Sleep(2 * time.Millisecond)
	second := Timestamp(time.Now())

	a, err := strconv.ParseInt(first, 10, 64)
	require.NoError(t, err)
	b, err := strconv.ParseInt(second, 10, 64)
	require.NoError(t, err)
	require.Greater(t, b, a)
}

func TestNewTestInfo(t *testing.T) {
	opts, err := ParseArgs([]string{"os=ubuntu22.04", "pr=refs/pull/1/head"}, DefaultOptions())
	require.NoError(t, err)
	now := time.Unix(1, 0)
	info := NewTestInfo(opts, now)
	require.Equal(t, api.TestInfo{
		OSVersion:   "ubuntu22.04",
		Type:        "ci",
		PRID:        "1",
		Timestamp:   "10000",
		RequireTest: true,
	}, info)

	require.Equal(t, api.StatusRequest{PRID: "1", Timestamp: "10000", OSVersion: "ubuntu22.04"}, StatusRequestFor(info))
}
