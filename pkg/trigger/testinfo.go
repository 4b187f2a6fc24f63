// Copyright (c) Facebook, Inc. and its affiliates.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package trigger

import (
	"strconv"
	"time"

	"github.com/facebookincubator/citrigger/pkg/api"
)

// Timestamp renders t in units of 0.1 milliseconds since the epoch.
func Timestamp(t time.Time) string {
	return strconv.FormatInt(t.UnixNano()/int64(100*time.Microsecond), 10)
}

// NewTestInfo builds the webhook payload for opts at time now.
func NewTestInfo(opts Options, now time.Time) api.TestInfo {
	return api.TestInfo{
		OSVersion:   opts.OSVersion,
		Type:        api.TriggerTypeCI,
		PRID:        opts.PRID,
		Timestamp:   Timestamp(now),
		RequireTest: opts.RequireTest,
	}
}

// StatusRequestFor returns the status query matching a submitted payload.
func StatusRequestFor(info api.TestInfo) api.StatusRequest {
	return api.StatusRequest{
		PRID:      info.PRID,
		Timestamp: info.Timestamp,
		OSVersion: info.OSVersion,
	}
}
