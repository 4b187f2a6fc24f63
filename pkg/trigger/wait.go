// Copyright (c) Facebook, Inc. and its affiliates.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package trigger

import (
	"context"
	"fmt"
	"time"

	"github.com/facebookincubator/citrigger/pkg/api"
	"github.com/facebookincubator/citrigger/pkg/cerrors"
	"github.com/facebookincubator/citrigger/pkg/logging"
	"github.com/facebookincubator/citrigger/pkg/transport"
)

var log = logging.GetLogger("trigger")

// Wait keeps polling for the status of a trigger until the server reports a
// terminal status or ctx is done. There is no limit on the number of polls.
// A failed run is reported as *cerrors.ErrBuildFailed, any other terminal
// status except success as *cerrors.ErrUnexpectedStatus.
func Wait(ctx context.Context, t transport.Transport, req api.StatusRequest, pollInterval time.Duration) (*api.StatusResponse, error) {
	timer := time.NewTimer(0)
	defer timer.Stop()
	for attempt := 1; ; attempt++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("stopped waiting for pr %s: %w", req.PRID, ctx.Err())
		case <-timer.C:
		}

		resp, err := t.Status(ctx, req)
		if err != nil {
			return nil, err
		}
		if !resp.Done() {
			log.Debugf("pr %s still running (status %d, poll %d), checking again in %s", req.PRID, resp.Status, attempt, pollInterval)
			timer.Reset(pollInterval)
			continue
		}
		switch resp.Status {
		case api.StatusSucceeded:
			return resp, nil
		case api.StatusFailed:
			return resp, &cerrors.ErrBuildFailed{PRID: req.PRID, Log: resp.Log}
		default:
			return resp, &cerrors.ErrUnexpectedStatus{Status: resp.Status}
		}
	}
}
