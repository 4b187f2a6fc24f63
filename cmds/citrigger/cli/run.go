// Copyright (c) Facebook, Inc. and its affiliates.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/facebookincubator/citrigger/pkg/cerrors"
	"github.com/facebookincubator/citrigger/pkg/logging"
	"github.com/facebookincubator/citrigger/pkg/storage"
	"github.com/facebookincubator/citrigger/pkg/transport"
	"github.com/facebookincubator/citrigger/pkg/trigger"

	"github.com/davecgh/go-spew/spew"
)

type runConfig struct {
	transport    transport.Transport
	storage      storage.TriggerStorage
	options      trigger.Options
	wait         bool
	pollInterval time.Duration
	// now defaults to time.Now
	now func() time.Time
}

func run(ctx context.Context, cfg runConfig, stdout io.Writer) int {
	now := cfg.now
	if now == nil {
		now = time.Now
	}
	info := trigger.NewTestInfo(cfg.options, now())
	log.Debugf("Trigger payload:\n%s", spew.Sdump(info))

	tlog := logging.AddField(log, "pr_id", info.PRID)

	resp, err := cfg.transport.Submit(ctx, info)
	if err != nil {
		tlog.Errorf("Cannot trigger CI: %v", err)
		return ExitTransportError
	}
	fmt.Fprintln(stdout, resp.StatusCode, string(resp.Body))

	record := storage.NewRecord(info, resp.StatusCode, now())
	if !cfg.wait {
		store(cfg.storage, record)
		return ExitOK
	}
	// only an accepted trigger has a run to wait for
	if resp.StatusCode != http.StatusOK {
		tlog.Warningf("Webhook answered %s, not waiting for completion", resp.Status)
		store(cfg.storage, record)
		return ExitOK
	}

	tlog.Infof("Waiting for the CI run to complete...")
	_, err = trigger.Wait(ctx, cfg.transport, trigger.StatusRequestFor(info), cfg.pollInterval)
	record.RecordTime = now()
	var (
		buildErr      *cerrors.ErrBuildFailed
		unexpectedErr *cerrors.ErrUnexpectedStatus
	)
	switch {
	case err == nil:
		record.Outcome = storage.OutcomeSucceeded
		store(cfg.storage, record)
		fmt.Fprintln(stdout, "success")
		return ExitOK
	case errors.As(err, &buildErr):
		record.Outcome = storage.OutcomeFailed
		record.Log = buildErr.Log
		store(cfg.storage, record)
		fmt.Fprintln(stdout, buildErr.Log)
		return ExitFailure
	case errors.As(err, &unexpectedErr):
		record.Outcome = storage.OutcomeUnknown
		store(cfg.storage, record)
		fmt.Fprintln(stdout, unexpectedErr)
		return ExitFailure
	default:
		record.Outcome = storage.OutcomeUnknown
		store(cfg.storage, record)
		tlog.Errorf("Cannot get the status of the CI run: %v", err)
		return ExitTransportError
	}
}

// store records a trigger. History is best effort and never changes the
// outcome of a run.
func store(stor storage.TriggerStorage, record storage.Record) {
	if stor == nil {
		return
	}
	if err := stor.StoreTrigger(record); err != nil {
		log.Warningf("Cannot record trigger for pr %s: %v", record.PRID, err)
	}
}

func printHistory(stor storage.TriggerStorage, prID string, stdout io.Writer) int {
	if stor == nil {
		fmt.Fprintln(stdout, "trigger history requires --db-uri or db_uri in the configuration")
		return ExitFailure
	}
	records, err := stor.ListTriggers(prID)
	if err != nil {
		log.Errorf("Cannot list triggers: %v", err)
		return ExitTransportError
	}
	if records == nil {
		records = []storage.Record{}
	}
	buffer := &bytes.Buffer{}
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", " ")
	if err := encoder.Encode(records); err != nil {
		log.Errorf("Cannot encode trigger history: %v", err)
		return ExitFailure
	}
	_, _ = stdout.Write(buffer.Bytes())
	return ExitOK
}
