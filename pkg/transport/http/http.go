// Copyright (c) Facebook, Inc. and its affiliates.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/facebookincubator/citrigger/pkg/api"
	"github.com/facebookincubator/citrigger/pkg/logging"

	"github.com/insomniacslk/xjson"
)

var log = logging.GetLogger("transport/http")

// DefaultAddr is the local webhook the CI server listens on.
const DefaultAddr = "http://localhost:12345/"

// HTTP communicates with the CI webhook via http(s)/json transport
// HTTP implements the Transport interface
type HTTP struct {
	Addr string
	// Timeout bounds every single request. Zero means no timeout.
	Timeout time.Duration
	// Client is used instead of a default client when set.
	Client *http.Client
}

// Submit POSTs the trigger payload as JSON. The response is returned whatever
// its HTTP status is.
func (h *HTTP) Submit(ctx context.Context, info api.TestInfo) (*api.SubmitResponse, error) {
	u, err := h.url()
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(info)
	if err != nil {
		return nil, fmt.Errorf("cannot encode trigger payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("cannot build HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	log.Debugf("POST %s with body %s", u.String(), payload)
	resp, err := h.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP POST failed: %w", err)
	}
	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cannot read HTTP response: %w", err)
	}
	log.Debugf("The server responded with status %s", resp.Status)
	return &api.SubmitResponse{StatusCode: resp.StatusCode, Status: resp.Status, Body: body}, nil
}

// Status queries the state of a previously submitted trigger.
func (h *HTTP) Status(ctx context.Context, sr api.StatusRequest) (*api.StatusResponse, error) {
	u, err := h.url()
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("type", api.StatusQueryType)
	params.Set("pr_id", sr.PRID)
	params.Set("timestamp", sr.Timestamp)
	params.Set("system_os", sr.OSVersion)
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("cannot build HTTP request: %w", err)
	}
	log.Debugf("GET %s", u.String())
	resp, err := h.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP GET failed: %w", err)
	}
	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cannot read HTTP response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = resp.Status
		}
		return nil, xjson.NewError(fmt.Errorf("status request rejected with %s: %s", resp.Status, msg))
	}

	var status api.StatusResponse
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, fmt.Errorf("response is not a valid status object: '%s': %w", body, err)
	}
	return &status, nil
}

func (h *HTTP) url() (*url.URL, error) {
	addr := h.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	u, err := url.Parse(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse server address '%s': %w", addr, err)
	}
	if u.Scheme == "" {
		return nil, errors.New("server URL scheme not specified")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported URL scheme '%s', please specify either http or https", u.Scheme)
	}
	return u, nil
}

func (h *HTTP) client() *http.Client {
	if h.Client != nil {
		return h.Client
	}
	return &http.Client{Timeout: h.Timeout}
}
