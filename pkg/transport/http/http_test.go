// Copyright (c) Facebook, Inc. and its affiliates.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package http

import (
	"context"
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/facebookincubator/citrigger/pkg/api"
	"github.com/facebookincubator/citrigger/pkg/logging"

	"github.com/go-chi/chi/v5"
	"github.com/insomniacslk/xjson"
	"github.com/stretchr/testify/require"
)

func init() {
	logging.Disable()
}

func TestSubmit(t *testing.T) {
	var (
		gotBody        []byte
		gotContentType string
	)
	r := chi.NewRouter()
	r.Post("/", func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = ioutil.ReadAll(r.Body)
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("queued"))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	h := &HTTP{Addr: srv.URL + "/"}
	info := api.TestInfo{
		OSVersion:   "ubuntu22.04",
		Type:        api.TriggerTypeCI,
		PRID:        "1",
		Timestamp:   "16000000000000",
		RequireTest: true,
	}
	resp, err := h.Submit(context.Background(), info)
	require.NoError(t, err)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	require.Equal(t, "queued", string(resp.Body))
	require.Equal(t, "application/json", gotContentType)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(gotBody, &fields))
	require.Equal(t, map[string]interface{}{
		"os_version":   "ubuntu22.04",
		"type":         "ci",
		"pr_id":        "1",
		"timestamp":    "16000000000000",
		"require_test": true,
	}, fields)
}

func TestSubmitServerError(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	// the submission result is not interpreted
	resp, err := (&HTTP{Addr: srv.URL}).Submit(context.Background(), api.TestInfo{})
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Equal(t, "boom\n", string(resp.Body))
}

func TestSubmitUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := (&HTTP{Addr: addr}).Submit(context.Background(), api.TestInfo{})
	require.Error(t, err)
}

func TestStatus(t *testing.T) {
	var q url.Values
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		q = r.URL.Query()
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"status": 300, "log": "tests failed"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	h := &HTTP{Addr: srv.URL + "/"}
	resp, err := h.Status(context.Background(), api.StatusRequest{PRID: "4821", Timestamp: "123", OSVersion: "ubuntu20.04"})
	require.NoError(t, err)
	require.Equal(t, "10", q.Get("type"))
	require.Equal(t, "4821", q.Get("pr_id"))
	require.Equal(t, "123", q.Get("timestamp"))
	require.Equal(t, "ubuntu20.04", q.Get("system_os"))
	require.Equal(t, api.StatusFailed, resp.Status)
	require.Equal(t, "tests failed", resp.Log)
	require.True(t, resp.Done())
}

func TestStatusErrors(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("pr_id") == "garbage" {
			_, _ = w.Write([]byte("not json"))
			return
		}
		http.Error(w, "no such run", http.StatusNotFound)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()
	h := &HTTP{Addr: srv.URL}

	t.Run("rejected", func(t *testing.T) {
		_, err := h.Status(context.Background(), api.StatusRequest{PRID: "1"})
		require.Error(t, err)
		var xerr *xjson.Error
		require.True(t, errors.As(err, &xerr))
		require.Contains(t, err.Error(), "no such run")
	})
	t.Run("undecodable", func(t *testing.T) {
		_, err := h.Status(context.Background(), api.StatusRequest{PRID: "garbage"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "not a valid status object")
	})
}

func TestTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	h := &HTTP{Addr: srv.URL, Timeout: 50 * time.Millisecond}
	_, err := h.Submit(context.Background(), api.TestInfo{})
	require.Error(t, err)
}

func TestAddr(t *testing.T) {
	for _, addr := range []string{"localhost:12345", "ftp://localhost/", "://bad"} {
		_, err := (&HTTP{Addr: addr}).Submit(context.Background(), api.TestInfo{})
		require.Error(t, err, addr)
	}
	u, err := (&HTTP{}).url()
	require.NoError(t, err)
	require.Equal(t, DefaultAddr, u.String())
}
