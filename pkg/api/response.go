// Copyright (c) Facebook, Inc. and its affiliates.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package api

// Status codes reported by the CI server in a StatusResponse. Anything below
// StatusDone means the run is still in progress.
const (
	StatusDone      = 200
	StatusSucceeded = 200
	StatusFailed    = 300
)

// StatusQueryType is the value of the "type" query parameter of a status
// request.
const StatusQueryType = "10"

// SubmitResponse is what the webhook answered to a trigger. The body is kept
// verbatim since it is not interpreted.
type SubmitResponse struct {
	StatusCode int
	Status     string
	Body       []byte
}

// StatusRequest identifies a previously submitted trigger.
type StatusRequest struct {
	PRID      string
	Timestamp string
	OSVersion string
}

// StatusResponse is the decoded body of a status request.
type StatusResponse struct {
	Status int    `json:"status"`
	Log    string `json:"log,omitempty"`
}

// Done returns whether the server reported a terminal status.
func (s StatusResponse) Done() bool {
	return s.Status >= StatusDone
}
