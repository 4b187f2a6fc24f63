// Copyright (c) Facebook, Inc. and its affiliates.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package api

// TriggerTypeCI is the only trigger type emitted by this client.
const TriggerTypeCI = "ci"

// TestInfo is the JSON payload POSTed to the CI webhook. Every field is
// always present in the encoded body.
type TestInfo struct {
	OSVersion   string `json:"os_version"`
	Type        string `json:"type"`
	PRID        string `json:"pr_id"`
	Timestamp   string `json:"timestamp"`
	RequireTest bool   `json:"require_test"`
}
