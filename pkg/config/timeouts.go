// Copyright (c) Facebook, Inc. and its affiliates.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package config

import "time"

// DefaultPollInterval is the fixed time waited between two status requests
// while waiting for a CI run to complete.
var DefaultPollInterval = 3 * time.Second

// DefaultRequestTimeout bounds each HTTP request to the webhook. Zero means
// that a hung server blocks the client indefinitely.
var DefaultRequestTimeout time.Duration
