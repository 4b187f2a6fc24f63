// Copyright (c) Facebook, Inc. and its affiliates.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package transport

import (
	"context"

	"github.com/facebookincubator/citrigger/pkg/api"
)

// Transport abstracts different ways of talking to the CI webhook.
// This interface strictly only uses api data structures.
type Transport interface {
	Submit(ctx context.Context, info api.TestInfo) (*api.SubmitResponse, error)
	Status(ctx context.Context, req api.StatusRequest) (*api.StatusResponse, error)
}
