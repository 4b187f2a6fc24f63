// Copyright (c) Facebook, Inc. and its affiliates.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package trigger

import "errors"

var errPRRef = errors.New("expected a reference like refs/pull/<id>/merge")
