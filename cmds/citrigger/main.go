// Copyright (c) Facebook, Inc. and its affiliates.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package main

import (
	"os"

	"github.com/facebookincubator/citrigger/cmds/citrigger/cli"
)

// Unauthenticated, unencrypted trigger client for the local CI webhook.
//
// Usage examples:
// Trigger CI for a pull request on the default OS image
//   ./citrigger pr=refs/pull/1234/merge require_test=1
//
// Trigger on another image and wait for the result
//   ./citrigger --wait os=ubuntu22.04 pr=refs/pull/1234/merge
//
// Show what was triggered for a pull request
//   ./citrigger --db-uri 'user:pass@tcp(db:3306)/ci?parseTime=true' --history pr=refs/pull/1234/merge

func main() {
	os.Exit(cli.Main(os.Args[0], os.Args[1:], os.Stdout))
}
