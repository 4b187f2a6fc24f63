// Copyright (c) Facebook, Inc. and its affiliates.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package config

// DefaultDBURI represents the URI suggested for the rdbms history plugin.
// History is only recorded when a URI is explicitly configured.
const DefaultDBURI = "citrigger:citrigger@tcp(localhost:3306)/citrigger?parseTime=true"
