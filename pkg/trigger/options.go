// Copyright (c) Facebook, Inc. and its affiliates.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package trigger

import (
	"strconv"
	"strings"

	"github.com/facebookincubator/citrigger/pkg/cerrors"
	"github.com/facebookincubator/citrigger/pkg/config"
)

// Keys recognized on the command line. Any other key is ignored.
const (
	KeyOS          = "os"
	KeyRequireTest = "require_test"
	KeyCardType    = "card_type"
	KeyPR          = "pr"
)

// MinArgs is the minimum number of key=value tokens a trigger needs.
const MinArgs = 2

// Options is the result of parsing the command line tokens.
type Options struct {
	OSVersion   string
	RequireTest bool
	// CardType is accepted and validated but not sent to the webhook.
	CardType int
	PRID     string
}

// DefaultOptions returns the options a trigger starts from before any token
// is applied.
func DefaultOptions() Options {
	return Options{
		OSVersion:   config.DefaultOSVersion,
		RequireTest: config.DefaultRequireTest,
		PRID:        config.DefaultPRID,
	}
}

// ParseArgs applies key=value tokens on top of defaults. Later occurrences of
// a key overwrite earlier ones. Parsing stops at the first bad token and
// nothing parsed so far is returned.
func ParseArgs(tokens []string, defaults Options) (Options, error) {
	opts := defaults
	for _, tok := range tokens {
		kv := strings.Split(tok, "=")
		if len(kv) != 2 {
			return Options{}, &cerrors.ErrMalformedToken{Token: tok}
		}
		key, value := kv[0], kv[1]
		switch key {
		case KeyOS:
			opts.OSVersion = value
		case KeyRequireTest:
			// any non-empty value, "false" included, enables tests
			opts.RequireTest = value != ""
		case KeyCardType:
			ct, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return Options{}, &cerrors.ErrInvalidValue{Key: key, Value: value, Err: err}
			}
			opts.CardType = ct
		case KeyPR:
			prID, err := PRIDFromRef(value)
			if err != nil {
				return Options{}, &cerrors.ErrInvalidValue{Key: key, Value: value, Err: err}
			}
			opts.PRID = prID
		}
	}
	return opts, nil
}

// PRIDFromRef extracts the pull request identifier from a reference such as
// refs/pull/1234/merge.
func PRIDFromRef(ref string) (string, error) {
	parts := strings.Split(ref, "/")
	if len(parts) < 3 {
		return "", errPRRef
	}
	return parts[2], nil
}
