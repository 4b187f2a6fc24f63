// Copyright (c) Facebook, Inc. and its affiliates.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"
	"time"

	"github.com/insomniacslk/xjson"
	"gopkg.in/yaml.v3"
)

// Defaults applied to every trigger before command line arguments are parsed.
const (
	DefaultOSVersion   = "ubuntu20.04"
	DefaultRequireTest = true
	DefaultPRID        = "0"
)

// Format defines a type for the supported formats for client configuration files.
type Format int

// List of supported configuration formats
const (
	FormatJSON Format = iota
	FormatYAML
)

// Config holds the client settings that can be provided via a configuration
// file. Fields missing from the file keep their default value.
type Config struct {
	// Addr is the webhook URL. When nil the transport default is used.
	Addr         *xjson.URL     `json:"addr,omitempty"`
	OSVersion    string         `json:"os_version"`
	RequireTest  bool           `json:"require_test"`
	PollInterval xjson.Duration `json:"poll_interval"`
	Timeout      xjson.Duration `json:"timeout"`
	DBURI        string         `json:"db_uri"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		OSVersion:    DefaultOSVersion,
		RequireTest:  DefaultRequireTest,
		PollInterval: xjson.Duration(DefaultPollInterval),
		Timeout:      xjson.Duration(DefaultRequestTimeout),
	}
}

// AddrString returns the configured webhook URL, or an empty string.
func (c Config) AddrString() string {
	if c.Addr == nil {
		return ""
	}
	return c.Addr.String()
}

// Validate checks the configuration for values the client cannot work with.
func (c Config) Validate() error {
	if time.Duration(c.PollInterval) <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %s", time.Duration(c.PollInterval))
	}
	if time.Duration(c.Timeout) < 0 {
		return fmt.Errorf("timeout cannot be negative, got %s", time.Duration(c.Timeout))
	}
	return nil
}

// FormatFromPath guesses the configuration format from the file extension.
// Anything that is not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Load reads a configuration file on top of the defaults.
func Load(path string) (Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read configuration: %w", err)
	}
	return Parse(data, FormatFromPath(path))
}

// Parse decodes a configuration in the given format on top of the defaults.
// YAML documents are normalised to JSON first, so both formats share the
// same field names and value syntax (e.g. durations as "3s").
func Parse(data []byte, format Format) (Config, error) {
	cfg := Default()
	var (
		fields = make(map[string]interface{})
	)
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &fields); err != nil {
			return cfg, fmt.Errorf("failed to parse JSON configuration: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &fields); err != nil {
			return cfg, fmt.Errorf("failed to parse YAML configuration: %w", err)
		}
	default:
		return cfg, fmt.Errorf("unknown configuration format %d", format)
	}
	normalised, err := json.Marshal(fields)
	if err != nil {
		return cfg, fmt.Errorf("failed to serialize configuration to JSON: %w", err)
	}
	if err := json.Unmarshal(normalised, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
