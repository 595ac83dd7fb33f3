// Copyright 2026 The Xattrsum Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for xattrsum.
//
// Configuration is loaded from a single YAML file specified by the
// XATTRSUM_CONFIG environment variable or the --config flag. There
// are no fallbacks or automatic discovery: with neither set, the
// built-in defaults apply. This keeps runs deterministic with no
// hidden overrides.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/xattrsum/xattrsum/lib/digest"
)

// EnvVar names the environment variable consulted for the config
// file path when --config is not given.
const EnvVar = "XATTRSUM_CONFIG"

// Config holds the per-invocation defaults a config file may set.
// Command-line flags override every field.
type Config struct {
	// Algorithms are the digest algorithms used when --algorithm is
	// not given.
	Algorithms []string `yaml:"algorithms"`

	// Jobs is the worker count used when --jobs is not given.
	// Zero means one worker per CPU core.
	Jobs int `yaml:"jobs"`

	// AllErrors makes the exit status reflect the full aggregate
	// bit-set instead of just the mismatch bit.
	AllErrors bool `yaml:"all_errors"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Algorithms: digest.Default(),
		Jobs:       0,
	}
}

// Load reads and validates the config file at path, applied on top
// of [Default]. Unknown keys are rejected so a typo cannot silently
// fall back to a default.
func Load(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(contents))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every configured algorithm resolves and the
// worker count is sane.
func (c Config) Validate() error {
	if len(c.Algorithms) == 0 {
		return fmt.Errorf("algorithms list is empty")
	}
	for _, name := range c.Algorithms {
		if !digest.Known(name) {
			return fmt.Errorf("unknown digest algorithm %q (known: %v)", name, digest.Names())
		}
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs is %d, must be zero (one per core) or positive", c.Jobs)
	}
	return nil
}
