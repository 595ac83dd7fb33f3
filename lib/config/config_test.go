// Copyright 2026 The Xattrsum Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if len(cfg.Algorithms) == 0 {
		t.Error("default config has no algorithms")
	}
	if cfg.Jobs != 0 {
		t.Errorf("default jobs = %d, want 0 (one per core)", cfg.Jobs)
	}
	if cfg.AllErrors {
		t.Error("default reports all errors; mismatch-only is the default policy")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "algorithms: [sha512, blake3]\njobs: 4\nall_errors: true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Algorithms) != 2 || cfg.Algorithms[0] != "sha512" || cfg.Algorithms[1] != "blake3" {
		t.Errorf("algorithms = %v, want [sha512 blake3]", cfg.Algorithms)
	}
	if cfg.Jobs != 4 {
		t.Errorf("jobs = %d, want 4", cfg.Jobs)
	}
	if !cfg.AllErrors {
		t.Error("all_errors not loaded")
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "jobs: 2\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Jobs != 2 {
		t.Errorf("jobs = %d, want 2", cfg.Jobs)
	}
	if len(cfg.Algorithms) == 0 {
		t.Error("partial config lost the default algorithms")
	}
}

func TestLoadRejectsUnknownAlgorithm(t *testing.T) {
	path := writeConfig(t, "algorithms: [md4]\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load accepted an unknown algorithm")
	}
	if !strings.Contains(err.Error(), "md4") {
		t.Errorf("error %q does not name the bad algorithm", err)
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	path := writeConfig(t, "algorithm: [sha256]\n")

	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted a misspelled key")
	}
}

func TestLoadRejectsNegativeJobs(t *testing.T) {
	path := writeConfig(t, "jobs: -1\n")

	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted negative jobs")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load succeeded on a missing file")
	}
}
