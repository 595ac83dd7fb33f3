// Copyright 2026 The Xattrsum Authors
// SPDX-License-Identifier: Apache-2.0

// Package version exposes the build version string for CLI output.
package version

// Version is the release version, overridden at build time via
// -ldflags "-X github.com/xattrsum/xattrsum/lib/version.Version=...".
var Version = "dev"

// Info returns the version string shown by "xattrsum version".
func Info() string {
	return Version
}
