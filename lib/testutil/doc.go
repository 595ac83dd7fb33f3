// Copyright 2026 The Xattrsum Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for xattrsum packages.
package testutil
