// Copyright 2026 The Xattrsum Authors
// SPDX-License-Identifier: Apache-2.0

// Package ops implements the per-file operations: apply, check,
// print, reset, and the has-hash query. Each operation composes the
// metadata store and the digest engine, emits its result lines
// through a shared synchronized [Sink], and returns a [Status]
// bit-set that the worker pool folds into the run's aggregate.
//
// Recoverable conditions (permission failures, a slot present or
// absent when required to be otherwise) are reported on one line and
// carried in the Error bit; a stored digest disagreeing with the
// freshly computed one carries the Mismatch bit. Anything else is
// returned as an error, which the dispatcher treats as fatal to the
// whole run.
package ops
