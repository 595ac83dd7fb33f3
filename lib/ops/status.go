// Copyright 2026 The Xattrsum Authors
// SPDX-License-Identifier: Apache-2.0

package ops

import "strings"

// Status is a bit-set of per-file outcome flags. OK is the absence
// of both bits. Mismatch and Error are deliberately unordered: the
// aggregate is their bitwise union and the exit-code policy decides
// which bits matter.
type Status uint32

const (
	// OK means every requested algorithm succeeded for the file.
	OK Status = 0
	// Mismatch means a stored digest disagreed with the freshly
	// computed one, or a required slot was missing in has-hash mode.
	Mismatch Status = 1 << 0
	// Error means a recoverable per-file condition: a permission
	// failure, or a slot present/absent when required otherwise.
	Error Status = 1 << 1
)

// Has reports whether all of bit's flags are set in s.
func (s Status) Has(bit Status) bool {
	return s&bit == bit
}

// ExitCode maps an aggregate status to the process exit code. With
// allErrors the full bit-set is reported; otherwise only the
// Mismatch bit surfaces and per-file errors exit zero.
func (s Status) ExitCode(allErrors bool) int {
	if allErrors {
		return int(s)
	}
	return int(s & Mismatch)
}

func (s Status) String() string {
	if s == OK {
		return "ok"
	}
	var parts []string
	if s.Has(Mismatch) {
		parts = append(parts, "mismatch")
	}
	if s.Has(Error) {
		parts = append(parts, "error")
	}
	return strings.Join(parts, "|")
}
