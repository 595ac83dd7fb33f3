// Copyright 2026 The Xattrsum Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ExitError signals a specific process exit code without printing an
// extra error message: the command has already written its own
// output. This is how the aggregate mismatch/error bits become the
// process status — a non-zero exit is a valid outcome there, not an
// unexpected failure to display.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code. The binary's main function checks
// for this interface on returned errors to distinguish a handled
// non-zero exit from an unexpected error.
func (e *ExitError) ExitCode() int {
	return e.Code
}
