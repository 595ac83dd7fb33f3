// Copyright 2026 The Xattrsum Authors
// SPDX-License-Identifier: Apache-2.0

package ops

import (
	"bytes"
	"errors"
	"log/slog"

	"golang.org/x/sys/unix"

	"github.com/xattrsum/xattrsum/lib/digest"
	"github.com/xattrsum/xattrsum/lib/metadata"
)

// Ops carries the shared collaborators every operation needs: the
// synchronized output sink and a structured logger for diagnostics
// that are not product output. One Ops value is shared by all
// workers of a run.
type Ops struct {
	Sink *Sink
	Log  *slog.Logger
}

// Func is the signature shared by all operations. A non-nil error is
// fatal to the whole run; recoverable per-file conditions are folded
// into the returned Status instead.
type Func func(path string, algorithms []string) (Status, error)

// Apply computes and stores digests for every requested algorithm
// that has no existing slot. Algorithms that already have a slot are
// skipped and reported as a per-file error; the digests for all
// missing algorithms are computed in one batched read pass.
func (o *Ops) Apply(path string, algorithms []string) (Status, error) {
	if !accessible(path, true) {
		o.Sink.Errf("skipping %s (no write access)", path)
		return Error, nil
	}

	status := OK
	var missing []string
	for _, algorithm := range algorithms {
		_, found, err := metadata.Get(path, algorithm)
		if errors.Is(err, metadata.ErrPermission) {
			o.Sink.Errf("%s: cannot read %s slot (permission denied)", path, algorithm)
			status |= Error
			continue
		}
		if err != nil {
			return status, err
		}
		if found {
			o.Sink.Errf("skipping %s (already has %s hash)", path, algorithm)
			status |= Error
			continue
		}
		missing = append(missing, algorithm)
	}
	if len(missing) == 0 {
		return status, nil
	}

	digests, err := digest.SumFile(path, missing)
	if err != nil {
		return status, err
	}
	o.Log.Debug("computed digests", "path", path, "algorithms", missing)
	for _, algorithm := range missing {
		err := metadata.Set(path, algorithm, digests[algorithm])
		if errors.Is(err, metadata.ErrPermission) {
			o.Sink.Errf("%s: cannot write %s slot (permission denied)", path, algorithm)
			status |= Error
			continue
		}
		if err != nil {
			return status, err
		}
		o.Sink.Outf("%s", digestLine(digests[algorithm], path, algorithm, len(algorithms) > 1))
	}
	return status, nil
}

// Check recomputes the digest for every requested algorithm with an
// existing slot, batched in one read pass, and compares against the
// stored value. A missing slot is a per-file error and nothing is
// computed for it.
func (o *Ops) Check(path string, algorithms []string) (Status, error) {
	if !accessible(path, false) {
		o.Sink.Errf("skipping %s (no read access)", path)
		return Error, nil
	}

	status := OK
	stored := make(map[string][]byte, len(algorithms))
	var present []string
	for _, algorithm := range algorithms {
		value, found, err := metadata.Get(path, algorithm)
		if errors.Is(err, metadata.ErrPermission) {
			o.Sink.Errf("%s: cannot read %s slot (permission denied)", path, algorithm)
			status |= Error
			continue
		}
		if err != nil {
			return status, err
		}
		if !found {
			o.Sink.Errf("%s: %s MISSING", path, algorithm)
			status |= Error
			continue
		}
		stored[algorithm] = value
		present = append(present, algorithm)
	}
	if len(present) == 0 {
		return status, nil
	}

	digests, err := digest.SumFile(path, present)
	if err != nil {
		return status, err
	}
	o.Log.Debug("computed digests", "path", path, "algorithms", present)
	for _, algorithm := range present {
		if bytes.Equal(digests[algorithm], stored[algorithm]) {
			o.Sink.Outf("%s: %s OK", path, algorithm)
			continue
		}
		o.Sink.Outf("%s: %s FAILED", path, algorithm)
		status |= Mismatch
	}
	return status, nil
}

// Print emits the stored digest for every requested algorithm with
// an existing slot. Nothing is computed; a missing slot is a
// per-file error with nothing printed for that algorithm.
func (o *Ops) Print(path string, algorithms []string) (Status, error) {
	if !accessible(path, false) {
		o.Sink.Errf("skipping %s (no read access)", path)
		return Error, nil
	}

	status := OK
	for _, algorithm := range algorithms {
		value, found, err := metadata.Get(path, algorithm)
		if errors.Is(err, metadata.ErrPermission) {
			o.Sink.Errf("%s: cannot read %s slot (permission denied)", path, algorithm)
			status |= Error
			continue
		}
		if err != nil {
			return status, err
		}
		if !found {
			o.Sink.Errf("%s: %s MISSING", path, algorithm)
			status |= Error
			continue
		}
		o.Sink.Outf("%s", digestLine(value, path, algorithm, len(algorithms) > 1))
	}
	return status, nil
}

// Reset removes the slot for every requested algorithm. Removal is
// idempotent, so resetting a file that never had a hash succeeds.
func (o *Ops) Reset(path string, algorithms []string) (Status, error) {
	if !accessible(path, true) {
		o.Sink.Errf("skipping %s (no write access)", path)
		return Error, nil
	}

	status := OK
	for _, algorithm := range algorithms {
		err := metadata.Remove(path, algorithm)
		if errors.Is(err, metadata.ErrPermission) {
			o.Sink.Errf("%s: cannot remove %s slot (permission denied)", path, algorithm)
			status |= Error
			continue
		}
		if err != nil {
			return status, err
		}
		if len(algorithms) > 1 {
			o.Sink.Outf("resetting %s on %s", algorithm, path)
		} else {
			o.Sink.Outf("resetting hash on %s", path)
		}
	}
	return status, nil
}

// HasHash checks slot presence for every requested algorithm without
// computing anything. A file missing any requested algorithm is
// flagged Mismatch and its path printed once.
func (o *Ops) HasHash(path string, algorithms []string) (Status, error) {
	status := OK
	anyMissing := false
	for _, algorithm := range algorithms {
		_, found, err := metadata.Get(path, algorithm)
		if errors.Is(err, metadata.ErrPermission) {
			o.Sink.Errf("%s: cannot read %s slot (permission denied)", path, algorithm)
			status |= Error
			continue
		}
		if err != nil {
			return status, err
		}
		if !found {
			anyMissing = true
		}
	}
	if anyMissing {
		o.Sink.Outf("%s", path)
		status |= Mismatch
	}
	return status, nil
}

// digestLine renders a digest output line in checksum-file form. The
// algorithm name is included only when the run requested more than
// one algorithm; single-algorithm runs keep the classic
// "<hex>  <path>" shape.
func digestLine(sum []byte, path, algorithm string, named bool) string {
	hexDigest := digest.Digest(sum).Hex()
	if named {
		return algorithm + ":" + hexDigest + "  " + path
	}
	return hexDigest + "  " + path
}

// accessible mirrors the capability preflight of the operations:
// check/print need read access, apply/reset read and write. The
// check is advisory (the queried capability is not cached and the
// later open can still fail), but it lets a whole file be skipped
// with one line before any work happens.
func accessible(path string, write bool) bool {
	mode := uint32(unix.R_OK)
	if write {
		mode |= unix.W_OK
	}
	return unix.Access(path, mode) == nil
}
