// Copyright 2026 The Xattrsum Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"sort"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Digest is the raw byte output of a hash algorithm applied to file
// contents. A digest always has nonzero length once computed; there
// is no empty digest.
type Digest []byte

// Hex returns the canonical lowercase-hex rendering of the digest,
// two characters per byte.
func (d Digest) Hex() string {
	return hex.EncodeToString(d)
}

// ParseHex parses a lowercase-hex digest string back into raw bytes.
func ParseHex(hexString string) (Digest, error) {
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return nil, fmt.Errorf("parsing digest: %w", err)
	}
	if len(decoded) == 0 {
		return nil, fmt.Errorf("parsing digest: empty input")
	}
	return Digest(decoded), nil
}

// algorithms maps algorithm names to accumulator constructors. The
// constructors never fail for the registered entries; the error
// return exists because blake2b's keyed constructor carries one.
var algorithms = map[string]func() (hash.Hash, error){
	"sha256":   func() (hash.Hash, error) { return sha256.New(), nil },
	"sha512":   func() (hash.Hash, error) { return sha512.New(), nil },
	"sha3-256": func() (hash.Hash, error) { return sha3.New256(), nil },
	"blake2b":  func() (hash.Hash, error) { return blake2b.New256(nil) },
	"blake3":   func() (hash.Hash, error) { return blake3.New(), nil },
}

// New returns a fresh streaming accumulator for the named algorithm.
// The name must be one of [Names]; anything else is a configuration
// error that the caller must treat as fatal.
func New(name string) (hash.Hash, error) {
	constructor, ok := algorithms[name]
	if !ok {
		return nil, fmt.Errorf("unknown digest algorithm %q (known: %v)", name, Names())
	}
	accumulator, err := constructor()
	if err != nil {
		return nil, fmt.Errorf("initializing %s accumulator: %w", name, err)
	}
	return accumulator, nil
}

// Known reports whether name resolves to a registered algorithm.
func Known(name string) bool {
	_, ok := algorithms[name]
	return ok
}

// Names returns the registered algorithm names in sorted order.
func Names() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the algorithms used when the caller requests none.
func Default() []string {
	return []string{"sha256", "blake3"}
}
