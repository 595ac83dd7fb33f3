// Copyright 2026 The Xattrsum Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSumKnownVectors(t *testing.T) {
	tests := []struct {
		algorithm string
		input     string
		want      string
	}{
		{
			algorithm: "sha256",
			input:     "",
			want:      "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			algorithm: "sha256",
			input:     "hello",
			want:      "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
		{
			algorithm: "sha512",
			input:     "hello",
			want: "9b71d224bd62f3785d96d46ad3ea3d73319bfbc2890caadae2dff72519673ca7" +
				"2323c3d99ba5c11d7c7acc6e14b8c5da0c4663475c2e5c3adef46f73bcdec043",
		},
	}

	for _, test := range tests {
		digests, err := Sum(strings.NewReader(test.input), []string{test.algorithm})
		if err != nil {
			t.Fatalf("Sum(%q, %s): %v", test.input, test.algorithm, err)
		}
		if got := digests[test.algorithm].Hex(); got != test.want {
			t.Errorf("%s(%q) = %s, want %s", test.algorithm, test.input, got, test.want)
		}
	}
}

// TestSumSinglePassEquivalence verifies that the batched multi-
// algorithm pass produces the same digest as hashing the same bytes
// one algorithm at a time.
func TestSumSinglePassEquivalence(t *testing.T) {
	content := make([]byte, 3*copyBufferSize/2+17)
	rand.New(rand.NewSource(42)).Read(content)

	batched, err := Sum(bytes.NewReader(content), Names())
	if err != nil {
		t.Fatalf("batched Sum: %v", err)
	}

	for _, name := range Names() {
		individual, err := Sum(bytes.NewReader(content), []string{name})
		if err != nil {
			t.Fatalf("individual Sum(%s): %v", name, err)
		}
		if batched[name].Hex() != individual[name].Hex() {
			t.Errorf("%s: batched %s != individual %s",
				name, batched[name].Hex(), individual[name].Hex())
		}
	}
}

func TestSumCollapsesDuplicates(t *testing.T) {
	digests, err := Sum(strings.NewReader("abc"), []string{"sha256", "sha256"})
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}
	if len(digests) != 1 {
		t.Fatalf("got %d digests for duplicate request, want 1", len(digests))
	}
	// A double-counted accumulator would have hashed "abcabc".
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := digests["sha256"].Hex(); got != want {
		t.Errorf("sha256(abc) = %s, want %s", got, want)
	}
}

func TestSumUnknownAlgorithmFailsBeforeReading(t *testing.T) {
	reader := &countingReader{}
	if _, err := Sum(reader, []string{"sha256", "nope"}); err == nil {
		t.Fatal("Sum accepted an unknown algorithm")
	}
	if reader.reads != 0 {
		t.Errorf("Sum read %d times before rejecting the algorithm set", reader.reads)
	}
}

func TestSumRejectsEmptyAlgorithmSet(t *testing.T) {
	if _, err := Sum(strings.NewReader("x"), nil); err == nil {
		t.Error("Sum accepted an empty algorithm set")
	}
}

func TestSumFileEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	digests, err := SumFile(path, []string{"sha512"})
	if err != nil {
		t.Fatalf("SumFile: %v", err)
	}
	want := "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce" +
		"47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"
	if got := digests["sha512"].Hex(); got != want {
		t.Errorf("sha512(empty) = %s, want %s", got, want)
	}
}

func TestSumFileMissing(t *testing.T) {
	_, err := SumFile(filepath.Join(t.TempDir(), "absent"), []string{"sha256"})
	if err == nil {
		t.Error("SumFile succeeded on a missing file")
	}
}

type countingReader struct {
	reads int
}

func (r *countingReader) Read(p []byte) (int, error) {
	r.reads++
	return 0, os.ErrClosed
}
