/*
Copyright © 2026 Provstack
SPDX-License-Identifier: Apache-2.0
*/

// Package checksum computes file digests and compares them in constant time.
package checksum

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
)

// Algorithm identifies a supported digest algorithm.
type Algorithm string

// Supported digest algorithms. MD5 remains the default for compatibility
// with existing manifests and is not recommended for new ones.
const (
	MD5    Algorithm = "md5"
	SHA1   Algorithm = "sha1"
	SHA256 Algorithm = "sha256"
	SHA512 Algorithm = "sha512"

	// DefaultAlgorithm is used when a manifest leaves hash_type unset.
	DefaultAlgorithm = MD5
)

// IsValid reports whether a is a supported algorithm.
func (a Algorithm) IsValid() bool {
	switch a {
	case MD5, SHA1, SHA256, SHA512:
		return true
	}
	return false
}

// New returns a fresh hash.Hash for the algorithm.
func (a Algorithm) New() (hash.Hash, error) {
	switch a {
	case MD5:
		return md5.New(), nil
	case SHA1:
		return sha1.New(), nil
	case SHA256:
		return sha256.New(), nil
	case SHA512:
		return sha512.New(), nil
	}
	return nil, fmt.Errorf("unsupported digest algorithm: %q", a)
}

// Sum computes the digest of the file at path using the given algorithm.
// The file is streamed in fixed-size chunks so arbitrarily large artifacts
// do not grow memory.
func Sum(path string, algorithm Algorithm) ([]byte, error) {
	h, err := algorithm.New()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(h, f); err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return h.Sum(nil), nil
}

// Equal compares two digests in constant time. Digests of unequal length
// compare unequal; the early return leaks only the length, which the digest
// algorithm already makes public.
func Equal(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// ParseHex decodes a hex-encoded digest string as supplied by manifests.
func ParseHex(s string) ([]byte, error) {
	sum, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex digest %q: %w", s, err)
	}
	return sum, nil
}
