package validator

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/provstack/artifactcheck/pkg/checksum"
	acerrors "github.com/provstack/artifactcheck/pkg/errors"
)

// HashSum validates that a file's digest matches an expected digest.
// File semantics apply first: a missing optional file passes without
// hashing, and directories fail with a wrong-kind failure.
type HashSum struct {
	File

	// Sum is the expected digest.
	Sum []byte

	// Algorithm selects the digest algorithm. Empty means
	// checksum.DefaultAlgorithm.
	Algorithm checksum.Algorithm
}

// NewHashSum builds a HashSum validator from a hex-encoded digest as carried
// by manifests. An empty algorithm selects the default.
func NewHashSum(required bool, hexSum string, algorithm checksum.Algorithm) (*HashSum, error) {
	sum, err := checksum.ParseHex(hexSum)
	if err != nil {
		return nil, acerrors.Newf(acerrors.ErrCodeInvalidScheme, "bad expected digest: %v", err)
	}
	if algorithm == "" {
		algorithm = checksum.DefaultAlgorithm
	}
	if !algorithm.IsValid() {
		return nil, acerrors.Newf(acerrors.ErrCodeInvalidScheme,
			"unsupported digest algorithm: %q", algorithm)
	}
	return &HashSum{
		File:      File{Required: required},
		Sum:       sum,
		Algorithm: algorithm,
	}, nil
}

// Validate implements PathValidator.
func (h *HashSum) Validate(ctx context.Context, path string) error {
	if err := h.File.Validate(ctx, path); err != nil {
		return err
	}

	// The file checks pass for a missing optional file; there is nothing
	// to hash in that case.
	if _, err := os.Stat(path); isMissing(err) {
		return nil
	}

	algorithm := h.Algorithm
	if algorithm == "" {
		algorithm = checksum.DefaultAlgorithm
	}

	sum, err := checksum.Sum(path, algorithm)
	if err != nil {
		return acerrors.Wrap(acerrors.ErrCodeIOFailure, path, "failed to compute digest", err)
	}

	if !checksum.Equal(sum, h.Sum) {
		return acerrors.WithPath(acerrors.ErrCodeHashMismatch, path,
			fmt.Sprintf("digest %q mismatches the expected %q",
				hex.EncodeToString(sum), hex.EncodeToString(h.Sum)))
	}

	slog.Debug("digest verified", "path", path, "algorithm", algorithm)
	return nil
}
