/*
Copyright © 2026 Provstack
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	acerrors "github.com/provstack/artifactcheck/pkg/errors"
)

// isMissing reports whether a stat error means the path does not exist.
// A path declared under a regular file stats with ENOTDIR; the scheme treats
// it as absent, the same as a missing entry in an existing directory.
func isMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

// PathValidator validates a filesystem path against a declared expectation.
// Implementations either return nil or exactly one structured failure per
// call, never mutate the filesystem, and are safe for concurrent use.
type PathValidator interface {
	Validate(ctx context.Context, path string) error
}

// Scheme is an ordered mapping of relative paths to child validators.
// Entries validate in insertion order; the first failing child stops the run.
type Scheme struct {
	entries []schemeEntry
}

type schemeEntry struct {
	rel       string
	validator PathValidator
}

// NewScheme creates an empty scheme.
func NewScheme() *Scheme {
	return &Scheme{}
}

// Add appends a child validator under the given relative path.
// Returns the scheme for chaining.
func (s *Scheme) Add(rel string, v PathValidator) *Scheme {
	s.entries = append(s.entries, schemeEntry{rel: rel, validator: v})
	return s
}

// Len returns the number of declared children.
func (s *Scheme) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// validate runs every declared child against root, fail-fast.
func (s *Scheme) validate(ctx context.Context, root string) error {
	if s == nil {
		return nil
	}
	for _, e := range s.entries {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := e.validator.Validate(ctx, filepath.Join(root, e.rel)); err != nil {
			return err
		}
	}
	return nil
}

// File validates that a path is an existing regular file.
type File struct {
	// Required controls whether a missing path is a failure.
	Required bool

	// Content, when set, validates the file's contents after the
	// existence checks pass.
	Content PathValidator
}

// Validate implements PathValidator.
func (f *File) Validate(ctx context.Context, path string) error {
	slog.Debug("starting file validation", "path", path)

	info, err := os.Stat(path)
	if isMissing(err) {
		if f.Required {
			return acerrors.WithPath(acerrors.ErrCodePathMissing, path, "file should exist")
		}
		return nil
	}
	if err != nil {
		return acerrors.Wrap(acerrors.ErrCodeIOFailure, path, "failed to stat path", err)
	}

	if !info.Mode().IsRegular() {
		return acerrors.WithPath(acerrors.ErrCodeWrongPathKind, path, "not a regular file")
	}

	if f.Content != nil {
		return f.Content.Validate(ctx, path)
	}
	return nil
}

// Dir validates that a path is an existing directory whose declared children
// validate in turn.
type Dir struct {
	// Required controls whether a missing path is a failure.
	Required bool

	// Files declares the expected children relative to the directory.
	Files *Scheme
}

// Validate implements PathValidator.
func (d *Dir) Validate(ctx context.Context, path string) error {
	slog.Debug("starting directory validation", "path", path)

	info, err := os.Stat(path)
	if isMissing(err) {
		if d.Required {
			return acerrors.WithPath(acerrors.ErrCodePathMissing, path, "directory should exist")
		}
		return nil
	}
	if err != nil {
		return acerrors.Wrap(acerrors.ErrCodeIOFailure, path, "failed to stat path", err)
	}

	if !info.IsDir() {
		return acerrors.WithPath(acerrors.ErrCodeWrongPathKind, path, "not a directory")
	}

	return d.Files.validate(ctx, path)
}

// SchemeValidator validates declared children under a root without checking
// the root itself. Callers ensure the root is valid before invoking it, or
// nest it inside a Dir.
//
// TODO: decide whether the root should carry a required flag the way Dir
// does; current behavior leaves the root unchecked.
type SchemeValidator struct {
	// Scheme declares the expected children relative to the root.
	Scheme *Scheme
}

// Validate implements PathValidator.
func (s *SchemeValidator) Validate(ctx context.Context, path string) error {
	return s.Scheme.validate(ctx, path)
}
