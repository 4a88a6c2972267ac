/*
Copyright © 2026 Provstack
SPDX-License-Identifier: Apache-2.0
*/

// Package validator provides schema-driven validation of filesystem artifacts.
//
// # Overview
//
// A validation scheme declares the expected layout of an artifact tree: which
// files and directories must exist, what their contents must look like, and
// what their digests must be. Validators walk a real filesystem path against
// the declaration and report the first deviation as a structured failure.
//
// # Validators
//
// The engine is a closed set of PathValidator implementations:
//
//   - File        - the path is a regular file, optionally with content checks
//   - Dir         - the path is a directory with a declared child scheme
//   - SchemeValidator - declared children under an unchecked root
//   - HashSum     - a file whose digest must match an expected digest
//   - ContentFile - file contents parse and validate under a content scheme
//
// Validators are immutable after construction and safe to share across
// concurrent validation runs. Validation never mutates the filesystem.
//
// # Failure reporting
//
// Composite validators stop at the first failing child and propagate its
// failure unchanged. A validation run therefore reports a single root cause
// at a time, encouraging fix-and-rerun over a wall of errors. Failures are
// *errors.Failure values carrying a stable code, the offending path, and a
// descriptive message.
//
// # Usage
//
// Basic validation:
//
//	v := validator.NewRepoDataValidator(true)
//	if err := v.Validate(ctx, "/srv/repo/repodata"); err != nil {
//	    fmt.Printf("code=%s path=%s\n", errors.CodeOf(err), errors.PathOf(err))
//	}
//
// Batch validation across several roots:
//
//	r := validator.NewRunner(validator.WithVersion(version))
//	report, err := r.Run(ctx, targets)
package validator
