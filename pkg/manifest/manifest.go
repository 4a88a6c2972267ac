/*
Copyright © 2026 Provstack
SPDX-License-Identifier: Apache-2.0
*/

// Package manifest loads declarative validation schemes from YAML and
// compiles them into validator trees.
//
// A manifest maps relative paths to validator kinds:
//
//	scheme:
//	  - path: RELEASE.INFO
//	    kind: release-info
//	  - path: repodata
//	    kind: repodata
//	  - path: iso/bundle.iso
//	    kind: hashsum
//	    required: true
//	    hash: d41d8cd98f00b204e9800998ecf8427e
//	    hash_type: md5
//
// Kinds: file, dir, scheme, hashsum, release-info, repodata. Entry order is
// validation order.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/provstack/artifactcheck/pkg/checksum"
	"github.com/provstack/artifactcheck/pkg/content"
	acerrors "github.com/provstack/artifactcheck/pkg/errors"
	"github.com/provstack/artifactcheck/pkg/validator"
)

// Validator kinds accepted in manifests.
const (
	KindFile        = "file"
	KindDir         = "dir"
	KindScheme      = "scheme"
	KindHashSum     = "hashsum"
	KindReleaseInfo = "release-info"
	KindRepoData    = "repodata"
)

// Entry declares one path of a validation scheme.
type Entry struct {
	// Path is the relative path the validator applies to.
	Path string `yaml:"path"`

	// Kind selects the validator.
	Kind string `yaml:"kind"`

	// Required controls whether a missing path is a failure. Absent means
	// the kind's default: release-info and repodata entries are required,
	// the rest optional.
	Required *bool `yaml:"required,omitempty"`

	// ContentType selects the parser for release-info entries.
	ContentType string `yaml:"content_type,omitempty"`

	// Hash is the hex-encoded expected digest for hashsum entries.
	Hash string `yaml:"hash,omitempty"`

	// HashType selects the digest algorithm for hashsum entries.
	HashType string `yaml:"hash_type,omitempty"`

	// Files declares children for dir and scheme entries.
	Files []Entry `yaml:"files,omitempty"`
}

// Manifest is a declarative validation scheme.
type Manifest struct {
	Scheme []Entry `yaml:"scheme"`
}

// Parse decodes a manifest from YAML bytes.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	return &m, nil
}

// Load reads and decodes a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}
	return Parse(data)
}

// Compile builds the validator tree declared by the manifest.
func (m *Manifest) Compile() (validator.PathValidator, error) {
	s, err := compileScheme(m.Scheme)
	if err != nil {
		return nil, err
	}
	return &validator.SchemeValidator{Scheme: s}, nil
}

func compileScheme(entries []Entry) (*validator.Scheme, error) {
	s := validator.NewScheme()
	for _, e := range entries {
		v, err := compileEntry(e)
		if err != nil {
			return nil, err
		}
		s.Add(e.Path, v)
	}
	return s, nil
}

func compileEntry(e Entry) (validator.PathValidator, error) {
	if e.Path == "" {
		return nil, acerrors.Newf(acerrors.ErrCodeInvalidScheme,
			"entry of kind %q has no path", e.Kind)
	}

	switch e.Kind {
	case KindFile:
		return &validator.File{Required: requiredOr(e.Required, false)}, nil

	case KindDir:
		files, err := compileScheme(e.Files)
		if err != nil {
			return nil, err
		}
		return &validator.Dir{Required: requiredOr(e.Required, false), Files: files}, nil

	case KindScheme:
		files, err := compileScheme(e.Files)
		if err != nil {
			return nil, err
		}
		return &validator.SchemeValidator{Scheme: files}, nil

	case KindHashSum:
		if e.Hash == "" {
			return nil, acerrors.Newf(acerrors.ErrCodeInvalidScheme,
				"hashsum entry %q has no hash", e.Path)
		}
		return validator.NewHashSum(requiredOr(e.Required, false), e.Hash, checksum.Algorithm(e.HashType))

	case KindReleaseInfo:
		contentType := content.Type(e.ContentType)
		if contentType != "" && !contentType.IsValid() {
			return nil, acerrors.Newf(acerrors.ErrCodeInvalidScheme,
				"entry %q: unsupported content type %q", e.Path, e.ContentType)
		}
		return validator.NewReleaseInfoValidator(requiredOr(e.Required, true), contentType), nil

	case KindRepoData:
		return validator.NewRepoDataValidator(requiredOr(e.Required, true)), nil

	default:
		return nil, acerrors.Newf(acerrors.ErrCodeInvalidScheme,
			"entry %q: unknown validator kind %q", e.Path, e.Kind)
	}
}

func requiredOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
