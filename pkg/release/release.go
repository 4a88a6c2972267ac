/*
Copyright © 2026 Provstack
SPDX-License-Identifier: Apache-2.0
*/

// Package release declares the content scheme of release-metadata files
// (RELEASE.INFO) shipped inside upgrade bundles.
package release

import (
	"fmt"

	"github.com/provstack/artifactcheck/pkg/scheme"
)

// Field names of the release-metadata record.
const (
	FieldName       = "NAME"
	FieldVersion    = "VERSION"
	FieldBuild      = "BUILD"
	FieldOS         = "OS"
	FieldComponents = "COMPONENTS"
	FieldRelease    = "RELEASE"
)

// Scheme returns the content scheme for release-metadata files.
//
// VERSION is three dot-separated non-negative integers, BUILD is one or more
// digits, COMPONENTS is the sequence of packages provided by the repository.
// RELEASE is optional and absent by default. Unknown fields are retained as
// extras, never rejected.
func Scheme() *scheme.Descriptor {
	return &scheme.Descriptor{
		Name: "release-info",
		Fields: []scheme.Field{
			{Name: FieldName, Required: true, Check: scheme.String()},
			{Name: FieldVersion, Required: true, Check: scheme.DottedTriple()},
			{Name: FieldBuild, Required: true, Check: scheme.Digits()},
			{Name: FieldOS, Required: true, Check: scheme.String()},
			{Name: FieldComponents, Required: true, Check: scheme.Sequence()},
			{Name: FieldRelease, Required: false, Check: scheme.String()},
		},
	}
}

// Info is a typed view over a validated release-metadata record.
type Info struct {
	inst *scheme.Instance
}

// Parse validates a decoded value against the release-info scheme.
func Parse(value any) (*Info, error) {
	inst, err := Scheme().Instantiate(value)
	if err != nil {
		return nil, err
	}
	return &Info{inst: inst}, nil
}

// Name returns the repository name.
func (i *Info) Name() string {
	return asString(i.inst.Declared[FieldName])
}

// Version returns the three-part version string.
func (i *Info) Version() string {
	return asString(i.inst.Declared[FieldVersion])
}

// Build returns the build number string.
func (i *Info) Build() string {
	return asString(i.inst.Declared[FieldBuild])
}

// OS returns the target operating system string.
func (i *Info) OS() string {
	return asString(i.inst.Declared[FieldOS])
}

// Components returns the packages provided by the repository.
func (i *Info) Components() []string {
	seq, _ := i.inst.Declared[FieldComponents].([]any)
	out := make([]string, 0, len(seq))
	for _, v := range seq {
		out = append(out, asString(v))
	}
	return out
}

// Release returns the optional release identifier.
// ok is false when the source file omitted it.
func (i *Info) Release() (value string, ok bool) {
	v, ok := i.inst.Declared[FieldRelease]
	if !ok {
		return "", false
	}
	return asString(v), true
}

// Extra returns fields present in the source file but not declared by the
// scheme.
func (i *Info) Extra() map[string]any {
	return i.inst.Extra
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
