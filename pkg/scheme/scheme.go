/*
Copyright © 2026 Provstack
SPDX-License-Identifier: Apache-2.0
*/

// Package scheme provides declarative validation of structured file contents.
//
// # Overview
//
// A Descriptor declares the expected fields of a structured record: name,
// required-ness, and an optional per-field format constraint. Instantiating a
// Descriptor against a generic decoded value (a mapping or a sequence)
// enforces the declaration and yields an Instance separating declared fields
// from unexpected ones.
//
// # Unexpected attributes
//
// Fields present in the data but absent from the declaration are preserved on
// the resulting Instance as extra fields. They are never rejected and never
// dropped. Callers that want to ignore known-benign extras can narrow them
// with FilterExtra.
//
// # Shapes
//
// Mappings bind by field name. Sequences bind positionally in declaration
// order; supplying more values than declared fields is an arity error. Any
// other top-level shape is rejected.
package scheme

import (
	"fmt"

	"github.com/agnivade/levenshtein"

	acerrors "github.com/provstack/artifactcheck/pkg/errors"
)

// Field declares a single expected field of a structured record.
type Field struct {
	// Name is the field name as it appears in the source data.
	Name string

	// Required controls whether instantiation fails when the field is
	// absent.
	Required bool

	// Check validates the raw field value. Nil accepts any value.
	Check func(value any) error
}

// Descriptor declares the expected shape of a structured record.
// Field order matters: sequences bind positionally.
type Descriptor struct {
	// Name identifies the record type in failure messages.
	Name string

	// Fields is the ordered set of declared fields.
	Fields []Field
}

// Instance is the result of a successful instantiation.
type Instance struct {
	// Declared holds values for fields named in the Descriptor.
	Declared map[string]any

	// Extra holds values present in the data but not declared.
	// Preserved, never rejected.
	Extra map[string]any
}

// maxSuggestDistance bounds the edit distance for did-you-mean hints on
// missing required fields.
const maxSuggestDistance = 2

// Instantiate validates a generic decoded value against the descriptor.
// Mappings bind by name, sequences bind positionally. The first violated
// constraint produces the failure.
func (d *Descriptor) Instantiate(value any) (*Instance, error) {
	switch v := value.(type) {
	case map[string]any:
		return d.fromMapping(v)
	case []any:
		return d.fromSequence(v)
	default:
		return nil, acerrors.Newf(acerrors.ErrCodeContentInvalid,
			"%s: unsupported top-level content shape: %T", d.Name, value)
	}
}

func (d *Descriptor) fromMapping(data map[string]any) (*Instance, error) {
	inst := &Instance{
		Declared: make(map[string]any),
		Extra:    make(map[string]any),
	}

	declared := make(map[string]bool, len(d.Fields))
	for _, f := range d.Fields {
		declared[f.Name] = true
	}
	for key, val := range data {
		if declared[key] {
			inst.Declared[key] = val
		} else {
			inst.Extra[key] = val
		}
	}

	for _, f := range d.Fields {
		val, ok := inst.Declared[f.Name]
		if !ok {
			if !f.Required {
				continue
			}
			msg := fmt.Sprintf("%s: missing required field %q", d.Name, f.Name)
			if hint := suggest(f.Name, inst.Extra); hint != "" {
				msg = fmt.Sprintf("%s (did you mean %q?)", msg, hint)
			}
			return nil, acerrors.New(acerrors.ErrCodeContentInvalid, msg)
		}
		if err := checkField(d.Name, f, val); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

func (d *Descriptor) fromSequence(data []any) (*Instance, error) {
	if len(data) > len(d.Fields) {
		return nil, acerrors.Newf(acerrors.ErrCodeContentInvalid,
			"%s: too many values: got %d, declared %d", d.Name, len(data), len(d.Fields))
	}

	inst := &Instance{
		Declared: make(map[string]any),
		Extra:    make(map[string]any),
	}

	for i, f := range d.Fields {
		if i >= len(data) {
			if f.Required {
				return nil, acerrors.Newf(acerrors.ErrCodeContentInvalid,
					"%s: missing required field %q", d.Name, f.Name)
			}
			continue
		}
		if err := checkField(d.Name, f, data[i]); err != nil {
			return nil, err
		}
		inst.Declared[f.Name] = data[i]
	}
	return inst, nil
}

func checkField(scheme string, f Field, value any) error {
	if f.Check == nil {
		return nil
	}
	if err := f.Check(value); err != nil {
		return acerrors.Newf(acerrors.ErrCodeContentInvalid,
			"%s: field %q: %v", scheme, f.Name, err)
	}
	return nil
}

// suggest returns the extra key closest to name within maxSuggestDistance,
// or the empty string when none qualifies.
func suggest(name string, extra map[string]any) string {
	best := ""
	bestDist := maxSuggestDistance + 1
	for key := range extra {
		d := levenshtein.ComputeDistance(name, key)
		// Ties resolve to the lexicographically smallest key so the
		// suggestion does not depend on map iteration order.
		if d < bestDist || (d == bestDist && key < best) {
			best = key
			bestDist = d
		}
	}
	return best
}
