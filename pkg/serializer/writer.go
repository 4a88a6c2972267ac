// Package serializer writes validation reports to stdout or files in JSON
// or YAML.
package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// StdoutURI is the special path indicating output should be written to stdout.
const StdoutURI = "-"

// Format is the output encoding for serialized reports.
type Format string

// Supported output formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// IsUnknown reports whether the format is unsupported.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML:
		return false
	}
	return true
}

// Serializer writes a value to its destination.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Writer serializes values to an io.Writer in the configured format.
type Writer struct {
	format Format
	out    io.Writer
}

// NewWriter creates a Writer targeting out.
func NewWriter(format Format, out io.Writer) *Writer {
	return &Writer{format: format, out: out}
}

// NewStdoutWriter creates a Writer targeting stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// Serialize implements Serializer.
func (w *Writer) Serialize(ctx context.Context, v any) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	switch w.format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize to json: %w", err)
		}
		data = append(data, '\n')
		_, err = w.out.Write(data)
		return err
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to serialize to yaml: %w", err)
		}
		_, err = w.out.Write(data)
		return err
	}
	return fmt.Errorf("unknown output format: %q", w.format)
}

// fileWriter creates the destination file at serialization time.
type fileWriter struct {
	format Format
	path   string
}

// Serialize implements Serializer.
func (w *fileWriter) Serialize(ctx context.Context, v any) error {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", w.path, err)
	}
	defer f.Close()

	if err := NewWriter(w.format, f).Serialize(ctx, v); err != nil {
		return err
	}
	return f.Close()
}

// NewFileWriterOrStdout creates a Serializer targeting the given path, or
// stdout when path is empty or StdoutURI.
func NewFileWriterOrStdout(format Format, path string) Serializer {
	if path == "" || path == StdoutURI {
		return NewStdoutWriter(format)
	}
	return &fileWriter{format: format, path: path}
}
