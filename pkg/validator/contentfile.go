package validator

import (
	"context"
	"log/slog"
	"os"

	"github.com/provstack/artifactcheck/pkg/content"
	acerrors "github.com/provstack/artifactcheck/pkg/errors"
	"github.com/provstack/artifactcheck/pkg/scheme"
)

// ContentFile validates that a file's contents parse under a declared
// content type and satisfy a content scheme. It is attached as a File's
// Content validator; the file-kind checks happen there.
//
// Validation is a predicate, not a loader: the parsed value is logged for
// observability and discarded.
type ContentFile struct {
	// Scheme declares the expected record shape.
	Scheme *scheme.Descriptor

	// Type selects the parser. Empty means content.DefaultType.
	Type content.Type
}

// Validate implements PathValidator.
func (c *ContentFile) Validate(_ context.Context, path string) error {
	contentType := c.Type
	if contentType == "" {
		contentType = content.DefaultType
	}
	slog.Debug("file content type", "path", path, "type", contentType)

	data, err := os.ReadFile(path)
	if err != nil {
		return acerrors.Wrap(acerrors.ErrCodeIOFailure, path, "failed to read file", err)
	}

	value, err := content.Decode(data, contentType)
	if err != nil {
		return acerrors.Wrap(acerrors.ErrCodeContentUnreadable, path,
			"file content could not be parsed", err)
	}
	slog.Debug("file content", "path", path, "content", value)

	inst, err := c.Scheme.Instantiate(value)
	if err != nil {
		return acerrors.Wrap(acerrors.ErrCodeContentInvalid, path,
			"file content validation failed", err)
	}

	slog.Info("file content validation succeeded",
		"path", path,
		"scheme", c.Scheme.Name,
		"declared", len(inst.Declared),
		"extra", len(inst.Extra))
	return nil
}
