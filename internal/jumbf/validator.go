package jumbf

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/encypherai/c2pa-text/internal/validation"
)

// DefaultContentTypes is the content-type UUID set accepted in strict mode
// when a Validator is constructed without an explicit set. It holds the
// C2PA manifest store UUID.
var DefaultContentTypes = []uuid.UUID{
	uuid.MustParse("63327061-0011-0010-8000-00aa00389b71"),
}

// Validator checks JUMBF container structure. The zero value is not usable;
// construct with NewValidator.
type Validator struct {
	contentTypes []uuid.UUID
}

// NewValidator returns a Validator that accepts the given content-type
// UUIDs in strict mode. An empty set means DefaultContentTypes.
func NewValidator(contentTypes []uuid.UUID) *Validator {
	if len(contentTypes) == 0 {
		contentTypes = DefaultContentTypes
	}
	return &Validator{contentTypes: slices.Clone(contentTypes)}
}

// ValidateManifest checks that data holds a parseable JUMBF superbox. It
// reports EMPTY_MANIFEST for empty input, the scan failure code when the
// first box header cannot be read, and INVALID_JUMBF_HEADER when the top
// box is not a superbox.
func (v *Validator) ValidateManifest(data []byte) *validation.Result {
	result, _ := v.validateTop(data)
	return result
}

// ValidateStructure runs ValidateManifest and, when strict is set, also
// requires a description box as the superbox's first child, carrying a
// recognized content-type UUID. A missing, mistyped, or non-conformant
// description box adds MISSING_DESCRIPTION_BOX; at most one strict issue
// is recorded per call.
func (v *Validator) ValidateStructure(data []byte, strict bool) *validation.Result {
	result, top := v.validateTop(data)
	if !result.Valid || !strict {
		return result
	}

	child, err := ScanBox(data, top.ContentStart)
	if err != nil {
		result.AddIssue(validation.CodeMissingDescriptionBox,
			fmt.Sprintf("no description box after superbox header: %v", err))
		return result
	}
	if child.Type != TypeDescription {
		result.AddIssue(validation.CodeMissingDescriptionBox,
			fmt.Sprintf("expected description box type %q, got %q", TypeDescription, child.Type))
		return result
	}

	content := child.Content(data)
	if len(content) < 16 {
		result.AddIssue(validation.CodeMissingDescriptionBox,
			fmt.Sprintf("description box content too short for a content type UUID: %d bytes", len(content)))
		return result
	}
	id, err := uuid.FromBytes(content[:16])
	if err != nil || !slices.Contains(v.contentTypes, id) {
		result.AddIssue(validation.CodeMissingDescriptionBox,
			fmt.Sprintf("unrecognized content type UUID %s", id))
		return result
	}

	return result
}

// validateTop scans and checks the top-level box, returning it alongside
// the result so strict checks can continue from its content start.
func (v *Validator) validateTop(data []byte) (*validation.Result, Box) {
	result := validation.NewResult()

	if len(data) == 0 {
		result.AddIssue(validation.CodeEmptyManifest, "JUMBF content is empty")
		return result, Box{}
	}

	box, err := ScanBox(data, 0)
	if err != nil {
		addScanIssue(result, err)
		return result, Box{}
	}
	if box.Type != TypeSuperbox {
		result.AddIssue(validation.CodeInvalidJumbfHeader,
			fmt.Sprintf("expected superbox type %q, got %q", TypeSuperbox, box.Type))
		return result, box
	}

	return result, box
}

func addScanIssue(result *validation.Result, err error) {
	var scanErr *ScanError
	if errors.As(err, &scanErr) {
		result.AddIssue(scanErr.Code, scanErr.Message)
		return
	}
	result.AddIssue(validation.CodeInvalidJumbfHeader, err.Error())
}
