package validation

// Code identifies the outcome kind of a validation check. The set is
// append-only: new codes may be added, existing codes are never renumbered
// or removed, so callers can branch on them across versions.
type Code int

const (
	// CodeValid reports a structurally compliant input.
	CodeValid Code = iota

	// Manifest and JUMBF container failures.
	CodeEmptyManifest
	CodeInvalidJumbfHeader
	CodeInvalidJumbfBoxSize
	CodeTruncatedJumbf
	CodeMissingDescriptionBox

	// Wrapper framing failures.
	CodeCorruptedWrapper
	CodeInvalidMagic
	CodeUnsupportedVersion
	CodeLengthMismatch
)

// String returns the stable C2PA-style identifier for the code. Reports and
// JSON output carry these names.
func (c Code) String() string {
	switch c {
	case CodeValid:
		return "valid"
	case CodeEmptyManifest:
		return "manifest.text.emptyManifest"
	case CodeInvalidJumbfHeader:
		return "manifest.jumbf.invalidHeader"
	case CodeInvalidJumbfBoxSize:
		return "manifest.jumbf.invalidBoxSize"
	case CodeTruncatedJumbf:
		return "manifest.jumbf.truncated"
	case CodeMissingDescriptionBox:
		return "manifest.jumbf.missingDescriptionBox"
	case CodeCorruptedWrapper:
		return "manifest.text.corruptedWrapper"
	case CodeInvalidMagic:
		return "manifest.text.invalidMagic"
	case CodeUnsupportedVersion:
		return "manifest.text.unsupportedVersion"
	case CodeLengthMismatch:
		return "manifest.text.lengthMismatch"
	}
	return "unknown"
}

// MarshalText encodes the code as its stable identifier.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
