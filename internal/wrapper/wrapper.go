// Package wrapper implements the fixed-header framing that carries an
// opaque JUMBF payload: an 8-byte magic tag, a version byte, and a
// big-endian 32-bit payload length.
package wrapper

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/encypherai/c2pa-text/internal/validation"
)

const (
	// Version is the only wrapper version currently produced or accepted.
	Version = 1
	// HeaderSize is the fixed header length: 8 (magic) + 1 (version) + 4 (length).
	HeaderSize = 13
)

// Magic identifies a wrapper buffer.
var Magic = []byte("C2PATXT\x00")

// ErrManifestTooLarge reports a payload whose length does not fit the
// 32-bit length field.
var ErrManifestTooLarge = errors.New("manifest too large for wrapper length field")

// Build frames manifest as magic, version, big-endian payload length, then
// the payload itself.
func Build(manifest []byte) ([]byte, error) {
	if uint64(len(manifest)) > math.MaxUint32 {
		return nil, ErrManifestTooLarge
	}
	buf := make([]byte, 0, HeaderSize+len(manifest))
	buf = append(buf, Magic...)
	buf = append(buf, byte(Version))
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(manifest)))
	return append(buf, manifest...), nil
}

// Validate checks wrapper framing. Checks run in order of increasing
// structural assumption: header presence, magic, version, declared length
// against the actual payload; the first failure stops the walk so the
// earliest real problem is always the primary code. Version and
// DeclaredLength are set on the result as soon as those fields have been
// parsed, even when a later check fails. The inner JUMBF payload is not
// inspected.
func Validate(data []byte) *validation.Result {
	result := validation.NewResult()

	if len(data) < HeaderSize {
		result.AddIssue(validation.CodeCorruptedWrapper,
			fmt.Sprintf("wrapper too short: %d bytes, minimum %d", len(data), HeaderSize))
		return result
	}

	version := int(data[8])
	declared := binary.BigEndian.Uint32(data[9:13])
	result.Version = &version
	result.DeclaredLength = &declared

	if !bytes.Equal(data[:8], Magic) {
		result.AddIssue(validation.CodeInvalidMagic,
			fmt.Sprintf("invalid magic: expected %q, got %q", Magic, data[:8]))
		return result
	}
	if version != Version {
		result.AddIssue(validation.CodeUnsupportedVersion,
			fmt.Sprintf("unsupported version %d, expected %d", version, Version))
		return result
	}
	if actual := len(data) - HeaderSize; uint64(declared) != uint64(actual) {
		result.AddIssue(validation.CodeLengthMismatch,
			fmt.Sprintf("length mismatch: declares %d bytes, actual %d", declared, actual))
		return result
	}

	return result
}

// Payload returns the manifest bytes following the header. It assumes data
// already passed Validate; shorter buffers yield nil.
func Payload(data []byte) []byte {
	if len(data) < HeaderSize {
		return nil
	}
	return data[HeaderSize:]
}
