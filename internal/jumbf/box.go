// Package jumbf parses and validates JUMBF (ISO/IEC 19566-5) box
// structures as used by C2PA manifest stores.
package jumbf

import (
	"encoding/binary"
	"fmt"

	"github.com/encypherai/c2pa-text/internal/validation"
)

// Box header size constants.
const (
	// MinHeaderSize is the size of a standard box header (u32 size + type).
	MinHeaderSize = 8
	// ExtendedHeaderSize is the size of a header carrying a 64-bit size.
	ExtendedHeaderSize = 16
)

// Box types used by C2PA manifest stores.
const (
	// TypeSuperbox is the JUMBF superbox type tag.
	TypeSuperbox = "jumb"
	// TypeDescription is the JUMBF description box type tag.
	TypeDescription = "jumd"
)

// Box describes one parsed JUMBF box header. DeclaredSize is the total box
// length as encoded; zero means the box extends to the end of the enclosing
// buffer.
type Box struct {
	Offset       int
	HeaderLength int
	DeclaredSize uint64
	Type         string
	ContentStart int
}

// Content returns the box content bytes within buf, from ContentStart to
// the end of the box (or the end of buf for a zero-size box).
func (b Box) Content(buf []byte) []byte {
	end := len(buf)
	if b.DeclaredSize != 0 && b.DeclaredSize <= uint64(len(buf)-b.Offset) {
		end = b.Offset + int(b.DeclaredSize)
	}
	if b.ContentStart < 0 || b.ContentStart > end {
		return nil
	}
	return buf[b.ContentStart:end]
}

// ScanError reports why a box header could not be scanned. Code carries the
// validation outcome the failure maps to.
type ScanError struct {
	Code    validation.Code
	Message string
}

func (e *ScanError) Error() string {
	return e.Message
}

// ScanBox reads one box header at offset and returns the parsed Box. It is
// a pure function of its inputs: no byte of buf beyond the checked bounds
// is touched, and malformed sizes are reported as a ScanError rather than
// read past the buffer.
func ScanBox(buf []byte, offset int) (Box, error) {
	if offset < 0 || offset > len(buf) || len(buf)-offset < MinHeaderSize {
		remaining := 0
		if offset >= 0 && offset < len(buf) {
			remaining = len(buf) - offset
		}
		return Box{}, &ScanError{
			Code:    validation.CodeInvalidJumbfHeader,
			Message: fmt.Sprintf("too short for box header: %d bytes from offset %d, minimum %d", remaining, offset, MinHeaderSize),
		}
	}

	size32 := binary.BigEndian.Uint32(buf[offset : offset+4])
	box := Box{
		Offset:       offset,
		HeaderLength: MinHeaderSize,
		Type:         string(buf[offset+4 : offset+8]),
	}

	if size32 == 1 {
		if len(buf)-offset < ExtendedHeaderSize {
			return Box{}, &ScanError{
				Code:    validation.CodeTruncatedJumbf,
				Message: fmt.Sprintf("extended size declared but only %d bytes from offset %d, need %d", len(buf)-offset, offset, ExtendedHeaderSize),
			}
		}
		box.HeaderLength = ExtendedHeaderSize
		box.DeclaredSize = binary.BigEndian.Uint64(buf[offset+8 : offset+16])
	} else {
		box.DeclaredSize = uint64(size32)
	}
	box.ContentStart = offset + box.HeaderLength

	if box.DeclaredSize != 0 {
		if box.DeclaredSize < uint64(box.HeaderLength) {
			return Box{}, &ScanError{
				Code:    validation.CodeInvalidJumbfBoxSize,
				Message: fmt.Sprintf("invalid box size %d: minimum is %d", box.DeclaredSize, box.HeaderLength),
			}
		}
		if box.DeclaredSize > uint64(len(buf)-offset) {
			return Box{}, &ScanError{
				Code:    validation.CodeTruncatedJumbf,
				Message: fmt.Sprintf("box truncated: declared size %d, %d bytes from offset %d", box.DeclaredSize, len(buf)-offset, offset),
			}
		}
	}

	return box, nil
}
