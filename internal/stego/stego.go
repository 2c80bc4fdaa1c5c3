// Package stego hides wrapper byte buffers inside human-readable text
// using invisible Unicode code points. An embedding is a U+FEFF start
// marker followed by one variation selector per wrapper byte; the visible
// text preceding it is always NFC-normalized, so reported byte offsets are
// stable across composed and decomposed spellings of the same text.
package stego

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/encypherai/c2pa-text/internal/wrapper"
)

// startMarker opens an embedding run. It cannot appear inside a run, so it
// unambiguously separates the visible prefix from the payload.
const startMarker = '\uFEFF'

// Variation selector ranges encoding wrapper bytes: bytes 0-15 map into
// U+FE00..U+FE0F, bytes 16-255 into U+E0100..U+E01EF.
const (
	vsStart    = 0xFE00
	vsEnd      = 0xFE0F
	vsSupStart = 0xE0100
	vsSupEnd   = 0xE01EF
)

var (
	// ErrNoWrapper reports text with no valid embedded wrapper.
	ErrNoWrapper = errors.New("no manifest wrapper found in text")
	// ErrMultipleWrappers reports text with more than one valid embedding.
	ErrMultipleWrappers = errors.New("multiple manifest wrappers found in text")
)

// WrapperInfo describes a located embedding. Offset is the UTF-8 byte
// length of the visible prefix; Length is the byte length of everything
// from Offset to the end of the combined text. Both are positions in the
// encoded byte stream, not code point counts.
type WrapperInfo struct {
	Manifest []byte
	Offset   int
	Length   int
}

func byteToSelector(b byte) rune {
	if b <= 15 {
		return rune(vsStart + int(b))
	}
	return rune(vsSupStart + int(b) - 16)
}

func selectorToByte(r rune) (byte, bool) {
	switch {
	case r >= vsStart && r <= vsEnd:
		return byte(r - vsStart), true
	case r >= vsSupStart && r <= vsSupEnd:
		return byte(r - vsSupStart + 16), true
	}
	return 0, false
}

// EmbedManifest frames manifest via the wrapper codec and appends it to
// text as an invisible run. The text is NFC-normalized first; normalization
// must precede any offset computation because combining characters change
// the byte length of the visible portion.
func EmbedManifest(text string, manifest []byte) (string, error) {
	data, err := wrapper.Build(manifest)
	if err != nil {
		return "", err
	}

	normalized := norm.NFC.String(text)
	var b strings.Builder
	b.Grow(len(normalized) + utf8.RuneLen(startMarker) + 4*len(data))
	b.WriteString(normalized)
	b.WriteRune(startMarker)
	for _, d := range data {
		b.WriteRune(byteToSelector(d))
	}
	return b.String(), nil
}

// FindWrapperInfo locates the embedded wrapper in text. Start marker
// candidates whose following run does not decode to a valid wrapper are
// skipped, so a document that merely begins with a byte order mark is not
// mistaken for an embedding. More than one valid embedding yields
// ErrMultipleWrappers; none yields ErrNoWrapper.
func FindWrapperInfo(text string) (*WrapperInfo, error) {
	var found *WrapperInfo
	for i, r := range text {
		if r != startMarker {
			continue
		}
		run := decodeRun(text[i+utf8.RuneLen(startMarker):])
		if !wrapper.Validate(run).Valid {
			continue
		}
		if found != nil {
			return nil, ErrMultipleWrappers
		}
		found = &WrapperInfo{
			Manifest: wrapper.Payload(run),
			Offset:   i,
			Length:   len(text) - i,
		}
	}
	if found == nil {
		return nil, ErrNoWrapper
	}
	return found, nil
}

// decodeRun maps the leading variation selectors of s back to bytes,
// stopping at the first code point outside the encoding ranges.
func decodeRun(s string) []byte {
	var out []byte
	for _, r := range s {
		b, ok := selectorToByte(r)
		if !ok {
			break
		}
		out = append(out, b)
	}
	return out
}

// ExtractManifest returns the embedded manifest bytes and the visible text
// preceding the embedding. The visible prefix is returned as stored: it was
// NFC-normalized at embed time and is not re-normalized here.
func ExtractManifest(text string) ([]byte, string, error) {
	info, err := FindWrapperInfo(text)
	if err != nil {
		return nil, "", err
	}
	return info.Manifest, text[:info.Offset], nil
}
