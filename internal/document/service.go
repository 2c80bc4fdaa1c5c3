// Package document applies the manifest codecs to text and manifest files
// on disk, with advisory locking around in-place rewrites.
package document

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/encypherai/c2pa-text/internal/jumbf"
	"github.com/encypherai/c2pa-text/internal/stego"
	"github.com/encypherai/c2pa-text/internal/validation"
	"github.com/encypherai/c2pa-text/internal/wrapper"
)

// ErrAlreadyEmbedded is returned when embedding into text that already
// carries a manifest and force is not set.
var ErrAlreadyEmbedded = errors.New("text already carries an embedded manifest; use --force to replace it")

// InvalidManifestError reports a manifest that failed structural validation
// before embedding. It carries the full result for rendering.
type InvalidManifestError struct {
	Result *validation.Result
}

func (e *InvalidManifestError) Error() string {
	return fmt.Sprintf("manifest failed validation: %s", e.Result.PrimaryCode())
}

// FileReader abstracts reading files.
type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// FileWriter abstracts replacing file contents.
type FileWriter interface {
	WriteFile(ctx context.Context, path string, data []byte, perm os.FileMode) error
}

// Locker abstracts per-file advisory locking for in-place rewrites.
type Locker interface {
	TryLock(ctx context.Context, path string) (func() error, error)
}

const filePerm = 0o644

// EmbedOptions controls EmbedFile behavior.
type EmbedOptions struct {
	// Force skips manifest validation and replaces an existing embedding.
	Force bool
	// Strict enables description box checks during pre-embed validation.
	Strict bool
	// OutputPath receives the combined text; empty means in place.
	OutputPath string
}

// EmbedReport describes a completed embed.
type EmbedReport struct {
	Path         string
	ManifestSize int
	Offset       int
	Length       int
	Replaced     bool
}

// ExtractReport describes a located embedding and the recovered manifest.
type ExtractReport struct {
	Manifest []byte
	Clean    string
	Offset   int
	Length   int
	Stripped bool
}

// InspectReport describes an embedding without modifying anything. When no
// embedding is present only Found is meaningful.
type InspectReport struct {
	Found        bool
	Offset       int
	Length       int
	ManifestSize int
	Structure    *validation.Result
}

// Service coordinates file access, validation, and the embedding codecs.
type Service struct {
	reader    FileReader
	writer    FileWriter
	locker    Locker
	validator *jumbf.Validator
}

// NewService creates a Service with the given dependencies. A nil validator
// means the default recognized content types.
func NewService(reader FileReader, writer FileWriter, locker Locker, validator *jumbf.Validator) *Service {
	if validator == nil {
		validator = jumbf.NewValidator(nil)
	}
	return &Service{
		reader:    reader,
		writer:    writer,
		locker:    locker,
		validator: validator,
	}
}

// ValidateManifestFile reads a JUMBF manifest file and validates its
// container structure. IO failures are errors; validation findings are
// reported through the result.
func (s *Service) ValidateManifestFile(ctx context.Context, path string, strict bool) (*validation.Result, error) {
	data, err := s.reader.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return s.validator.ValidateStructure(data, strict), nil
}

// WrapFile reads a JUMBF manifest file and frames it as wrapper bytes.
func (s *Service) WrapFile(ctx context.Context, manifestPath string) ([]byte, error) {
	manifest, err := s.reader.ReadFile(ctx, manifestPath)
	if err != nil {
		return nil, err
	}
	return wrapper.Build(manifest)
}

// UnwrapFile reads a wrapper file and validates its framing. The payload is
// non-nil only when the result is valid.
func (s *Service) UnwrapFile(ctx context.Context, path string) ([]byte, *validation.Result, error) {
	data, err := s.reader.ReadFile(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	result := wrapper.Validate(data)
	if !result.Valid {
		return nil, result, nil
	}
	return wrapper.Payload(data), result, nil
}

// EmbedFile embeds a manifest file into a text file. Unless forced, the
// manifest must validate first and the text must not already carry an
// embedding. The write target is locked for the duration of the rewrite.
func (s *Service) EmbedFile(ctx context.Context, textPath, manifestPath string, opts EmbedOptions) (*EmbedReport, error) {
	manifest, err := s.reader.ReadFile(ctx, manifestPath)
	if err != nil {
		return nil, err
	}
	textData, err := s.reader.ReadFile(ctx, textPath)
	if err != nil {
		return nil, err
	}
	text := string(textData)

	if !opts.Force {
		if result := s.validator.ValidateStructure(manifest, opts.Strict); !result.Valid {
			return nil, &InvalidManifestError{Result: result}
		}
	}

	outPath := opts.OutputPath
	if outPath == "" {
		outPath = textPath
	}

	release, err := s.locker.TryLock(ctx, outPath)
	if err != nil {
		return nil, err
	}
	defer release()

	replaced := false
	existing, err := stego.FindWrapperInfo(text)
	switch {
	case err == nil:
		if !opts.Force {
			return nil, ErrAlreadyEmbedded
		}
		text = text[:existing.Offset]
		replaced = true
	case errors.Is(err, stego.ErrNoWrapper):
		// Nothing embedded yet.
	default:
		return nil, err
	}

	combined, err := stego.EmbedManifest(text, manifest)
	if err != nil {
		return nil, err
	}
	if err := s.writer.WriteFile(ctx, outPath, []byte(combined), filePerm); err != nil {
		return nil, err
	}

	info, err := stego.FindWrapperInfo(combined)
	if err != nil {
		return nil, err
	}
	return &EmbedReport{
		Path:         outPath,
		ManifestSize: len(manifest),
		Offset:       info.Offset,
		Length:       info.Length,
		Replaced:     replaced,
	}, nil
}

// ExtractFile recovers the manifest embedded in a text file. With strip set
// the embedding is removed from the file, leaving the visible prefix.
func (s *Service) ExtractFile(ctx context.Context, textPath string, strip bool) (*ExtractReport, error) {
	textData, err := s.reader.ReadFile(ctx, textPath)
	if err != nil {
		return nil, err
	}
	text := string(textData)

	info, err := stego.FindWrapperInfo(text)
	if err != nil {
		return nil, err
	}
	clean := text[:info.Offset]

	if strip {
		release, err := s.locker.TryLock(ctx, textPath)
		if err != nil {
			return nil, err
		}
		defer release()
		if err := s.writer.WriteFile(ctx, textPath, []byte(clean), filePerm); err != nil {
			return nil, err
		}
	}

	return &ExtractReport{
		Manifest: info.Manifest,
		Clean:    clean,
		Offset:   info.Offset,
		Length:   info.Length,
		Stripped: strip,
	}, nil
}

// InspectFile reports on the embedding in a text file without modifying
// it. A text with no embedding is not an error: Found is false. The
// embedded manifest's container structure is validated strictly so the
// report shows conformance, not just framing.
func (s *Service) InspectFile(ctx context.Context, path string) (*InspectReport, error) {
	textData, err := s.reader.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	info, err := stego.FindWrapperInfo(string(textData))
	if errors.Is(err, stego.ErrNoWrapper) {
		return &InspectReport{Found: false}, nil
	}
	if err != nil {
		return nil, err
	}

	return &InspectReport{
		Found:        true,
		Offset:       info.Offset,
		Length:       info.Length,
		ManifestSize: len(info.Manifest),
		Structure:    s.validator.ValidateStructure(info.Manifest, true),
	}, nil
}
