package cmd

import (
	"context"
	"os"

	"github.com/encypherai/c2pa-text/internal/config"
	"github.com/encypherai/c2pa-text/internal/document"
	"github.com/encypherai/c2pa-text/internal/fs"
	"github.com/encypherai/c2pa-text/internal/jumbf"
	"github.com/encypherai/c2pa-text/internal/lock"
	"github.com/encypherai/c2pa-text/internal/validation"
)

// documentServicer abstracts the document.Service methods used by adapters.
type documentServicer interface {
	ValidateManifestFile(ctx context.Context, path string, strict bool) (*validation.Result, error)
	WrapFile(ctx context.Context, manifestPath string) ([]byte, error)
	UnwrapFile(ctx context.Context, path string) ([]byte, *validation.Result, error)
	EmbedFile(ctx context.Context, textPath, manifestPath string, opts document.EmbedOptions) (*document.EmbedReport, error)
	ExtractFile(ctx context.Context, textPath string, strip bool) (*document.ExtractReport, error)
	InspectFile(ctx context.Context, path string) (*document.InspectReport, error)
}

// wireFunc builds the servicer and effective config for one command run.
// Wiring is deferred to run time so persistent flags are already parsed.
type wireFunc func() (documentServicer, *config.Config, error)

// wireService is the production wiring: OS file access, flock-based
// locking, and recognized content types from the resolved config.
func wireService() (documentServicer, *config.Config, error) {
	cfg, err := resolveConfig(GetConfigPath())
	if err != nil {
		return nil, nil, err
	}
	svc := document.NewService(fs.OSReader{}, fs.OSWriter{}, lock.FlockLocker{}, jumbf.NewValidator(cfg.UUIDs()))
	return svc, cfg, nil
}

// fixedWire returns a wireFunc that always yields the given servicer with
// default config. Tests use it to bypass file-based wiring.
func fixedWire(svc documentServicer) wireFunc {
	return func() (documentServicer, *config.Config, error) {
		return svc, config.Default(), nil
	}
}

// resolveConfig loads an explicit config path, falls back to
// .c2patext.yaml in the working directory, then to built-in defaults.
func resolveConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	if _, err := os.Stat(config.DefaultFilename); err == nil {
		return config.Load(config.DefaultFilename)
	}
	return config.Default(), nil
}

// convertIssues converts validation issues to their CLI output form.
func convertIssues(issues []validation.Issue) []ValidationIssue {
	out := make([]ValidationIssue, len(issues))
	for i, issue := range issues {
		out[i] = ValidationIssue{
			Code:    issue.Code.String(),
			Message: issue.Message,
		}
	}
	return out
}

// --- validateAdapter ---

type validateAdapter struct {
	wire wireFunc
}

func (a *validateAdapter) ValidateManifest(ctx context.Context, path string, strict bool) (*ValidateResult, error) {
	svc, cfg, err := a.wire()
	if err != nil {
		return nil, err
	}

	result, err := svc.ValidateManifestFile(ctx, path, strict || cfg.Strict)
	if err != nil {
		return nil, err
	}
	return &ValidateResult{
		Path:        path,
		Valid:       result.Valid,
		PrimaryCode: result.PrimaryCode().String(),
		Issues:      convertIssues(result.Issues),
	}, nil
}

// --- wrapAdapter ---

type wrapAdapter struct {
	wire wireFunc
}

func (a *wrapAdapter) Wrap(ctx context.Context, manifestPath string) ([]byte, error) {
	svc, _, err := a.wire()
	if err != nil {
		return nil, err
	}
	return svc.WrapFile(ctx, manifestPath)
}

// --- unwrapAdapter ---

type unwrapAdapter struct {
	wire wireFunc
}

func (a *unwrapAdapter) Unwrap(ctx context.Context, path string) (*UnwrapResult, error) {
	svc, _, err := a.wire()
	if err != nil {
		return nil, err
	}

	payload, result, err := svc.UnwrapFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return &UnwrapResult{
		Path:           path,
		Valid:          result.Valid,
		PrimaryCode:    result.PrimaryCode().String(),
		Version:        result.Version,
		DeclaredLength: result.DeclaredLength,
		PayloadSize:    len(payload),
		Issues:         convertIssues(result.Issues),
		Payload:        payload,
	}, nil
}

// --- embedAdapter ---

type embedAdapter struct {
	wire wireFunc
}

func (a *embedAdapter) Embed(ctx context.Context, textPath, manifestPath string, force, strict bool, output string) (*EmbedResult, error) {
	svc, cfg, err := a.wire()
	if err != nil {
		return nil, err
	}

	report, err := svc.EmbedFile(ctx, textPath, manifestPath, document.EmbedOptions{
		Force:      force,
		Strict:     strict || cfg.Strict,
		OutputPath: output,
	})
	if err != nil {
		return nil, err
	}
	return &EmbedResult{
		Path:         report.Path,
		ManifestSize: report.ManifestSize,
		Offset:       report.Offset,
		Length:       report.Length,
		Replaced:     report.Replaced,
	}, nil
}

// --- extractAdapter ---

type extractAdapter struct {
	wire wireFunc
}

func (a *extractAdapter) Extract(ctx context.Context, textPath string, strip bool) (*ExtractResult, error) {
	svc, _, err := a.wire()
	if err != nil {
		return nil, err
	}

	report, err := svc.ExtractFile(ctx, textPath, strip)
	if err != nil {
		return nil, err
	}
	return &ExtractResult{
		Path:         textPath,
		Offset:       report.Offset,
		Length:       report.Length,
		ManifestSize: len(report.Manifest),
		Stripped:     report.Stripped,
		Manifest:     report.Manifest,
	}, nil
}

// --- inspectAdapter ---

type inspectAdapter struct {
	wire wireFunc
}

func (a *inspectAdapter) Inspect(ctx context.Context, path string) (*InspectResult, error) {
	svc, _, err := a.wire()
	if err != nil {
		return nil, err
	}

	report, err := svc.InspectFile(ctx, path)
	if err != nil {
		return nil, err
	}

	result := &InspectResult{
		Path:  path,
		Found: report.Found,
	}
	if report.Found {
		result.Offset = report.Offset
		result.Length = report.Length
		result.ManifestSize = report.ManifestSize
		result.Valid = report.Structure.Valid
		result.Issues = convertIssues(report.Structure.Issues)
	}
	return result, nil
}
