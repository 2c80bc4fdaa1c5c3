package acceptance_test

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// runC2patext executes the c2patext binary and returns stdout, stderr, and exit code.
func runC2patext(t *testing.T, dir string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(c2patextBinary, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("failed to run c2patext: %v", err)
		}
	}
	return stdout.String(), stderr.String(), exitCode
}

// runC2patextSuccess runs c2patext expecting exit code 0 and returns stdout.
func runC2patextSuccess(t *testing.T, dir string, args ...string) string {
	t.Helper()
	stdout, stderr, exitCode := runC2patext(t, dir, args...)
	if exitCode != 0 {
		t.Fatalf("expected exit 0, got %d\nargs: %v\nstdout: %s\nstderr: %s", exitCode, args, stdout, stderr)
	}
	return stdout
}

// parseJSON decodes a single JSON object from command output.
func parseJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\noutput: %s", err, output)
	}
	return result
}

// minimalManifest returns the smallest structurally valid JUMBF superbox:
// an empty 8-byte jumb box.
func minimalManifest() []byte {
	return []byte{0x00, 0x00, 0x00, 0x08, 'j', 'u', 'm', 'b'}
}

// c2paManifestStoreUUID is the default recognized content type as raw bytes.
var c2paManifestStoreUUID = []byte{
	0x63, 0x32, 0x70, 0x61, 0x00, 0x11, 0x00, 0x10,
	0x80, 0x00, 0x00, 0xaa, 0x00, 0x38, 0x9b, 0x71,
}

// manifestWithContentType returns a jumb superbox whose first child is a
// jumd description box carrying the raw 16-byte content-type UUID.
func manifestWithContentType(uuidBytes []byte) []byte {
	buf := make([]byte, 0, 32)
	buf = append(buf, 0x00, 0x00, 0x00, 0x20, 'j', 'u', 'm', 'b')
	buf = append(buf, 0x00, 0x00, 0x00, 0x18, 'j', 'u', 'm', 'd')
	return append(buf, uuidBytes...)
}

// strictManifest returns a manifest that passes strict validation with the
// default configuration.
func strictManifest() []byte {
	return manifestWithContentType(c2paManifestStoreUUID)
}

// writeFile creates a file with the given content.
func writeFile(t *testing.T, dir, name string, content []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), content, 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

// readFile reads a file's content.
func readFile(t *testing.T, dir, name string) []byte {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	return content
}

// fileExists checks if a file exists.
func fileExists(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}
