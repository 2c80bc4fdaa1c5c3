package acceptance_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var c2patextBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "c2patext-acceptance-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	c2patextBinary = filepath.Join(tmpDir, "c2patext")
	build := exec.Command("go", "build", "-o", c2patextBinary, "github.com/encypherai/c2pa-text")
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		panic("failed to build c2patext binary: " + err.Error())
	}

	os.Exit(m.Run())
}
