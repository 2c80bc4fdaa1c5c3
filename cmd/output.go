package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// writeJSON encodes v as JSON to w, handling I/O errors at the boundary.
func writeJSON(w io.Writer, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Fprintf(w, "{\"error\":%q}\n", err.Error())
	}
}

// writeBytes writes data to path, or raw to w when path is empty. Commands
// use it for binary payloads that default to stdout for piping.
func writeBytes(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
