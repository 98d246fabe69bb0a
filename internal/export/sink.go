package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
)

// FileName returns the file name a snapshot is written under.
func (s Snapshot) FileName() string {
	id := s.RunID
	if id == "" {
		id = "run"
	}
	return fmt.Sprintf("trifactor-%s-%s.json", id, s.Phase)
}

// WriteFile writes the encoded snapshot into dir and returns its path.
func WriteFile(s Snapshot, dir string) (string, error) {
	data, err := s.Encode()
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, s.FileName())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}

// ClipboardAvailable reports whether a clipboard utility was found.
func ClipboardAvailable() bool {
	return !clipboard.Unsupported
}

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

// CopyToClipboard places the encoded snapshot on the system clipboard.
func CopyToClipboard(s Snapshot) error {
	data, err := s.Encode()
	if err != nil {
		return err
	}
	if err := clipboardWrite(string(data)); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}
