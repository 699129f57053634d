package cart

import (
	"os"
	"path/filepath"
)

// FileSlot persists the cart document as a single JSON file in the
// user's profile, the CLI counterpart of the browser's localStorage
// key. Writes go through a temp file and rename so a crash mid-write
// leaves the previous document intact.
type FileSlot struct {
	path string
}

func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

// DefaultCartPath is ~/.techstore/cart.json, falling back to the
// working directory when the home dir cannot be resolved.
func DefaultCartPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "cart.json"
	}
	return filepath.Join(home, ".techstore", "cart.json")
}

func (s *FileSlot) Load() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *FileSlot) Save(raw []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
