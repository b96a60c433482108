package unit

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/victormanase/apartment-rental-app/internal/core"
)

// FileStore persists attachment bytes and serves them back under /uploads/.
type FileStore interface {
	// Store writes the file and returns its public path.
	Store(name string, data []byte) (string, error)
	// Remove deletes a previously stored file by its public path.
	Remove(path string) error
}

// Storage writes attachments to a local directory. Filenames embed a content
// hash so two uploads with the same original name never collide.
type Storage struct {
	dir string
}

func NewStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Storage{dir: dir}, nil
}

func (s *Storage) Store(name string, data []byte) (string, error) {
	sum := sha256.Sum256(data)
	filename := hex.EncodeToString(sum[:])[:16] + "-" + sanitizeFilename(name)

	dest := filepath.Join(s.dir, filename)
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", fmt.Errorf(
			"write %s: %w", filename, core.ErrStorageUnavailable,
		)
	}

	return "/uploads/" + filename, nil
}

func (s *Storage) Remove(path string) error {
	filename := filepath.Base(path)
	if err := os.Remove(filepath.Join(s.dir, filename)); err != nil {
		return fmt.Errorf("remove %s: %w", filename, err)
	}
	return nil
}

// Dir is the directory served by the /uploads/ static file server.
func (s *Storage) Dir() string {
	return s.dir
}

func sanitizeFilename(name string) string {
	base := filepath.Base(name)

	out := make([]byte, 0, len(base))
	for i := 0; i < len(base); i++ {
		c := base[i]
		switch {
		case c >= 'a' && c <= 'z',
			c >= 'A' && c <= 'Z',
			c >= '0' && c <= '9',
			c == '.', c == '_', c == '-':
			out = append(out, c)
		default:
			out = append(out, '_')
		}
	}

	if len(out) == 0 || base == "." || base == ".." {
		return "file"
	}

	return string(out)
}
