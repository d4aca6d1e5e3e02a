package imagestore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"eth-marketplace/utils"
)

// ErrUnsupportedFormat is returned for uploads outside the image allow-list
var ErrUnsupportedFormat = errors.New("unsupported image format")

// URLPrefix is the public path under which stored images are served
const URLPrefix = "/uploads/"

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// Allowed reports whether the filename carries an accepted image extension
func Allowed(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// DiskStore stores uploaded item images as files under a single directory
type DiskStore struct {
	dir string
}

// NewDiskStore creates the upload directory if needed and returns a store over it
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %q: %w", dir, err)
	}
	return &DiskStore{dir: dir}, nil
}

// Dir returns the directory the store writes into
func (s *DiskStore) Dir() string {
	return s.dir
}

// Store writes the uploaded content under a fresh sanitized filename and
// returns the public reference for it. The original filename only
// contributes its extension, so client-supplied paths can never escape the
// upload directory.
func (s *DiskStore) Store(filename string, content io.Reader) (string, error) {
	base := filepath.Base(filename)
	ext := strings.ToLower(filepath.Ext(base))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("store image %q: %w", filename, ErrUnsupportedFormat)
	}

	name := utils.GenerateID() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("store image %q: %w", filename, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("store image %q: %w", filename, err)
	}
	return URLPrefix + name, nil
}

// Remove deletes a previously stored image by its public reference. A
// reference that is already gone is not an error.
func (s *DiskStore) Remove(ref string) error {
	name := path.Base(ref)
	if name == "." || name == "/" || name == ".." {
		return fmt.Errorf("remove image: invalid reference %q", ref)
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove image %q: %w", ref, err)
	}
	return nil
}
