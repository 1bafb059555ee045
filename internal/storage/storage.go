package storage

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// Store persists attachment blobs under a single root directory. The
// filesystem is abstracted so tests can run against an in-memory fs.
type Store struct {
	fs   afero.Fs
	root string
}

// New returns a Store rooted at dir on the given filesystem, creating the
// directory when missing.
func New(fs afero.Fs, dir string) (*Store, error) {
	if ok, _ := afero.DirExists(fs, dir); !ok {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
		}
	}
	return &Store{fs: fs, root: dir}, nil
}

// NewOS returns a Store over the operating system filesystem.
func NewOS(dir string) (*Store, error) {
	return New(afero.NewOsFs(), dir)
}

// Save writes r to a new file with a generated name that keeps the original
// extension. It returns the stored name and the number of bytes written.
func (s *Store) Save(r io.Reader, originalName string) (string, int64, error) {
	name := uuid.New().String()
	if ext := path.Ext(originalName); ext != "" && len(ext) <= 16 {
		name += strings.ToLower(ext)
	}

	f, err := s.fs.Create(s.path(name))
	if err != nil {
		return "", 0, fmt.Errorf("failed to create file %s: %w", name, err)
	}

	size, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = s.fs.Remove(s.path(name))
		return "", 0, fmt.Errorf("failed to write file %s: %w", name, err)
	}

	return name, size, nil
}

// Open opens a stored file for reading.
func (s *Store) Open(name string) (afero.File, error) {
	return s.fs.Open(s.path(name))
}

// Exists reports whether a stored file is present.
func (s *Store) Exists(name string) bool {
	ok, err := afero.Exists(s.fs, s.path(name))
	return err == nil && ok
}

// Remove deletes a stored file.
func (s *Store) Remove(name string) error {
	return s.fs.Remove(s.path(name))
}

// Writable reports whether the root directory accepts writes. Used by the
// health check.
func (s *Store) Writable() error {
	probe := s.path(".probe-" + uuid.New().String())
	f, err := s.fs.Create(probe)
	if err != nil {
		return err
	}
	_ = f.Close()
	return s.fs.Remove(probe)
}

func (s *Store) path(name string) string {
	// Stored names are uuid-derived, never client-supplied, so a plain join
	// cannot escape the root.
	return path.Join(s.root, path.Base(name))
}
