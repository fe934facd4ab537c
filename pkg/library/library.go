// Package library implements a file-based store for behavior-tree
// documents. Each document is one JSON file in a directory; the store
// never keeps documents in memory between calls, so concurrent CLI
// invocations only contend at the filesystem level.
package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agatho/bottree/pkg/document"
	"github.com/agatho/bottree/pkg/errors"
)

// appName is the directory name used under the XDG data home.
const appName = "bottree"

// Entry is a library listing row: enough to identify and describe a
// stored document without loading its full node collection into the
// listing output.
type Entry struct {
	Name       string    // document name
	File       string    // filename within the library directory
	BotClass   string    // bot class restriction ("Any" if none)
	NodeCount  int       // number of nodes in the tree
	ModifiedAt time.Time // last serialize time
}

// Store is a document library rooted at a single directory.
type Store struct {
	dir string
}

// DefaultDir returns the library directory using the XDG standard
// (~/.local/share/bottree/library).
func DefaultDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName, "library"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName, "library"), nil
}

// NewStore creates a library store at dir, creating the directory if it
// does not exist.
func NewStore(dir string) (*Store, error) {
	if err := errors.ValidateLibraryPath(dir); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create library dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store's directory.
func (s *Store) Dir() string { return s.dir }

// Save writes the document into the library and returns the path it was
// stored at. The filename derives from the document name; unnamed and
// default-named documents get a generated unique filename so they never
// clobber each other. Saving a named document twice overwrites it.
func (s *Store) Save(d *document.Document) (string, error) {
	if err := errors.ValidateDocumentName(d.Name); err != nil {
		return "", err
	}

	name := slug(d.Name)
	if name == "" || d.Name == document.DefaultName {
		name = uuid.NewString()
	}

	path := filepath.Join(s.dir, name+".json")
	if err := document.WriteFile(d, path); err != nil {
		return "", err
	}
	return path, nil
}

// Load retrieves a document by its document name or by its filename
// within the library (with or without the .json suffix).
func (s *Store) Load(name string) (document.Document, error) {
	entries, err := s.List()
	if err != nil {
		return document.Document{}, err
	}

	base := strings.TrimSuffix(name, ".json")
	for _, e := range entries {
		if e.Name == name || strings.TrimSuffix(e.File, ".json") == base {
			return document.ReadFile(filepath.Join(s.dir, e.File))
		}
	}
	return document.Document{}, errors.New(errors.ErrCodeDocumentNotFound, "document %q not found in library", name)
}

// Delete removes a stored document by document name or filename.
// Deleting an unknown name returns a DOCUMENT_NOT_FOUND error.
func (s *Store) Delete(name string) error {
	entries, err := s.List()
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(name, ".json")
	for _, e := range entries {
		if e.Name == name || strings.TrimSuffix(e.File, ".json") == base {
			return os.Remove(filepath.Join(s.dir, e.File))
		}
	}
	return errors.New(errors.ErrCodeDocumentNotFound, "document %q not found in library", name)
}

// List returns an entry for every readable document in the library,
// sorted by name. Files that fail to decode are skipped rather than
// failing the whole listing.
func (s *Store) List() ([]Entry, error) {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read library dir %s: %w", s.dir, err)
	}

	var entries []Entry
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}
		d, err := document.ReadFile(filepath.Join(s.dir, f.Name()))
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			Name:       d.Name,
			File:       f.Name(),
			BotClass:   d.BotClass,
			NodeCount:  len(d.Nodes),
			ModifiedAt: d.ModifiedAt,
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// slug converts a document name into a filesystem-safe filename stem:
// lowercase, spaces collapsed to dashes, everything else alphanumeric.
func slug(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
