package document

import (
	"fmt"
	"io"
	"os"
)

// Write marshals the document and writes it to w.
func Write(d *Document, w io.Writer) error {
	data, err := Marshal(d)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// WriteFile writes the document as JSON to path.
// The file is created with 0644 permissions.
func WriteFile(d *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(d, f)
}

// Read decodes a document from r. It returns the same coded errors as
// [Unmarshal] for malformed documents.
func Read(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("read: %w", err)
	}
	return Unmarshal(data)
}

// ReadFile reads the JSON file at path and returns the decoded
// document. The error wraps the underlying cause with the file path
// for context.
func ReadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	d, err := Read(f)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
