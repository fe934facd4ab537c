package errors

import (
	"strings"
	"unicode"
)

// ValidateDocumentName validates a document name supplied by a caller.
// Names feed into library filenames and display listings, so the rules
// are intentionally conservative:
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
//
// An empty name is allowed; the document factory substitutes a default.
func ValidateDocumentName(name string) error {
	if len(name) > 128 {
		return New(ErrCodeInvalidName, "document name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "document name contains control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidName, "document name cannot contain path separators")
	}
	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidName, "document name cannot contain traversal sequences (..)")
	}

	return nil
}

// ValidateLibraryPath validates a path within the document library.
// It prevents path traversal out of the library directory.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidateLibraryPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
