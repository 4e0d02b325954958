package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrArchiveNotFound is returned when the archive file for a handle is missing
var ErrArchiveNotFound = errors.New("archive not found")

// Collections lists the post collections an archive can carry
var Collections = []string{"statuses", "favourites", "bookmarks", "mentions"}

// IsCollection reports whether name is a known post collection
func IsCollection(name string) bool {
	for _, c := range Collections {
		if c == name {
			return true
		}
	}
	return false
}

// LoadArchive reads the archive of a handle from dir.
// The archive file is required; a collection missing from it is empty.
func LoadArchive(dir string, h Handle) (*Archive, error) {
	path := filepath.Join(dir, h.ArchiveFile())
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrArchiveNotFound, path)
		}
		return nil, fmt.Errorf("reading archive file: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing archive JSON: %w", err)
	}

	archive := &Archive{Collections: make(map[string][]Post)}
	if acct, ok := raw["account"]; ok {
		if err := json.Unmarshal(acct, &archive.Account); err != nil {
			return nil, fmt.Errorf("parsing account: %w", err)
		}
	}

	for _, name := range Collections {
		msg, ok := raw[name]
		if !ok {
			continue
		}
		var posts []Post
		if err := json.Unmarshal(msg, &posts); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		archive.Collections[name] = posts
	}

	return archive, nil
}

// SaveArchive writes an archive file atomically, in the layout LoadArchive
// reads.
func SaveArchive(dir string, h Handle, archive *Archive) error {
	doc := map[string]any{"account": archive.Account}
	for name, posts := range archive.Collections {
		doc[name] = posts
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling archive: %w", err)
	}

	return writeFileAtomic(filepath.Join(dir, h.ArchiveFile()), data)
}

// PageWriter stores finished page documents
type PageWriter interface {
	WritePage(name string, content []byte) error
}

// DirWriter writes pages into a directory
type DirWriter struct {
	Dir string
}

// WritePage writes a page atomically, so a failed write never leaves a
// document that looks complete.
func (w DirWriter) WritePage(name string, content []byte) error {
	return writeFileAtomic(filepath.Join(w.Dir, name), content)
}

// writeFileAtomic uses the temp file + rename pattern
func writeFileAtomic(path string, data []byte) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	// Write to temp file
	tempFile := path + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("writing temp file: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile) // Clean up temp file on error
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}
