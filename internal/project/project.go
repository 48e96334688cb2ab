// Package project provides venue file handling and persistence.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"seatmap/internal/venue"
)

// ErrParse is wrapped by Load and Decode when a file is not a valid
// venue document. The in-memory map is untouched when it is returned.
var ErrParse = errors.New("project: invalid venue document")

// FormatVersion is written to every exported file.
const FormatVersion = 1

// fileExt is the export file extension.
const fileExt = ".venue.json"

// Document is the on-disk envelope around a venue map (.venue.json).
type Document struct {
	Version  int        `json:"version"`
	Created  time.Time  `json:"created"`
	Modified time.Time  `json:"modified"`
	Venue    *venue.Map `json:"venue"`
}

// New wraps a map in a fresh document.
func New(m *venue.Map) *Document {
	now := time.Now()
	return &Document{
		Version:  FormatVersion,
		Created:  now,
		Modified: now,
		Venue:    m,
	}
}

// ExportFileName derives the export file name from the venue name:
// lowercased, spaces replaced with hyphens, plus the extension.
func ExportFileName(venueName string) string {
	name := strings.ToLower(strings.TrimSpace(venueName))
	name = strings.ReplaceAll(name, " ", "-")
	if name == "" {
		name = "venue"
	}
	return name + fileExt
}

// Encode marshals the document, stamping the modified time.
func (d *Document) Encode() ([]byte, error) {
	d.Modified = time.Now()
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding venue document: %w", err)
	}
	return data, nil
}

// Save writes the document to a file.
func (d *Document) Save(path string) error {
	data, err := d.Encode()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Decode parses a venue document from bytes. The map is fully decoded
// and validated before being returned, so a failed decode never leaves
// a caller holding a half-built map.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if doc.Venue == nil {
		return nil, fmt.Errorf("%w: missing venue", ErrParse)
	}
	if err := doc.Venue.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return &doc, nil
}

// Load loads a venue document from a file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}
