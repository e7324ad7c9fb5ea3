// Package jsonfeed serializes normalized feed entries into the JSON file
// consumed by the static frontend.
package jsonfeed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"feedsnap/pkg/feedtypes"
	"feedsnap/pkg/filesystem"
)

// Document wraps entries with feed metadata for the optional envelope output.
type Document struct {
	FeedURL string            `json:"feed_url"`
	Updated string            `json:"updated"`
	Entries []feedtypes.Entry `json:"entries"`
}

// Now supplies the timestamp stamped into Document.Updated. Overridable in tests.
var Now = time.Now

// NewDocument builds the metadata envelope around entries.
func NewDocument(feedURL string, entries []feedtypes.Entry) *Document {
	return &Document{
		FeedURL: feedURL,
		Updated: Now().UTC().Format(time.RFC3339),
		Entries: entries,
	}
}

// Marshal renders v as indented JSON. Non-ASCII and HTML metacharacters are
// written as-is, and field order follows the struct declaration, so output
// for unchanged input is byte-identical across runs.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode feed JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// Write serializes entries as a bare JSON array and atomically replaces the
// file at path, creating parent directories as needed.
func Write(entries []feedtypes.Entry, path string) error {
	return write(entries, path)
}

// WriteDocument writes the envelope shape instead of the bare array.
func WriteDocument(doc *Document, path string) error {
	return write(doc, path)
}

func write(v any, path string) error {
	data, err := Marshal(v)
	if err != nil {
		return err
	}

	if err := filesystem.EnsureDirectoryExists(path); err != nil {
		return err
	}

	if err := filesystem.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	slog.Debug("Feed saved", "path", path, "bytes", len(data))
	return nil
}
