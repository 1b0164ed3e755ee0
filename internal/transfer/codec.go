// Package transfer converts the progress mapping to and from its portable
// JSON form: a flat object of "<book>-<chapter>": true entries.
package transfer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/bibletrack/internal/domain"
)

var (
	// ErrInvalidFormat is returned when the payload is not valid JSON.
	ErrInvalidFormat = errors.New("invalid progress file format")
	// ErrNotMapping is returned when the payload parses but is null, an
	// array or a scalar.
	ErrNotMapping = errors.New("progress file is not a JSON object")
)

// DecodeStats describes what Decode kept and dropped.
type DecodeStats struct {
	Entries int // keys in the source object
	Ignored int // entries whose value was not literal true
}

// Encode serializes m as a JSON object with sorted keys. Only present
// keys are written; false is never serialized.
func Encode(m domain.ProgressMap) ([]byte, error) {
	flat := make(map[string]bool, len(m))
	for k, v := range m {
		if v {
			flat[string(k)] = true
		}
	}
	data, err := json.Marshal(flat)
	if err != nil {
		return nil, fmt.Errorf("encoding progress: %w", err)
	}
	return data, nil
}

// Decode parses data and validates that it is a non-null JSON object.
// Keys are not checked against the catalog.
func Decode(data []byte) (domain.ProgressMap, DecodeStats, error) {
	var stats DecodeStats

	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil {
		return nil, stats, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if dec.More() {
		return nil, stats, fmt.Errorf("%w: trailing data after JSON value", ErrInvalidFormat)
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, stats, fmt.Errorf("%w: got %s", ErrNotMapping, jsonKind(raw))
	}

	m := make(domain.ProgressMap, len(obj))
	stats.Entries = len(obj)
	for k, v := range obj {
		if b, ok := v.(bool); ok && b {
			m[domain.ChapterKey(k)] = true
			continue
		}
		stats.Ignored++
	}
	return m, stats, nil
}

// ReadFile loads and decodes a progress file from disk.
func ReadFile(path string) (domain.ProgressMap, DecodeStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, DecodeStats{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return Decode(data)
}

// ExportFileName returns bible-progress-<YYYY-MM-DD>.json for the UTC date of now.
func ExportFileName(now time.Time) string {
	return "bible-progress-" + now.UTC().Format("2006-01-02") + ".json"
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
