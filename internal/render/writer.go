// Package render turns engine results into their wire and display forms:
// JSON, YAML, CSV, and plain text.
package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Writer renders views in a fixed format, optionally copying the output to a
// file.
type Writer struct {
	format Format
	path   string
}

// NewWriter returns a Writer for the given format. If path is non-empty,
// Render also writes the output there.
func NewWriter(format Format, path string) *Writer {
	return &Writer{format: format, path: path}
}

// Render serializes the view and returns the result. The view must implement
// TextOutput for text and CSVOutput for csv; every view in this package does.
func (w *Writer) Render(view any) (string, error) {
	out, err := w.encode(view)
	if err != nil {
		return "", err
	}
	if w.path != "" {
		if err := os.WriteFile(w.path, []byte(out), 0o644); err != nil {
			return "", fmt.Errorf("writing output file: %w", err)
		}
	}
	return out, nil
}

func (w *Writer) encode(view any) (string, error) {
	switch w.format {
	case FormatJSON:
		b, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b), nil
	case FormatYAML:
		b, err := yaml.Marshal(view)
		if err != nil {
			return "", err
		}
		return string(b), nil
	case FormatText:
		t, ok := view.(TextOutput)
		if !ok {
			return "", fmt.Errorf("%T has no text form", view)
		}
		return t.Text(), nil
	case FormatCSV:
		c, ok := view.(CSVOutput)
		if !ok {
			return "", fmt.Errorf("%T has no csv form", view)
		}
		var b strings.Builder
		cw := csv.NewWriter(&b)
		if err := cw.WriteAll(c.CSVRecords()); err != nil {
			return "", err
		}
		return b.String(), nil
	}
	return "", fmt.Errorf("unknown output format: %s", w.format)
}
