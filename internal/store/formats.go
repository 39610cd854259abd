package store

import (
	"strings"

	"work-tracker/internal/errors"
)

// Formats returns every readable table format by name.
func Formats() map[string]TableFormat {
	return map[string]TableFormat{
		"xlsx": XLSXFormat{},
		"csv":  CSVFormat{},
		"json": JSONFormat{},
		"yaml": YAMLFormat{},
	}
}

// FormatByName returns the table format called name.
func FormatByName(name string) (TableFormat, error) {
	if format, ok := Formats()[strings.ToLower(name)]; ok {
		return format, nil
	}
	return nil, errors.NewInvalidInputError("format", name, "unsupported table format")
}

// RendererByName returns a table format or an export-only renderer called name.
func RendererByName(name string) (Renderer, error) {
	if strings.EqualFold(name, "pdf") {
		return PDFRenderer{}, nil
	}
	if format, ok := Formats()[strings.ToLower(name)]; ok {
		return format, nil
	}
	return nil, errors.NewInvalidInputError("format", name, "unsupported export format")
}
