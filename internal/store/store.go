// Package store persists committed sessions. It owns two files per project: the
// raw log of every session and the daily summary table rendered from it.
package store

import (
	"context"
	"strings"
	"unicode"

	"work-tracker/internal/domain"
)

// GeneratedPrefix starts the generation timestamp line of a rendered table.
const GeneratedPrefix = "Generated on: "

// RawLog is the append-only log of committed sessions.
type RawLog interface {
	Append(ctx context.Context, record domain.SessionRecord) error
	List(ctx context.Context) ([]domain.SessionRecord, error)
	Path() string
}

// TableDocument is everything a rendered daily table shows.
type TableDocument struct {
	Title       string               `json:"title" yaml:"title"`
	GeneratedOn string               `json:"generatedOn" yaml:"generatedOn"`
	Records     []domain.DailyRecord `json:"records" yaml:"records"`
}

// Renderer writes a table document to a file.
type Renderer interface {
	Extension() string
	Render(path string, doc TableDocument) error
}

// TableFormat is a Renderer whose output can be read back.
type TableFormat interface {
	Renderer
	Read(path string) ([]domain.DailyRecord, error)
}

// FileName returns the table file name for project, replacing characters that
// cannot appear in a file name.
func FileName(project, ext string) string {
	name := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || strings.ContainsRune(`<>:"/\|?*`, r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(project))
	if name == "" || name == "." || name == ".." {
		name = "unknown-project"
	}
	return name + "." + ext
}
