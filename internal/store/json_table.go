package store

import (
	"encoding/json"
	"os"

	"work-tracker/internal/domain"
)

// JSONFormat stores the daily table as an indented JSON document.
type JSONFormat struct{}

// Extension returns "json".
func (JSONFormat) Extension() string { return "json" }

// Render writes doc to path.
func (JSONFormat) Render(path string, doc TableDocument) error {
	if doc.Records == nil {
		doc.Records = []domain.DailyRecord{}
	}
	data, err := encodeJSON(doc, "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Read reads the records of a table written by Render.
func (JSONFormat) Read(path string) ([]domain.DailyRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc TableDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Records == nil {
		return []domain.DailyRecord{}, nil
	}
	return doc.Records, nil
}
