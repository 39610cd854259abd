package store

import (
	"os"

	"gopkg.in/yaml.v3"

	"work-tracker/internal/domain"
)

// YAMLFormat stores the daily table as a YAML document.
type YAMLFormat struct{}

// Extension returns "yaml".
func (YAMLFormat) Extension() string { return "yaml" }

// Render writes doc to path.
func (YAMLFormat) Render(path string, doc TableDocument) error {
	if doc.Records == nil {
		doc.Records = []domain.DailyRecord{}
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Read reads the records of a table written by Render.
func (YAMLFormat) Read(path string) ([]domain.DailyRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc TableDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Records == nil {
		return []domain.DailyRecord{}, nil
	}
	return doc.Records, nil
}
