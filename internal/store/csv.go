package store

import (
	"encoding/csv"
	"os"

	"work-tracker/internal/domain"
)

// CSVFormat stores the daily table as CSV, laid out like the spreadsheet.
type CSVFormat struct{}

// Extension returns "csv".
func (CSVFormat) Extension() string { return "csv" }

// Render writes doc to path.
func (CSVFormat) Render(path string, doc TableDocument) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(file)
	if err := w.WriteAll(documentRows(doc)); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Read reads the records of a table written by Render.
func (CSVFormat) Read(path string) ([]domain.DailyRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	return parseRows(rows), nil
}
