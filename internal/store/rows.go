package store

import (
	"strings"

	"work-tracker/internal/domain"
)

// documentRows lays a document out as the rows of a sheet: title, header, one row
// per record, a blank row and the generation line.
func documentRows(doc TableDocument) [][]string {
	rows := make([][]string, 0, len(doc.Records)+4)
	rows = append(rows, []string{doc.Title})
	rows = append(rows, domain.Columns)
	for _, record := range doc.Records {
		rows = append(rows, record.Row())
	}
	if doc.GeneratedOn != "" {
		rows = append(rows, []string{}, []string{GeneratedPrefix + doc.GeneratedOn})
	}
	return rows
}

// parseRows reads daily records back from sheet rows. The header row is found by
// its last two column names, so sheets whose first header cell was overwritten by
// a title are read too. Records end at the first row with an empty date.
func parseRows(rows [][]string) []domain.DailyRecord {
	records := []domain.DailyRecord{}

	start := -1
	for i, row := range rows {
		if isHeaderRow(row) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return records
	}

	for _, row := range rows[start:] {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			break
		}
		if strings.HasPrefix(strings.TrimSpace(row[0]), GeneratedPrefix) {
			break
		}
		records = append(records, domain.DailyRecordFromRow(row))
	}
	return records
}

func isHeaderRow(row []string) bool {
	return len(row) >= 3 &&
		strings.TrimSpace(row[1]) == domain.ColumnTotalDuration &&
		strings.TrimSpace(row[2]) == domain.ColumnWorkSessions
}
