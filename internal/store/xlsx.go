package store

import (
	"os"

	"github.com/xuri/excelize/v2"

	"work-tracker/internal/domain"
	"work-tracker/internal/logging"
)

// SheetName is the worksheet holding the daily table.
const SheetName = "Work Sessions"

const (
	titleFill   = "D9E2F3"
	headerFill  = "2F5597"
	stripeFill  = "F8F9FA"
	borderColor = "D3D3D3"
)

// XLSXFormat stores the daily table as a styled, protected worksheet. Other sheets
// of an existing workbook are kept.
type XLSXFormat struct{}

// Extension returns "xlsx".
func (XLSXFormat) Extension() string { return "xlsx" }

// Render replaces the Work Sessions sheet of the workbook at path with doc,
// creating the workbook when it does not exist or cannot be opened.
func (XLSXFormat) Render(path string, doc TableDocument) error {
	f, fresh := openWorkbook(path)
	defer f.Close()

	if err := resetSheet(f, fresh); err != nil {
		return err
	}
	if err := writeSheet(f, doc); err != nil {
		return err
	}
	return f.SaveAs(path)
}

// Read reads the records of the Work Sessions sheet, or of the first sheet when
// the workbook has none.
func (XLSXFormat) Read(path string) ([]domain.DailyRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := SheetName
	if idx, err := f.GetSheetIndex(SheetName); err != nil || idx < 0 {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return []domain.DailyRecord{}, nil
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	return parseRows(rows), nil
}

// openWorkbook opens the workbook at path. fresh reports a new, empty workbook.
func openWorkbook(path string) (f *excelize.File, fresh bool) {
	if _, err := os.Stat(path); err != nil {
		return excelize.NewFile(), true
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		logging.Warnf("workbook %s could not be opened, writing a new one: %v", path, err)
		return excelize.NewFile(), true
	}
	return f, false
}

// resetSheet leaves the workbook with an empty, active Work Sessions sheet.
func resetSheet(f *excelize.File, fresh bool) error {
	// A workbook always keeps one sheet, so the sheet being replaced is deleted
	// only once another one exists.
	placeholder := "Sheet1"
	if !fresh {
		placeholder = "wt-placeholder"
		if idx, err := f.GetSheetIndex(SheetName); err != nil || idx < 0 {
			placeholder = ""
		} else {
			if _, err := f.NewSheet(placeholder); err != nil {
				return err
			}
			if err := f.DeleteSheet(SheetName); err != nil {
				return err
			}
		}
	}

	if _, err := f.NewSheet(SheetName); err != nil {
		return err
	}
	if placeholder != "" {
		if err := f.DeleteSheet(placeholder); err != nil {
			return err
		}
	}

	idx, err := f.GetSheetIndex(SheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	return nil
}

func writeSheet(f *excelize.File, doc TableDocument) error {
	rows := documentRows(doc)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return err
		}
	}

	styles, err := newSheetStyles(f)
	if err != nil {
		return err
	}

	if err := f.MergeCell(SheetName, "A1", "C1"); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", "C1", styles.title); err != nil {
		return err
	}
	if err := f.SetRowHeight(SheetName, 1, 40); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A2", "C2", styles.header); err != nil {
		return err
	}
	if err := f.SetRowHeight(SheetName, 2, 35); err != nil {
		return err
	}

	for i, record := range doc.Records {
		row := i + 3
		style := styles.body
		if i%2 == 1 {
			style = styles.stripe
		}
		first, _ := excelize.CoordinatesToCellName(1, row)
		last, _ := excelize.CoordinatesToCellName(3, row)
		if err := f.SetCellStyle(SheetName, first, last, style); err != nil {
			return err
		}
		height := 25.0
		if n := len(record.WorkSessions); n > 1 {
			height = float64(15 * n)
		}
		if err := f.SetRowHeight(SheetName, row, height); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(SheetName, "A", "B", 15); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "C", "C", 60); err != nil {
		return err
	}

	return f.ProtectSheet(SheetName, &excelize.SheetProtectionOptions{
		SelectLockedCells:   true,
		SelectUnlockedCells: true,
	})
}

type sheetStyles struct {
	title, header, body, stripe int
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	border := []excelize.Border{
		{Type: "left", Color: borderColor, Style: 1},
		{Type: "top", Color: borderColor, Style: 1},
		{Type: "right", Color: borderColor, Style: 1},
		{Type: "bottom", Color: borderColor, Style: 1},
	}
	locked := &excelize.Protection{Locked: true}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true}

	var styles sheetStyles
	var err error

	styles.title, err = f.NewStyle(&excelize.Style{
		Font:       &excelize.Font{Bold: true, Size: 14, Color: headerFill},
		Fill:       excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{titleFill}},
		Alignment:  center,
		Protection: locked,
	})
	if err != nil {
		return styles, err
	}

	styles.header, err = f.NewStyle(&excelize.Style{
		Font:       &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:       excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
		Border:     border,
		Alignment:  center,
		Protection: locked,
	})
	if err != nil {
		return styles, err
	}

	body := &excelize.Style{
		Border:     border,
		Alignment:  &excelize.Alignment{Vertical: "center", WrapText: true},
		Protection: locked,
	}
	styles.body, err = f.NewStyle(body)
	if err != nil {
		return styles, err
	}

	stripe := *body
	stripe.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{stripeFill}}
	styles.stripe, err = f.NewStyle(&stripe)
	return styles, err
}
