package store

import (
	"strings"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"work-tracker/internal/domain"
	"work-tracker/internal/duration"
)

// PDFRenderer exports the daily table as a printable report. It cannot be read back.
type PDFRenderer struct{}

// Extension returns "pdf".
func (PDFRenderer) Extension() string { return "pdf" }

// Render writes doc to path as an A4 report with a grand total.
func (PDFRenderer) Render(path string, doc TableDocument) error {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 10, 20)

	m.RegisterHeader(func() {
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text(doc.Title, props.Text{
					Top:   3,
					Style: consts.Bold,
					Align: consts.Center,
					Size:  16,
				})
			})
		})
	})

	rows := make([][]string, 0, len(doc.Records))
	for _, record := range doc.Records {
		rows = append(rows, []string{
			record.Date,
			record.TotalDuration,
			strings.Join(record.WorkSessions, ", "),
		})
	}

	m.TableList(domain.Columns, rows, props.TableList{
		HeaderProp: props.TableListContent{
			Size:      10,
			GridSizes: []uint{3, 3, 6},
		},
		ContentProp: props.TableListContent{
			Size:      9,
			GridSizes: []uint{3, 3, 6},
		},
		Align:                consts.Left,
		AlternatedBackground: &color.Color{Red: 248, Green: 249, Blue: 250},
		HeaderContentSpace:   1,
		Line:                 false,
	})

	m.Row(20, func() {
		m.Col(12, func() {
			m.Text("Total: "+duration.Encode(totalMs(doc.Records)), props.Text{
				Top:   10,
				Style: consts.Bold,
				Align: consts.Right,
				Size:  12,
			})
		})
	})

	if doc.GeneratedOn != "" {
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text(GeneratedPrefix+doc.GeneratedOn, props.Text{
					Style: consts.Italic,
					Align: consts.Left,
					Size:  8,
				})
			})
		})
	}

	return m.OutputFileAndClose(path)
}

// totalMs sums the records' durations, skipping any that do not decode.
func totalMs(records []domain.DailyRecord) int64 {
	var total int64
	for _, record := range records {
		if ms, err := record.TotalMs(); err == nil {
			total += ms
		}
	}
	return total
}
