// Package aggregate folds committed sessions into the per-day summary table.
package aggregate

import (
	"sort"

	"work-tracker/internal/domain"
	"work-tracker/internal/duration"
	"work-tracker/internal/logging"
)

// Aggregator merges session records into daily records.
type Aggregator struct {
	dateLayout string
}

// New creates an Aggregator that orders dates parsed with dateLayout. Dates that
// don't match it fall back to the legacy layouts in domain.ParseDay.
func New(dateLayout string) *Aggregator {
	if dateLayout == "" {
		dateLayout = domain.DefaultLayouts.Date
	}
	return &Aggregator{dateLayout: dateLayout}
}

// DateLayout returns the layout dates are parsed with.
func (a *Aggregator) DateLayout() string {
	return a.dateLayout
}

// Apply returns table with record folded in, sorted ascending by date. The input
// slice is not modified.
//
// A record whose date already has an entry adds its duration to that entry and
// appends its "start - end" range. If the stored total can't be decoded the
// record is appended as a new entry for the same date instead.
func (a *Aggregator) Apply(record domain.SessionRecord, table []domain.DailyRecord) []domain.DailyRecord {
	out := make([]domain.DailyRecord, 0, len(table)+1)
	merged := false
	for _, existing := range table {
		if !merged && existing.Date == record.Date {
			if updated, ok := a.merge(existing, record); ok {
				out = append(out, updated)
				merged = true
				continue
			}
		}
		out = append(out, cloneDaily(existing))
	}
	if !merged {
		out = append(out, domain.NewDailyRecord(record))
	}

	a.Sort(out)
	return out
}

// ApplyAll folds records in order, starting from an empty table.
func (a *Aggregator) ApplyAll(records []domain.SessionRecord) []domain.DailyRecord {
	var table []domain.DailyRecord
	for _, record := range records {
		table = a.Apply(record, table)
	}
	if table == nil {
		table = []domain.DailyRecord{}
	}
	return table
}

func (a *Aggregator) merge(existing domain.DailyRecord, record domain.SessionRecord) (domain.DailyRecord, bool) {
	previous, err := duration.Decode(existing.TotalDuration)
	if err != nil {
		logging.Warnf("cannot add session to %s: %v; recording it as a separate entry", existing.Date, err)
		return domain.DailyRecord{}, false
	}

	sessions := make([]string, 0, len(existing.WorkSessions)+1)
	sessions = append(sessions, existing.WorkSessions...)
	sessions = append(sessions, record.Range())

	return domain.DailyRecord{
		Date:          existing.Date,
		TotalDuration: duration.Encode(previous + record.TotalDurationMs),
		WorkSessions:  sessions,
	}, true
}

// Sort orders table ascending by calendar date, in place. Entries whose date
// can't be parsed keep their slots; the parseable entries are sorted around them.
func (a *Aggregator) Sort(table []domain.DailyRecord) {
	var slots []int
	var dated []datedRecord
	for i, d := range table {
		day, ok := domain.ParseDay(d.Date, a.dateLayout)
		if !ok {
			continue
		}
		slots = append(slots, i)
		dated = append(dated, datedRecord{record: d, unix: day.Unix()})
	}

	sort.SliceStable(dated, func(i, j int) bool { return dated[i].unix < dated[j].unix })
	for n, i := range slots {
		table[i] = dated[n].record
	}
}

type datedRecord struct {
	record domain.DailyRecord
	unix   int64
}

func cloneDaily(d domain.DailyRecord) domain.DailyRecord {
	d.WorkSessions = append([]string(nil), d.WorkSessions...)
	return d
}
