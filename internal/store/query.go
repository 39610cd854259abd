package store

import (
	"context"
	"time"

	"work-tracker/internal/domain"
)

const isoDay = "2006-01-02"

// SessionQuery narrows a raw log listing. Zero fields don't filter. From and To
// are inclusive calendar days.
type SessionQuery struct {
	Project string
	From    time.Time
	To      time.Time
}

func (q SessionQuery) hasDays() bool {
	return !q.From.IsZero() || !q.To.IsZero()
}

// matches reports whether record passes q, parsing its date with dateLayout. A
// record whose date doesn't parse never matches a day bound.
func (q SessionQuery) matches(record domain.SessionRecord, dateLayout string) bool {
	if q.Project != "" && record.Project != q.Project {
		return false
	}
	if !q.hasDays() {
		return true
	}

	day := domain.ISODay(record.Date, dateLayout)
	if day == "" {
		return false
	}
	if !q.From.IsZero() && day < q.From.Format(isoDay) {
		return false
	}
	if !q.To.IsZero() && day > q.To.Format(isoDay) {
		return false
	}
	return true
}

// Searcher is a RawLog that filters sessions itself.
type Searcher interface {
	Search(ctx context.Context, q SessionQuery) ([]domain.SessionRecord, error)
}

// Counter is a RawLog that counts sessions without listing them.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// Search lists the sessions of log matching q in commit order. Logs that can't
// search are listed and filtered here, parsing dates with dateLayout.
func Search(ctx context.Context, log RawLog, q SessionQuery, dateLayout string) ([]domain.SessionRecord, error) {
	if s, ok := log.(Searcher); ok {
		return s.Search(ctx, q)
	}

	records, err := log.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.SessionRecord, 0, len(records))
	for _, record := range records {
		if q.matches(record, dateLayout) {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

// Count returns the number of sessions in log.
func Count(ctx context.Context, log RawLog) (int, error) {
	if c, ok := log.(Counter); ok {
		return c.Count(ctx)
	}
	records, err := log.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}
