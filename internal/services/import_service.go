package services

import (
	"context"
	"fmt"

	"work-tracker/internal/errors"
	"work-tracker/internal/logging"
	"work-tracker/internal/store"
	"work-tracker/internal/validation"
)

// ImportRawLog copies every session of source into target in commit order.
// target must be empty. Records that break a session invariant are skipped with a
// warning.
func ImportRawLog(ctx context.Context, source, target store.RawLog, validator *validation.Validator) (*ImportResult, error) {
	existing, err := store.Count(ctx, target)
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, errors.NewInvalidInputError("target", target.Path(),
			fmt.Sprintf("already holds %d sessions", existing))
	}

	records, err := source.List(ctx)
	if err != nil {
		return nil, err
	}

	check := validation.NewSessionRecordValidator(validator)
	result := &ImportResult{Source: source.Path(), Target: target.Path()}
	for i, record := range records {
		if err := check.Validate(record); err != nil {
			logging.Warnf("skipping session %d (%s %s): %v", i+1, record.Date, record.Range(), err)
			result.Skipped++
			continue
		}
		if err := target.Append(ctx, record); err != nil {
			return result, err
		}
		result.Imported++
	}

	return result, nil
}
