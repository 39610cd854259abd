// Package duration converts elapsed milliseconds to and from the HH:MM:SS form
// used in the work logs.
package duration

import (
	"fmt"
	"strconv"
	"strings"

	"work-tracker/internal/errors"
)

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
)

// Encode renders ms as HH:MM:SS. Sub-second remainders are truncated and hours
// grow past two digits instead of wrapping. Negative input renders as 00:00:00.
func Encode(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	hours := ms / msPerHour
	minutes := (ms % msPerHour) / msPerMinute
	seconds := (ms % msPerMinute) / msPerSecond
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// Decode parses an HH:MM:SS string back to milliseconds.
func Decode(s string) (int64, error) {
	fields := strings.Split(strings.TrimSpace(s), ":")
	if len(fields) != 3 {
		return 0, errors.NewMalformedDurationError(s, nil)
	}

	var parts [3]int64
	for i, field := range fields {
		n, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return 0, errors.NewMalformedDurationError(s, err)
		}
		if n < 0 {
			return 0, errors.NewMalformedDurationError(s, nil)
		}
		parts[i] = n
	}

	return parts[0]*msPerHour + parts[1]*msPerMinute + parts[2]*msPerSecond, nil
}
