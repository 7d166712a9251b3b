package filter

import (
	"fmt"
	"time"

	"ytscope/model"
)

// Warning reports a record that was dropped because its publish
// timestamp could not be interpreted.
type Warning struct {
	CommentID string
	Err       error
}

func (w Warning) String() string {
	return fmt.Sprintf("date parse error for comment %q: %s", w.CommentID, w.Err)
}

// ByDate returns the records whose publish time falls within the
// inclusive [start, end] day range. Only the year, month and day of a
// bound are used: start marks the beginning of its day, end the very
// end of its day. A nil bound leaves that side open; with both bounds
// nil the input is returned as is.
//
// Provider timestamps carry a UTC offset. The offset is stripped, not
// converted, before comparison, so records are matched on their literal
// clock time. Records without a parseable timestamp are dropped and
// reported, one Warning each.
func ByDate(records []model.CommentRecord, start, end *time.Time) ([]model.CommentRecord, []Warning) {
	if start == nil && end == nil {
		return records, nil
	}

	var startAt, endAt time.Time
	if start != nil {
		startAt = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	}
	if end != nil {
		endAt = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC).
			AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	filtered := make([]model.CommentRecord, 0, len(records))
	var warnings []Warning
	for _, record := range records {
		published, err := parseNaive(record.PublishedAt)
		if err != nil {
			warnings = append(warnings, Warning{CommentID: record.CommentID, Err: err})
			continue
		}
		if start != nil && published.Before(startAt) {
			continue
		}
		if end != nil && published.After(endAt) {
			continue
		}
		filtered = append(filtered, record)
	}

	return filtered, warnings
}

// ParseDate parses a YYYY-MM-DD calendar date into a filter bound. An
// empty value means the bound is absent.
func ParseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return &t, nil
}

// parseNaive parses an RFC 3339 timestamp and drops its offset, keeping
// the clock fields as written.
func parseNaive(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("no publish timestamp")
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC), nil
}
