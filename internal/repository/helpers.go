package repository

import (
	"database/sql"
	"time"
)

// dayString formats a time as the date-only key used for reflections and
// goal week starts.
func dayString(t time.Time) string {
	return t.Format("2006-01-02")
}

// dayBounds returns the [start, next) instants covering t's calendar day
// in t's location.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// nullableStrToValue converts a *string to a value suitable for SQLite
// storage. Nil becomes SQL NULL.
func nullableStrToValue(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// parseNullableStr converts a scanned sql.NullString back to *string.
func parseNullableStr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
