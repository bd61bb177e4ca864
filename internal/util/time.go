package util

import "time"

// TimestampLayout is the persisted text form of profile timestamps.
const TimestampLayout = time.RFC3339Nano

func NowUTC() time.Time {
	return time.Now().UTC()
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp accepts RFC 3339 text as well as the "YYYY-MM-DD HH:MM:SS"
// form produced by SQLite's datetime('now').
func ParseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(TimestampLayout, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
