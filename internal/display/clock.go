package display

import "strings"

// ClockTime extracts "HH:MM" from an ISO-8601 datetime such as
// "2026-02-28T06:37". The time portion is truncated to its first two
// colon-delimited fields; a string without the date/time separator is
// returned unchanged.
func ClockTime(datetime string) string {
	_, clock, found := strings.Cut(datetime, "T")
	if !found {
		return datetime
	}
	fields := strings.Split(clock, ":")
	if len(fields) < 2 {
		return clock
	}
	return fields[0] + ":" + fields[1]
}
