package display

import (
	"fmt"
	"strconv"
	"strings"
)

// weekdayNames is indexed by the congruence result, which counts from
// Saturday.
var weekdayNames = [7]string{"Sat", "Sun", "Mon", "Tue", "Wed", "Thu", "Fri"}

// Fallback values for date components that fail to parse. Deliberate
// leniency: a garbled component degrades to a fixed date instead of turning
// the whole label into an error.
const (
	fallbackYear  = 2024
	fallbackMonth = 1
	fallbackDay   = 1
)

// WeekdayLabel turns an ISO calendar date ("YYYY-MM-DD") into a short label
// of the form "Sat 28/2". The weekday comes from Zeller's congruence rather
// than a date library: January and February are treated as months 13 and 14
// of the previous year. Input without exactly three dash-separated segments
// is returned unchanged.
func WeekdayLabel(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}

	year := atoiOr(parts[0], fallbackYear)
	month := atoiOr(parts[1], fallbackMonth)
	day := atoiOr(parts[2], fallbackDay)

	y, m := year, month
	if m < 3 {
		m += 12
		y--
	}
	k := y % 100
	j := y / 100
	h := (day + 13*(m+1)/5 + k + k/4 + j/4 + 5*j) % 7

	return fmt.Sprintf("%s %d/%d", weekdayNames[h], day, month)
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
