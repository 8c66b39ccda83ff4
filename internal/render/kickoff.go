package render

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var months = map[string]time.Month{
	"JAN": time.January, "FEB": time.February, "MAR": time.March, "APR": time.April,
	"MAY": time.May, "JUN": time.June, "JUL": time.July, "AUG": time.August,
	"SEP": time.September, "OCT": time.October, "NOV": time.November, "DEC": time.December,
}

var weekdayPrefix = regexp.MustCompile(`(?i)^[A-Z]{3},\s*`)

// FormatKickoff rebuilds a full kickoff line from a schedule date label such
// as "SUN, SEP 14" and a local time such as "1:00PM". January and February
// dates belong to the following calendar year. Labels that cannot be parsed
// are passed through as-is.
func FormatKickoff(dateLabel, timeLocal string, seasonYear int) string {
	tm := formatTime(timeLocal)
	if dateLabel == "" {
		return fmt.Sprintf("TBD, %d, %s ET", seasonYear, tm)
	}

	date, ok := parseDateLabel(dateLabel, seasonYear)
	if !ok {
		return fmt.Sprintf("%s, %d, %s ET", dateLabel, seasonYear, tm)
	}

	return fmt.Sprintf("%s, %s %d, %d, %s ET", date.Weekday(), date.Month(), date.Day(), date.Year(), tm)
}

func parseDateLabel(label string, seasonYear int) (time.Time, bool) {
	rest := weekdayPrefix.ReplaceAllString(strings.TrimSpace(label), "")
	parts := strings.Fields(rest)
	if len(parts) != 2 {
		return time.Time{}, false
	}

	month, ok := months[strings.ToUpper(parts[0])]
	if !ok {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}

	year := seasonYear
	if month == time.January || month == time.February {
		year++
	}

	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range days; reject them instead
	if date.Month() != month || date.Day() != day {
		return time.Time{}, false
	}
	return date, true
}

func formatTime(timeLocal string) string {
	if timeLocal == "" {
		timeLocal = "TBD"
	}
	timeLocal = strings.ReplaceAll(timeLocal, "AM", " AM")
	return strings.ReplaceAll(timeLocal, "PM", " PM")
}
