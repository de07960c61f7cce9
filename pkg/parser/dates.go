package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var dateSepRe = regexp.MustCompile(`[\-/]`)

// ParseDateToken parses a full month/day/year token like "3/14/2024" or
// "03-14-24". Two-digit years expand to 2000+YY.
func ParseDateToken(s string) (time.Time, error) {
	parts := dateSepRe.Split(s, -1)
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("not a date token: %q", s)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("bad year in %q: %w", s, err)
	}
	if year < 100 {
		year += 2000
	}
	return makeDate(parts[0], parts[1], year)
}

// ParseDateFragment parses the date prefix of a transaction line, which may
// omit the year ("12/31"). The default year comes from the document, keeping
// ambiguity resolution out of this function. Fragments with a month above 12
// and a plausible day are treated as day-first and swapped.
func ParseDateFragment(s string, defaultYear int) (time.Time, error) {
	parts := dateSepRe.Split(s, -1)
	switch len(parts) {
	case 2:
		return makeDate(parts[0], parts[1], defaultYear)
	case 3:
		return ParseDateToken(s)
	default:
		return time.Time{}, fmt.Errorf("not a date fragment: %q", s)
	}
}

func makeDate(monthStr, dayStr string, year int) (time.Time, error) {
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad month %q: %w", monthStr, err)
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad day %q: %w", dayStr, err)
	}
	if month > 12 && day <= 12 {
		month, day = day, month
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("date out of range: %d/%d/%d", month, day, year)
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, fmt.Errorf("invalid calendar date: %d/%d/%d", month, day, year)
	}
	return d, nil
}
