package classify

import (
	"regexp"
	"time"

	"pfimport/pkg/models"
	"pfimport/pkg/parser"
)

var (
	dateTokenRe = regexp.MustCompile(`\b(\d{1,2})[\-/](\d{1,2})[\-/](\d{2,4})\b`)
	dateRangeRe = regexp.MustCompile(`(?i)(\d{1,2}[\-/]\d{1,2}[\-/]\d{2,4})\s*[\x{2013}to\-]+\s*(\d{1,2}[\-/]\d{1,2}[\-/]\d{2,4})`)
)

// InferPeriod determines the date range a statement covers. An explicit
// "start - end" range in the text wins when both dates parse and are
// ordered. Otherwise the latest date found anywhere in the document (or
// today, when there is none) is clamped to its calendar month.
func InferPeriod(text string, now time.Time) models.Period {
	if m := dateRangeRe.FindStringSubmatch(text); m != nil {
		start, err1 := parser.ParseDateToken(m[1])
		end, err2 := parser.ParseDateToken(m[2])
		if err1 == nil && err2 == nil && !start.After(end) {
			return models.Period{Start: start, End: end}
		}
	}

	ref := now
	found := false
	for _, m := range dateTokenRe.FindAllString(text, -1) {
		d, err := parser.ParseDateToken(m)
		if err != nil {
			continue
		}
		if !found || d.After(ref) {
			ref = d
			found = true
		}
	}
	return monthBounds(ref)
}

// monthBounds returns the first and last day of ref's month.
func monthBounds(ref time.Time) models.Period {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	var end time.Time
	if ref.Month() == time.December {
		end = time.Date(ref.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	} else {
		end = time.Date(ref.Year(), ref.Month()+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	}
	return models.Period{Start: start, End: end}
}
