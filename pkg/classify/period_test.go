package classify

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestInferPeriodExplicitRange(t *testing.T) {
	now := date(2030, time.January, 1)
	text := "Statement period 01/05/2024 - 01/31/2024 for your account"
	got := InferPeriod(text, now)
	if !got.Start.Equal(date(2024, time.January, 5)) {
		t.Errorf("start: got %v", got.Start)
	}
	if !got.End.Equal(date(2024, time.January, 31)) {
		t.Errorf("end: got %v", got.End)
	}
}

func TestInferPeriodRangeWithToConnector(t *testing.T) {
	now := date(2030, time.January, 1)
	got := InferPeriod("3/1/24 to 3/31/24", now)
	if !got.Start.Equal(date(2024, time.March, 1)) || !got.End.Equal(date(2024, time.March, 31)) {
		t.Errorf("got %v - %v", got.Start, got.End)
	}
}

func TestInferPeriodReversedRangeFallsBack(t *testing.T) {
	now := date(2030, time.January, 1)
	// End before start: the range is rejected and the latest date's month
	// boundaries apply instead.
	got := InferPeriod("01/31/2024 - 01/05/2024", now)
	if !got.Start.Equal(date(2024, time.January, 1)) {
		t.Errorf("start: got %v", got.Start)
	}
	if !got.End.Equal(date(2024, time.January, 31)) {
		t.Errorf("end: got %v", got.End)
	}
}

func TestInferPeriodLatestDateWins(t *testing.T) {
	now := date(2030, time.January, 1)
	got := InferPeriod("posted 02/03/2024 and 04/20/2024 and 03/11/2024", now)
	if !got.Start.Equal(date(2024, time.April, 1)) || !got.End.Equal(date(2024, time.April, 30)) {
		t.Errorf("got %v - %v", got.Start, got.End)
	}
}

func TestInferPeriodDecemberRollover(t *testing.T) {
	now := date(2030, time.January, 1)
	got := InferPeriod("12/15/2024", now)
	if !got.Start.Equal(date(2024, time.December, 1)) || !got.End.Equal(date(2024, time.December, 31)) {
		t.Errorf("got %v - %v", got.Start, got.End)
	}
}

func TestInferPeriodNoDatesUsesNow(t *testing.T) {
	now := date(2026, time.August, 15)
	got := InferPeriod("no dates anywhere", now)
	if !got.Start.Equal(date(2026, time.August, 1)) || !got.End.Equal(date(2026, time.August, 31)) {
		t.Errorf("got %v - %v", got.Start, got.End)
	}
}

func TestInferPeriodStartNeverAfterEnd(t *testing.T) {
	texts := []string{
		"", "1/1/24 - 12/31/24", "06/30/25", "garbage 99/99/99",
	}
	now := date(2026, time.February, 10)
	for _, text := range texts {
		got := InferPeriod(text, now)
		if got.Start.After(got.End) {
			t.Errorf("text %q: start %v after end %v", text, got.Start, got.End)
		}
	}
}
