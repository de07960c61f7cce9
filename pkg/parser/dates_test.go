package parser

import (
	"testing"
	"time"
)

func TestParseDateToken(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Time
		wantErr bool
	}{
		{"03/14/2024", time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC), false},
		{"3-14-24", time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC), false},
		{"12/31/99", time.Date(2099, time.December, 31, 0, 0, 0, 0, time.UTC), false},
		{"25/12/2024", time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC), false}, // day-first input swaps
		{"02/30/2024", time.Time{}, true},
		{"13/13/2024", time.Time{}, true},
		{"3/14", time.Time{}, true},
		{"abc", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDateToken(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDateFragmentUsesDefaultYear(t *testing.T) {
	got, err := ParseDateFragment("12/31", 2023)
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseDateFragmentExplicitYearIgnoresDefault(t *testing.T) {
	got, err := ParseDateFragment("03/14/2024", 1999)
	if err != nil {
		t.Fatal(err)
	}
	if got.Year() != 2024 {
		t.Errorf("got year %d, want 2024", got.Year())
	}
}
