package utils

import (
	"testing"
	"time"
)

type fixedHolidays map[string]bool

func (f fixedHolidays) IsHoliday(date time.Time) (bool, error) {
	return f[date.Format("2006-01-02")], nil
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCalculateWorkingDays(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		holidays fixedHolidays
		want     int
	}{
		{
			// Mon 2026-02-02 .. Sun 2026-02-08
			name:  "full week without holidays",
			start: "2026-02-02",
			end:   "2026-02-08",
			want:  5,
		},
		{
			name:     "holiday on a weekday is excluded",
			start:    "2026-02-02",
			end:      "2026-02-08",
			holidays: fixedHolidays{"2026-02-04": true},
			want:     4,
		},
		{
			name:     "holiday on a weekend changes nothing",
			start:    "2026-02-02",
			end:      "2026-02-08",
			holidays: fixedHolidays{"2026-02-07": true},
			want:     5,
		},
		{
			name:  "single weekday",
			start: "2026-02-03",
			end:   "2026-02-03",
			want:  1,
		},
		{
			name:  "single weekend day",
			start: "2026-02-07",
			end:   "2026-02-07",
			want:  0,
		},
		{
			name:  "end before start",
			start: "2026-02-08",
			end:   "2026-02-02",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var source HolidaySource
			if tt.holidays != nil {
				source = tt.holidays
			}
			got, err := CalculateWorkingDays(day(tt.start), day(tt.end), source)
			if err != nil {
				t.Fatalf("CalculateWorkingDays: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d working days, want %d", got, tt.want)
			}
		})
	}
}

func TestFormatIndoDate(t *testing.T) {
	got := FormatIndoDate(time.Date(2026, time.May, 2, 0, 0, 0, 0, time.UTC))
	if got != "2 Mei 2026" {
		t.Errorf("got %q", got)
	}
	if FormatIndoDatePtr(nil) != "" {
		t.Errorf("nil pointer should format to empty string")
	}
}
