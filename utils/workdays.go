package utils

import "time"

// HolidaySource answers whether a given date is a public holiday.
type HolidaySource interface {
	IsHoliday(date time.Time) (bool, error)
}

// CalculateWorkingDays counts the non-weekend, non-holiday days between
// start and end inclusive. A nil source counts weekdays only. Returns 0
// when end is before start.
func CalculateWorkingDays(start, end time.Time, source HolidaySource) (int, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return 0, nil
	}

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		if source != nil {
			holiday, err := source.IsHoliday(d)
			if err != nil {
				return 0, err
			}
			if holiday {
				continue
			}
		}
		days++
	}
	return days, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
