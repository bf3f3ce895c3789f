package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"internship-program-api/models"
)

func TestNextClockStep(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		rec  *models.AttendanceRecord
		want clockStep
	}{
		{"no record yet", nil, stepCheckIn},
		{
			"record without check-in",
			&models.AttendanceRecord{Status: models.AttendanceAbsent},
			stepCheckIn,
		},
		{
			"checked in, not out",
			&models.AttendanceRecord{Status: models.AttendancePresent, CheckIn: &now},
			stepCheckOut,
		},
		{
			"checked in and out",
			&models.AttendanceRecord{Status: models.AttendancePresent, CheckIn: &now, CheckOut: &now},
			stepDone,
		},
		{
			"sick day blocks clocking",
			&models.AttendanceRecord{Status: models.AttendanceSick},
			stepBlocked,
		},
		{
			"excused day blocks clocking",
			&models.AttendanceRecord{Status: models.AttendanceExcused},
			stepBlocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextClockStep(tt.rec); got != tt.want {
				t.Errorf("got step %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubmitLeaveFailsOnExistingDate(t *testing.T) {
	countPattern := regexp.MustCompile(`(?i)SELECT count\(\*\) FROM .*attendance_records.* WHERE profile_id = \? AND record_date = \?`)

	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: countPattern,
			columns: []string{"count"},
			rows:    [][]driver.Value{{int64(1)}},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewAttendanceService(db)
	_, err := svc.SubmitLeave(1, day("2026-02-04"), models.AttendanceSick, "flu", "")
	if !errors.Is(err, ErrDuplicateDay) {
		t.Fatalf("expected ErrDuplicateDay, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSubmitLeaveRejectsBadStatus(t *testing.T) {
	db, _, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	svc := NewAttendanceService(db)
	if _, err := svc.SubmitLeave(1, time.Now(), models.AttendancePresent, "", ""); err == nil {
		t.Fatalf("present is not a leave status")
	}
}
