package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	"internship-program-api/models"
)

func quotaSteps(placementID int64, studentQuota int64, taken int64) []*queryStep {
	unitPattern := regexp.MustCompile(`SELECT .* FROM .*placement_units.* WHERE placement_id = \?`)
	countPattern := regexp.MustCompile(`(?i)SELECT count\(\*\) FROM .*registrations.* WHERE placement_id = \? AND category = \? AND status IN \(\?,\?\)`)

	return []*queryStep{
		{
			kind:    kindQuery,
			pattern: unitPattern,
			args:    []driver.Value{placementID},
			columns: []string{"placement_id", "name", "description", "student_quota", "general_quota"},
			rows:    [][]driver.Value{{placementID, "Perpustakaan", "", studentQuota, int64(3)}},
		},
		{
			kind:    kindQuery,
			pattern: countPattern,
			args:    []driver.Value{placementID, "student", "pending", "approved"},
			columns: []string{"count"},
			rows:    [][]driver.Value{{taken}},
		},
	}
}

func TestRemainingSeatsCountsPendingAndApproved(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, quotaSteps(5, 10, 8))
	defer cleanup()

	svc := NewQuotaService(db)
	remaining, err := svc.RemainingSeats(5, models.CategoryStudent)
	if err != nil {
		t.Fatalf("RemainingSeats returned error: %v", err)
	}
	if remaining != 2 {
		t.Fatalf("expected 2 remaining seats, got %d", remaining)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestRemainingSeatsNeverNegative(t *testing.T) {
	// Capacity lowered below the already-taken count.
	db, state, cleanup := newScriptedGormDB(t, quotaSteps(5, 4, 6))
	defer cleanup()

	svc := NewQuotaService(db)
	remaining, err := svc.RemainingSeats(5, models.CategoryStudent)
	if err != nil {
		t.Fatalf("RemainingSeats returned error: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("expected remaining seats clamped to 0, got %d", remaining)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestEnsureSeatAvailableFailsWhenFull(t *testing.T) {
	// Quota 4, four seats taken. The guard must refuse before any row is
	// written; an attempted INSERT would fail the unmet-expectation check.
	db, state, cleanup := newScriptedGormDB(t, quotaSteps(5, 4, 4))
	defer cleanup()

	svc := NewQuotaService(db)
	placementID := 5
	err := svc.EnsureSeatAvailable(&placementID, models.CategoryStudent)
	if !errors.Is(err, ErrQuotaFull) {
		t.Fatalf("expected ErrQuotaFull, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestEnsureSeatAvailableWithOpenSeat(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, quotaSteps(5, 10, 8))
	defer cleanup()

	svc := NewQuotaService(db)
	placementID := 5
	if err := svc.EnsureSeatAvailable(&placementID, models.CategoryStudent); err != nil {
		t.Fatalf("EnsureSeatAvailable returned error: %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestEnsureSeatAvailableWithoutChosenUnit(t *testing.T) {
	// No unit chosen means no quota constraint and no queries at all.
	db, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	svc := NewQuotaService(db)
	if err := svc.EnsureSeatAvailable(nil, models.CategoryGeneral); err != nil {
		t.Fatalf("nil placement should pass the guard, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestRemainingSeatsRejectsUnknownCategory(t *testing.T) {
	db, _, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	svc := NewQuotaService(db)
	if _, err := svc.RemainingSeats(5, models.Category("staff")); err == nil {
		t.Fatalf("expected an error for an unknown category")
	}
}
