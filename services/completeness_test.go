package services

import (
	"testing"
	"time"

	"internship-program-api/models"
)

func filledProfile() *models.ParticipantProfile {
	birth := time.Date(2003, time.March, 14, 0, 0, 0, 0, time.UTC)
	placementID := 1
	return &models.ParticipantProfile{
		Address:            "Jl. Selabintana 37",
		Phone:              "081234567890",
		BirthPlace:         "Bandung",
		BirthDate:          &birth,
		GuardianName:       "Dewi",
		GuardianPhone:      "081298765432",
		InstitutionName:    "Universitas Padjadjaran",
		InstitutionAddress: "Jatinangor",
		SupervisorName:     "Dr. Hartono",
		SupervisorPhone:    "081211112222",
		PlacementID:        &placementID,
	}
}

func TestProfileFieldsComplete(t *testing.T) {
	p := filledProfile()
	if !ProfileFieldsComplete(p) {
		t.Fatalf("filled profile should be complete")
	}

	p.GuardianPhone = ""
	if ProfileFieldsComplete(p) {
		t.Errorf("missing guardian phone should be incomplete")
	}

	p = filledProfile()
	p.BirthDate = nil
	if ProfileFieldsComplete(p) {
		t.Errorf("missing birth date should be incomplete")
	}

	p = filledProfile()
	p.PlacementID = nil
	if ProfileFieldsComplete(p) {
		t.Errorf("missing placement should be incomplete")
	}

	// Optional fields do not gate completeness.
	p = filledProfile()
	p.MedicalNotes = ""
	p.SpecialCare = ""
	if !ProfileFieldsComplete(p) {
		t.Errorf("optional fields must not gate completeness")
	}
}

func TestDocumentsCompleteFor(t *testing.T) {
	if DocumentsCompleteFor(nil) {
		t.Errorf("no documents should be incomplete")
	}

	all := append([]models.DocumentKind(nil), models.RequiredDocumentKinds...)
	if !DocumentsCompleteFor(all) {
		t.Errorf("full set should be complete")
	}

	missingOne := all[:len(all)-1]
	if DocumentsCompleteFor(missingOne) {
		t.Errorf("one missing kind should be incomplete")
	}

	// Duplicates of one kind never substitute for another.
	dup := append(append([]models.DocumentKind(nil), missingOne...), missingOne[0])
	if DocumentsCompleteFor(dup) {
		t.Errorf("duplicate kinds must not count as coverage")
	}
}
