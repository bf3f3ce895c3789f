package services

import (
	"errors"
	"testing"

	"internship-program-api/models"
)

func TestValidateReview(t *testing.T) {
	tests := []struct {
		name     string
		status   models.ReportStatus
		feedback string
		want     error
	}{
		{"rejection without feedback", models.ReportRejected, "", ErrFeedbackRequired},
		{"rejection with blank feedback", models.ReportRejected, "   ", ErrFeedbackRequired},
		{"rejection with feedback", models.ReportRejected, "missing methodology chapter", nil},
		{"acceptance without feedback", models.ReportAccepted, "", nil},
		{"in review without feedback", models.ReportInReview, "", nil},
		{"unknown status", models.ReportStatus("archived"), "note", ErrUnknownReportStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateReview(tt.status, tt.feedback)
			if !errors.Is(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
