package services

import (
	"errors"
	"strings"

	"internship-program-api/models"
)

// Review validation failures, surfaced to the controller as 400s.
var (
	ErrUnknownReportStatus = errors.New("unknown report status")
	ErrFeedbackRequired    = errors.New("rejection requires feedback")
)

// ValidateReview gates a report review request: the status must belong
// to the closed set, and a rejection must carry feedback so the
// participant always knows what to fix.
func ValidateReview(status models.ReportStatus, feedback string) error {
	if !models.ValidReportStatus(status) {
		return ErrUnknownReportStatus
	}
	if status == models.ReportRejected && strings.TrimSpace(feedback) == "" {
		return ErrFeedbackRequired
	}
	return nil
}
