package models

import (
	"time"
)

// ReportStatus review lifecycle. Rejection requires admin feedback.
type ReportStatus string

const (
	ReportNew      ReportStatus = "new"
	ReportInReview ReportStatus = "in_review"
	ReportAccepted ReportStatus = "accepted"
	ReportRejected ReportStatus = "rejected"
)

func ValidReportStatus(s ReportStatus) bool {
	switch s {
	case ReportNew, ReportInReview, ReportAccepted, ReportRejected:
		return true
	}
	return false
}

type Report struct {
	ReportID      int          `gorm:"primaryKey;column:report_id" json:"report_id"`
	ProfileID     int          `gorm:"column:profile_id" json:"profile_id"`
	Title         string       `gorm:"column:title" json:"title"`
	Description   string       `gorm:"column:description" json:"description"`
	FilePath      string       `gorm:"column:file_path" json:"file_path"`
	Status        ReportStatus `gorm:"column:status;default:new" json:"status"`
	AdminFeedback string       `gorm:"column:admin_feedback" json:"admin_feedback"`
	SubmittedAt   time.Time    `gorm:"column:submitted_at" json:"submitted_at"`
	UpdateAt      *time.Time   `gorm:"column:update_at" json:"update_at"`

	Profile ParticipantProfile `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`
}

func (Report) TableName() string {
	return "reports"
}
