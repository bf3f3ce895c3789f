package models

import (
	"time"
)

// AttendanceStatus for a single (profile, date) record.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceExcused AttendanceStatus = "excused"
	AttendanceSick    AttendanceStatus = "sick"
	AttendanceAbsent  AttendanceStatus = "absent"
)

// LeaveStatus reports whether a status is valid for a leave submission.
func LeaveStatus(s AttendanceStatus) bool {
	return s == AttendanceExcused || s == AttendanceSick
}

// AttendanceRecord is the daily attendance row, unique per (profile, date).
// A record created by the clock endpoint defaults to absent until the
// check-in half-transition promotes it to present.
type AttendanceRecord struct {
	AttendanceID int              `gorm:"primaryKey;column:attendance_id" json:"attendance_id"`
	ProfileID    int              `gorm:"column:profile_id;uniqueIndex:uniq_profile_date" json:"profile_id"`
	RecordDate   time.Time        `gorm:"column:record_date;type:date;uniqueIndex:uniq_profile_date" json:"record_date"`
	CheckIn      *time.Time       `gorm:"column:check_in" json:"check_in,omitempty"`
	CheckOut     *time.Time       `gorm:"column:check_out" json:"check_out,omitempty"`
	Status       AttendanceStatus `gorm:"column:status" json:"status"`
	Note         string           `gorm:"column:note" json:"note"`
	ProofPath    string           `gorm:"column:proof_path" json:"proof_path"`
	CreateAt     *time.Time       `gorm:"column:create_at" json:"create_at"`
	UpdateAt     *time.Time       `gorm:"column:update_at" json:"update_at"`

	Profile ParticipantProfile `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}
