package models

import (
	"time"
)

// PaymentStatus verification lifecycle. Re-uploading a proof resets the
// status to pending; there are no other transition constraints.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentVerified PaymentStatus = "verified"
	PaymentRejected PaymentStatus = "rejected"
)

func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentVerified, PaymentRejected:
		return true
	}
	return false
}

// PaymentProof is the single payment record per profile. Only meaningful
// for general-category participants; last write wins, no history.
type PaymentProof struct {
	PaymentID  int           `gorm:"primaryKey;column:payment_id" json:"payment_id"`
	ProfileID  int           `gorm:"column:profile_id;unique" json:"profile_id"`
	FilePath   string        `gorm:"column:file_path" json:"file_path"`
	Status     PaymentStatus `gorm:"column:status;default:pending" json:"status"`
	AdminNote  string        `gorm:"column:admin_note" json:"admin_note"`
	UploadedAt time.Time     `gorm:"column:uploaded_at" json:"uploaded_at"`
	UpdateAt   *time.Time    `gorm:"column:update_at" json:"update_at"`

	Profile ParticipantProfile `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`
}

func (PaymentProof) TableName() string {
	return "payment_proofs"
}
