package models

import (
	"time"
)

// RegistrationStatus transitions one way: pending -> approved or
// pending -> rejected. Approved and rejected are terminal.
type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "pending"
	RegistrationApproved RegistrationStatus = "approved"
	RegistrationRejected RegistrationStatus = "rejected"
)

// Registration is an applicant submission. It holds applicant data only;
// no account exists until an admin approves it.
type Registration struct {
	RegistrationID  int                `gorm:"primaryKey;column:registration_id" json:"registration_id"`
	Email           string             `gorm:"column:email;unique" json:"email"`
	FullName        string             `gorm:"column:full_name" json:"full_name"`
	Category        Category           `gorm:"column:category" json:"category"`
	InstitutionName string             `gorm:"column:institution_name" json:"institution_name"`
	Phone           string             `gorm:"column:phone" json:"phone"`
	SupervisorName  string             `gorm:"column:supervisor_name" json:"supervisor_name"`
	SupervisorPhone string             `gorm:"column:supervisor_phone" json:"supervisor_phone"`
	SupervisorEmail string             `gorm:"column:supervisor_email" json:"supervisor_email"`
	PlacementID     *int               `gorm:"column:placement_id" json:"placement_id,omitempty"`
	LetterPath      string             `gorm:"column:letter_path" json:"letter_path"`
	Status          RegistrationStatus `gorm:"column:status;default:pending" json:"status"`
	UserID          *int               `gorm:"column:user_id" json:"user_id,omitempty"`
	CreateAt        *time.Time         `gorm:"column:create_at" json:"create_at"`
	UpdateAt        *time.Time         `gorm:"column:update_at" json:"update_at"`

	// Relations
	Placement *PlacementUnit `gorm:"foreignKey:PlacementID;constraint:OnDelete:SET NULL" json:"placement,omitempty"`
	User      *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Registration) TableName() string {
	return "registrations"
}

// Processed reports whether the registration reached a terminal status.
func (r *Registration) Processed() bool {
	return r.Status != RegistrationPending
}
