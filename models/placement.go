package models

import (
	"time"
)

// Category classifies applicants and participants. Each category has an
// independent seat quota and its own certificate eligibility rule.
type Category string

const (
	CategoryStudent Category = "student"
	CategoryGeneral Category = "general"
)

func (c Category) Valid() bool {
	return c == CategoryStudent || c == CategoryGeneral
}

// PlacementUnit is a placement unit with per-category seat capacity.
// Remaining seats are always computed at read time from registrations,
// never stored.
type PlacementUnit struct {
	PlacementID  int        `gorm:"primaryKey;column:placement_id" json:"placement_id"`
	Name         string     `gorm:"column:name;unique" json:"name"`
	Description  string     `gorm:"column:description" json:"description"`
	StudentQuota int        `gorm:"column:student_quota" json:"student_quota"`
	GeneralQuota int        `gorm:"column:general_quota" json:"general_quota"`
	CreateAt     *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt     *time.Time `gorm:"column:update_at" json:"update_at"`
}

func (PlacementUnit) TableName() string {
	return "placement_units"
}

// QuotaFor returns the configured capacity for a category.
func (p *PlacementUnit) QuotaFor(category Category) int {
	if category == CategoryStudent {
		return p.StudentQuota
	}
	return p.GeneralQuota
}
