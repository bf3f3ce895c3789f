package models

import (
	"time"
)

// CertificateTemplate selects the rendering template family per category.
type CertificateTemplate string

const (
	TemplateStudent CertificateTemplate = "student"
	TemplateGeneral CertificateTemplate = "general"
)

// TemplateForCategory maps a participant category to its template family.
func TemplateForCategory(c Category) CertificateTemplate {
	if c == CategoryStudent {
		return TemplateStudent
	}
	return TemplateGeneral
}

// Certificate is the one-to-one issuance record per profile. Number is
// unique and sequential within its year scope.
type Certificate struct {
	CertificateID int                 `gorm:"primaryKey;column:certificate_id" json:"certificate_id"`
	ProfileID     int                 `gorm:"column:profile_id;unique" json:"profile_id"`
	Number        string              `gorm:"column:number;unique" json:"number"`
	FinalScore    *float64            `gorm:"column:final_score" json:"final_score,omitempty"`
	FilePath      string              `gorm:"column:file_path" json:"file_path"`
	Template      CertificateTemplate `gorm:"column:template" json:"template"`
	IssuedAt      time.Time           `gorm:"column:issued_at" json:"issued_at"`

	Profile ParticipantProfile `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`
}

func (Certificate) TableName() string {
	return "certificates"
}
