package services

import (
	"gorm.io/gorm"

	"internship-program-api/config"
	"internship-program-api/models"
)

// ProfileFieldsComplete reports whether every required administrative
// field on the profile is filled. Medical notes and special care are
// optional.
func ProfileFieldsComplete(p *models.ParticipantProfile) bool {
	required := []string{
		p.Address,
		p.Phone,
		p.BirthPlace,
		p.GuardianName,
		p.GuardianPhone,
		p.InstitutionName,
		p.InstitutionAddress,
		p.SupervisorName,
		p.SupervisorPhone,
	}
	for _, v := range required {
		if v == "" {
			return false
		}
	}
	return p.BirthDate != nil && p.PlacementID != nil
}

// DocumentsCompleteFor reports whether the uploaded kinds cover every
// required document kind.
func DocumentsCompleteFor(uploaded []models.DocumentKind) bool {
	have := make(map[models.DocumentKind]bool, len(uploaded))
	for _, k := range uploaded {
		have[k] = true
	}
	for _, k := range models.RequiredDocumentKinds {
		if !have[k] {
			return false
		}
	}
	return true
}

// RecomputeCompleteness re-derives both completeness flags from current
// profile data and persists them. Callers invoke it after every profile
// or document mutation.
func RecomputeCompleteness(db *gorm.DB, profileID int) (*models.ParticipantProfile, error) {
	if db == nil {
		db = config.DB
	}

	var profile models.ParticipantProfile
	if err := db.Where("profile_id = ?", profileID).First(&profile).Error; err != nil {
		return nil, err
	}

	var kinds []models.DocumentKind
	if err := db.Model(&models.Document{}).
		Where("profile_id = ?", profileID).
		Pluck("kind", &kinds).Error; err != nil {
		return nil, err
	}

	profileComplete := ProfileFieldsComplete(&profile)
	documentsComplete := DocumentsCompleteFor(kinds)

	if profileComplete != profile.ProfileComplete || documentsComplete != profile.DocumentsComplete {
		if err := db.Model(&models.ParticipantProfile{}).
			Where("profile_id = ?", profileID).
			Updates(map[string]interface{}{
				"profile_complete":   profileComplete,
				"documents_complete": documentsComplete,
			}).Error; err != nil {
			return nil, err
		}
	}

	profile.ProfileComplete = profileComplete
	profile.DocumentsComplete = documentsComplete
	return &profile, nil
}
