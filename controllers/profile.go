package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"internship-program-api/config"
	"internship-program-api/models"
	"internship-program-api/services"
	"internship-program-api/utils"
)

// currentProfile loads the participant profile behind the authenticated
// user, writing the error response itself when absent.
func currentProfile(c *gin.Context) (*models.ParticipantProfile, bool) {
	userID, _ := c.Get("userID")

	var profile models.ParticipantProfile
	if err := config.DB.Preload("Placement").Preload("Documents").
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Participant profile not found"})
		return nil, false
	}
	return &profile, true
}

// GetMyProfile returns the caller's profile with placement and
// documents.
func GetMyProfile(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

type ProfileUpdateRequest struct {
	Address            string  `json:"address"`
	Phone              string  `json:"phone"`
	BirthPlace         string  `json:"birth_place"`
	BirthDate          *string `json:"birth_date"`
	BloodType          string  `json:"blood_type"`
	MedicalNotes       string  `json:"medical_notes"`
	SpecialCare        string  `json:"special_care"`
	GuardianName       string  `json:"guardian_name"`
	GuardianPhone      string  `json:"guardian_phone"`
	MemberNumber       string  `json:"member_number"`
	InstitutionName    string  `json:"institution_name"`
	InstitutionAddress string  `json:"institution_address"`
	InstitutionEmail   string  `json:"institution_email"`
	InstitutionPhone   string  `json:"institution_phone"`
	SupervisorName     string  `json:"supervisor_name"`
	SupervisorPhone    string  `json:"supervisor_phone"`
	SupervisorEmail    string  `json:"supervisor_email"`
	PlannedStart       *string `json:"planned_start"`
	PlannedEnd         *string `json:"planned_end"`
}

func parseDate(s *string) (*time.Time, bool) {
	if s == nil || *s == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// UpdateMyProfile is participant self-service. The first update that
// yields both planned dates copies them into the official start/end
// dates; after that the official dates are admin-only.
func UpdateMyProfile(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		return
	}

	var req ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	birthDate, ok := parseDate(req.BirthDate)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "birth_date must be YYYY-MM-DD"})
		return
	}
	plannedStart, ok := parseDate(req.PlannedStart)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "planned_start must be YYYY-MM-DD"})
		return
	}
	plannedEnd, ok := parseDate(req.PlannedEnd)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "planned_end must be YYYY-MM-DD"})
		return
	}
	if plannedStart != nil && plannedEnd != nil && plannedEnd.Before(*plannedStart) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "planned_end must not precede planned_start"})
		return
	}

	now := time.Now()
	profile.Address = utils.SanitizeInput(req.Address)
	profile.Phone = utils.SanitizeInput(req.Phone)
	profile.BirthPlace = utils.SanitizeInput(req.BirthPlace)
	profile.BloodType = utils.SanitizeInput(req.BloodType)
	profile.MedicalNotes = utils.SanitizeInput(req.MedicalNotes)
	profile.SpecialCare = utils.SanitizeInput(req.SpecialCare)
	profile.GuardianName = utils.SanitizeInput(req.GuardianName)
	profile.GuardianPhone = utils.SanitizeInput(req.GuardianPhone)
	profile.MemberNumber = utils.SanitizeInput(req.MemberNumber)
	profile.InstitutionName = utils.SanitizeInput(req.InstitutionName)
	profile.InstitutionAddress = utils.SanitizeInput(req.InstitutionAddress)
	profile.InstitutionEmail = utils.SanitizeInput(req.InstitutionEmail)
	profile.InstitutionPhone = utils.SanitizeInput(req.InstitutionPhone)
	profile.SupervisorName = utils.SanitizeInput(req.SupervisorName)
	profile.SupervisorPhone = utils.SanitizeInput(req.SupervisorPhone)
	profile.SupervisorEmail = utils.SanitizeInput(req.SupervisorEmail)
	if birthDate != nil {
		profile.BirthDate = birthDate
	}
	if plannedStart != nil {
		profile.PlannedStart = plannedStart
	}
	if plannedEnd != nil {
		profile.PlannedEnd = plannedEnd
	}
	if profile.StartDate == nil && profile.PlannedStart != nil && profile.PlannedEnd != nil {
		profile.StartDate = profile.PlannedStart
		profile.EndDate = profile.PlannedEnd
	}
	profile.UpdateAt = &now

	if err := config.DB.Save(profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	updated, err := services.RecomputeCompleteness(config.DB, profile.ProfileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": updated})
}

// ListParticipants is the admin directory, filterable by category,
// status and placement.
func ListParticipants(c *gin.Context) {
	q := config.DB.Preload("User").Preload("Placement").Model(&models.ParticipantProfile{})

	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if placementID := c.Query("placement_id"); placementID != "" {
		q = q.Where("placement_id = ?", placementID)
	}

	var profiles []models.ParticipantProfile
	if err := q.Order("profile_id ASC").Find(&profiles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load participants"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"participants": profiles, "total": len(profiles)})
}

type ParticipantStatusRequest struct {
	Status    models.ProfileStatus `json:"status" binding:"required"`
	StartDate *string              `json:"start_date"`
	EndDate   *string              `json:"end_date"`
}

// UpdateParticipant lets an admin adjust official program dates and move
// a participant between active and completed. Graduated is reserved for
// certificate issuance.
func UpdateParticipant(c *gin.Context) {
	var profile models.ParticipantProfile
	if err := config.DB.Where("profile_id = ?", c.Param("id")).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Participant not found"})
		return
	}

	var req ParticipantStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status != models.ProfileActive && req.Status != models.ProfileCompleted {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be active or completed"})
		return
	}
	if profile.Status == models.ProfileGraduated {
		c.JSON(http.StatusConflict, gin.H{"error": "Graduated participants cannot be modified"})
		return
	}

	startDate, ok := parseDate(req.StartDate)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
		return
	}
	endDate, ok := parseDate(req.EndDate)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
		return
	}

	now := time.Now()
	profile.Status = req.Status
	if startDate != nil {
		profile.StartDate = startDate
	}
	if endDate != nil {
		profile.EndDate = endDate
	}
	profile.UpdateAt = &now

	if err := config.DB.Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update participant"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
