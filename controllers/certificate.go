package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"internship-program-api/config"
	"internship-program-api/models"
	"internship-program-api/services"
)

// GetMyCertificate shows the caller's certificate, or the eligibility
// checklist while none exists.
func GetMyCertificate(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		return
	}

	var cert models.Certificate
	err := config.DB.Where("profile_id = ?", profile.ProfileID).First(&cert).Error
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"certificate": cert})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load certificate"})
		return
	}

	var acceptedReports, verifiedPayments int64
	if err := config.DB.Model(&models.Report{}).
		Where("profile_id = ? AND status = ?", profile.ProfileID, models.ReportAccepted).
		Count(&acceptedReports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load certificate"})
		return
	}
	if err := config.DB.Model(&models.PaymentProof{}).
		Where("profile_id = ? AND status = ?", profile.ProfileID, models.PaymentVerified).
		Count(&verifiedPayments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load certificate"})
		return
	}

	checklist := gin.H{
		"program_completed": profile.Status == models.ProfileCompleted,
	}
	if profile.Category == models.CategoryStudent {
		checklist["accepted_report"] = acceptedReports > 0
	} else {
		checklist["verified_payment"] = verifiedPayments > 0
	}

	c.JSON(http.StatusOK, gin.H{"certificate": nil, "checklist": checklist})
}

// ListEligibleParticipants is the admin issuance page source.
func ListEligibleParticipants(c *gin.Context) {
	rows, err := services.NewCertificateService(nil, certRenderer, fileStore).EligibleParticipants()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load eligible participants"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"participants": rows, "total": len(rows)})
}

type IssueCertificateRequest struct {
	ProfileID  int      `json:"profile_id" binding:"required"`
	FinalScore *float64 `json:"final_score"`
}

// IssueCertificate runs the issuance transaction for one profile.
func IssueCertificate(c *gin.Context) {
	var req IssueCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.FinalScore != nil && (*req.FinalScore < 0 || *req.FinalScore > 100) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Final score must be between 0 and 100"})
		return
	}

	svc := services.NewCertificateService(nil, certRenderer, fileStore)
	cert, err := svc.Issue(c.Request.Context(), req.ProfileID, req.FinalScore)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Participant not found"})
		case errors.Is(err, services.ErrAlreadyIssued),
			errors.Is(err, services.ErrProfileNotDone),
			errors.Is(err, services.ErrNoAcceptedReport),
			errors.Is(err, services.ErrPaymentUnverified):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue certificate"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"certificate": cert})
}

// ListCertificates returns issued certificates, optionally scoped to a
// year.
func ListCertificates(c *gin.Context) {
	q := config.DB.Preload("Profile").Preload("Profile.User").Model(&models.Certificate{})

	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year must be numeric"})
			return
		}
		q = q.Where("YEAR(issued_at) = ?", year)
	}

	var certs []models.Certificate
	if err := q.Order("issued_at DESC").Find(&certs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load certificates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"certificates": certs, "total": len(certs)})
}
