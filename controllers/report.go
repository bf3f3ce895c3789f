package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"internship-program-api/config"
	"internship-program-api/models"
	"internship-program-api/services"
	"internship-program-api/utils"
)

// ListMyReports returns the caller's submissions, newest first.
func ListMyReports(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		return
	}

	var reports []models.Report
	if err := config.DB.Where("profile_id = ?", profile.ProfileID).
		Order("submitted_at DESC").Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports, "total": len(reports)})
}

// SubmitReport accepts a multipart report upload. Multiple submissions
// are allowed; each starts in the new status.
func SubmitReport(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		return
	}

	title := utils.SanitizeInput(c.PostForm("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Report file is required"})
		return
	}
	if !utils.AllowedUploadExt(file.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Report must be a PDF or image"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read report"})
		return
	}
	defer src.Close()

	key := fmt.Sprintf("reports/%d/%s", profile.ProfileID, utils.GenerateUniqueFilename(file.Filename))
	url, err := fileStore.Save(c.Request.Context(), key, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store report"})
		return
	}

	report := models.Report{
		ProfileID:   profile.ProfileID,
		Title:       title,
		Description: utils.SanitizeInput(c.PostForm("description")),
		FilePath:    url,
		Status:      models.ReportNew,
		SubmittedAt: time.Now(),
	}
	if err := config.DB.Create(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit report"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"report": report})
}

// ListReports is the admin review queue, filterable by status.
func ListReports(c *gin.Context) {
	q := config.DB.Preload("Profile").Preload("Profile.User").Model(&models.Report{})

	if status := c.Query("status"); status != "" {
		q = q.Where("reports.status = ?", status)
	}
	if profileID := c.Query("profile_id"); profileID != "" {
		q = q.Where("reports.profile_id = ?", profileID)
	}
	if category := c.Query("category"); category != "" {
		q = q.Joins("JOIN participant_profiles ON participant_profiles.profile_id = reports.profile_id").
			Where("participant_profiles.category = ?", category)
	}

	var reports []models.Report
	if err := q.Order("reports.submitted_at ASC").Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports, "total": len(reports)})
}

type ReportReviewRequest struct {
	Status   models.ReportStatus `json:"status" binding:"required"`
	Feedback string              `json:"feedback"`
}

// ReviewReport moves a report through the review lifecycle. Rejection
// without feedback is refused so the participant always knows what to
// fix.
func ReviewReport(c *gin.Context) {
	var report models.Report
	if err := config.DB.Where("report_id = ?", c.Param("id")).First(&report).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	var req ReportReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	feedback := utils.SanitizeInput(req.Feedback)
	if err := services.ValidateReview(req.Status, feedback); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	report.Status = req.Status
	report.AdminFeedback = feedback
	report.UpdateAt = &now

	if err := config.DB.Save(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to review report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}
