package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"internship-program-api/config"
	"internship-program-api/models"
	"internship-program-api/utils"
)

// GetAnnouncements is the participant feed: published announcements for
// everyone plus the caller's category, newest first.
func GetAnnouncements(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		return
	}

	var announcements []models.Announcement
	if err := config.DB.Preload("Author").
		Where("status = ? AND delete_at IS NULL", models.AnnouncementPublished).
		Where("audience = ? OR audience = ?", models.AudienceAll, string(profile.Category)).
		Order("published_at DESC").
		Find(&announcements).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load announcements"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"announcements": announcements, "total": len(announcements)})
}

// ListAllAnnouncements is the admin view including drafts.
func ListAllAnnouncements(c *gin.Context) {
	q := config.DB.Preload("Author").Where("delete_at IS NULL")

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var announcements []models.Announcement
	if err := q.Order("create_at DESC").Find(&announcements).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load announcements"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"announcements": announcements, "total": len(announcements)})
}

type AnnouncementRequest struct {
	Title    string                      `json:"title" binding:"required"`
	Content  string                      `json:"content" binding:"required"`
	Category string                      `json:"category"`
	Priority models.AnnouncementPriority `json:"priority"`
	Audience string                      `json:"audience"`
	Publish  bool                        `json:"publish"`
}

func (r *AnnouncementRequest) validate() (string, bool) {
	switch r.Priority {
	case "", models.PriorityHigh, models.PriorityMedium, models.PriorityLow:
	default:
		return "Priority must be high, medium or low", false
	}
	switch r.Audience {
	case "", models.AudienceAll, string(models.CategoryStudent), string(models.CategoryGeneral):
	default:
		return "Audience must be all, student or general", false
	}
	return "", true
}

// CreateAnnouncement creates a draft or directly published announcement.
func CreateAnnouncement(c *gin.Context) {
	var req AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg, ok := req.validate(); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	userID, _ := c.Get("userID")
	authorID := userID.(int)

	now := time.Now()
	ann := models.Announcement{
		Title:    utils.SanitizeInput(req.Title),
		Content:  utils.SanitizeInput(req.Content),
		AuthorID: &authorID,
		Priority: req.Priority,
		Audience: req.Audience,
		Status:   models.AnnouncementDraft,
		CreateAt: &now,
		UpdateAt: &now,
	}
	if req.Category != "" {
		ann.Category = utils.SanitizeInput(req.Category)
	}
	if ann.Priority == "" {
		ann.Priority = models.PriorityMedium
	}
	if ann.Audience == "" {
		ann.Audience = models.AudienceAll
	}
	if req.Publish {
		ann.Status = models.AnnouncementPublished
		ann.PublishedAt = &now
	}

	if err := config.DB.Create(&ann).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create announcement"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"announcement": ann})
}

// UpdateAnnouncement edits content or flips the publish state.
func UpdateAnnouncement(c *gin.Context) {
	var ann models.Announcement
	if err := config.DB.Where("announcement_id = ? AND delete_at IS NULL", c.Param("id")).
		First(&ann).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Announcement not found"})
		return
	}

	var req AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg, ok := req.validate(); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	now := time.Now()
	ann.Title = utils.SanitizeInput(req.Title)
	ann.Content = utils.SanitizeInput(req.Content)
	if req.Category != "" {
		ann.Category = utils.SanitizeInput(req.Category)
	}
	if req.Priority != "" {
		ann.Priority = req.Priority
	}
	if req.Audience != "" {
		ann.Audience = req.Audience
	}
	if req.Publish && ann.Status != models.AnnouncementPublished {
		ann.Status = models.AnnouncementPublished
		ann.PublishedAt = &now
	}
	ann.UpdateAt = &now

	if err := config.DB.Save(&ann).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update announcement"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"announcement": ann})
}

// DeleteAnnouncement soft deletes.
func DeleteAnnouncement(c *gin.Context) {
	now := time.Now()
	result := config.DB.Model(&models.Announcement{}).
		Where("announcement_id = ? AND delete_at IS NULL", c.Param("id")).
		Update("delete_at", now)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete announcement"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Announcement not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Announcement deleted"})
}
