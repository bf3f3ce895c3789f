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

// UploadDocument stores or replaces the caller's document for one kind,
// then recomputes the completeness flags.
func UploadDocument(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		return
	}

	kind := models.DocumentKind(c.PostForm("kind"))
	if !models.ValidDocumentKind(kind) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown document kind"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}
	if !utils.AllowedUploadExt(file.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File must be a PDF or image"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer src.Close()

	key := fmt.Sprintf("documents/%d/%s_%s", profile.ProfileID, kind, utils.GenerateUniqueFilename(file.Filename))
	url, err := fileStore.Save(c.Request.Context(), key, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	// Upsert on (profile, kind): a re-upload replaces the previous file.
	var doc models.Document
	err = config.DB.Where("profile_id = ? AND kind = ?", profile.ProfileID, kind).First(&doc).Error
	if err == nil {
		doc.FilePath = url
		doc.UploadedAt = time.Now()
		err = config.DB.Save(&doc).Error
	} else {
		doc = models.Document{
			ProfileID:  profile.ProfileID,
			Kind:       kind,
			FilePath:   url,
			UploadedAt: time.Now(),
		}
		err = config.DB.Create(&doc).Error
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save document"})
		return
	}

	updated, err := services.RecomputeCompleteness(config.DB, profile.ProfileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"document":           doc,
		"documents_complete": updated.DocumentsComplete,
	})
}

// ListMyDocuments returns the caller's uploads keyed by kind, plus the
// kinds still missing.
func ListMyDocuments(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		return
	}

	var docs []models.Document
	if err := config.DB.Where("profile_id = ?", profile.ProfileID).
		Order("kind ASC").Find(&docs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load documents"})
		return
	}

	have := make(map[models.DocumentKind]bool, len(docs))
	for _, d := range docs {
		have[d.Kind] = true
	}
	missing := []models.DocumentKind{}
	for _, k := range models.RequiredDocumentKinds {
		if !have[k] {
			missing = append(missing, k)
		}
	}

	c.JSON(http.StatusOK, gin.H{"documents": docs, "missing": missing})
}

// DeleteMyDocument removes one kind's upload and recomputes the flags.
func DeleteMyDocument(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		return
	}

	kind := models.DocumentKind(c.Param("kind"))
	if !models.ValidDocumentKind(kind) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown document kind"})
		return
	}

	result := config.DB.Where("profile_id = ? AND kind = ?", profile.ProfileID, kind).
		Delete(&models.Document{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	updated, err := services.RecomputeCompleteness(config.DB, profile.ProfileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":            "Document deleted",
		"documents_complete": updated.DocumentsComplete,
	})
}
