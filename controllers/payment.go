package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"internship-program-api/config"
	"internship-program-api/models"
	"internship-program-api/utils"
)

// GetMyPayment returns the caller's payment proof, if any.
func GetMyPayment(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		return
	}

	var proof models.PaymentProof
	err := config.DB.Where("profile_id = ?", profile.ProfileID).First(&proof).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, gin.H{"payment": nil})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment": proof})
}

// UploadPayment stores or replaces the caller's payment proof. Every
// replace resets the status to pending and clears the admin note; no
// history is kept.
func UploadPayment(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		return
	}
	if profile.Category != models.CategoryGeneral {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment proof applies to general participants only"})
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

	key := fmt.Sprintf("payments/%d/%s", profile.ProfileID, utils.GenerateUniqueFilename(file.Filename))
	url, err := fileStore.Save(c.Request.Context(), key, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	now := time.Now()
	var proof models.PaymentProof
	err = config.DB.Where("profile_id = ?", profile.ProfileID).First(&proof).Error
	if err == nil {
		proof.FilePath = url
		proof.Status = models.PaymentPending
		proof.AdminNote = ""
		proof.UploadedAt = now
		proof.UpdateAt = &now
		err = config.DB.Save(&proof).Error
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		proof = models.PaymentProof{
			ProfileID:  profile.ProfileID,
			FilePath:   url,
			Status:     models.PaymentPending,
			UploadedAt: now,
		}
		err = config.DB.Create(&proof).Error
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment": proof})
}

// ListPayments is the admin verification queue.
func ListPayments(c *gin.Context) {
	q := config.DB.Preload("Profile").Preload("Profile.User").Model(&models.PaymentProof{})

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var proofs []models.PaymentProof
	if err := q.Order("uploaded_at ASC").Find(&proofs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"payments": proofs, "total": len(proofs)})
}

type PaymentVerifyRequest struct {
	Status models.PaymentStatus `json:"status" binding:"required"`
	Note   string               `json:"note"`
}

// VerifyPayment sets the verification status with an optional note.
func VerifyPayment(c *gin.Context) {
	var proof models.PaymentProof
	if err := config.DB.Where("payment_id = ?", c.Param("id")).First(&proof).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}

	var req PaymentVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidPaymentStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown payment status"})
		return
	}

	now := time.Now()
	proof.Status = req.Status
	proof.AdminNote = utils.SanitizeInput(req.Note)
	proof.UpdateAt = &now

	if err := config.DB.Save(&proof).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment": proof})
}
