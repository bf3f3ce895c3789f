package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"internship-program-api/config"
	"internship-program-api/models"
	"internship-program-api/services"
	"internship-program-api/utils"
)

type RegistrationForm struct {
	FullName        string `form:"full_name" binding:"required"`
	Email           string `form:"email" binding:"required,email"`
	Category        string `form:"category" binding:"required"`
	InstitutionName string `form:"institution_name" binding:"required"`
	Phone           string `form:"phone" binding:"required"`
	SupervisorName  string `form:"supervisor_name"`
	SupervisorPhone string `form:"supervisor_phone"`
	SupervisorEmail string `form:"supervisor_email"`
	PlacementID     *int   `form:"placement_id"`
}

// SubmitRegistration is the public intake endpoint: multipart form with
// an optional introduction letter. Seats are checked at submission time;
// a pending registration already holds its seat.
func SubmitRegistration(c *gin.Context) {
	var form RegistrationForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.Category(strings.ToLower(form.Category))
	if !category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category must be student or general"})
		return
	}
	if !utils.ValidateEmail(form.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
		return
	}
	if !utils.ValidatePhone(form.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phone number"})
		return
	}

	// One submission per email, across registrations and accounts.
	var dup int64
	if err := config.DB.Model(&models.Registration{}).
		Where("email = ?", form.Email).Count(&dup).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check registration"})
		return
	}
	if dup == 0 {
		if err := config.DB.Model(&models.User{}).
			Where("email = ? AND delete_at IS NULL", form.Email).Count(&dup).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check registration"})
			return
		}
	}
	if dup > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Email is already registered"})
		return
	}

	if err := services.NewQuotaService(nil).EnsureSeatAvailable(form.PlacementID, category); err != nil {
		if errors.Is(err, services.ErrQuotaFull) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Placement not found"})
		return
	}

	letterPath := ""
	if file, err := c.FormFile("letter"); err == nil {
		if !utils.AllowedUploadExt(file.Filename) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Letter must be a PDF or image file"})
			return
		}
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read letter"})
			return
		}
		defer src.Close()

		key := fmt.Sprintf("registrations/%s", utils.GenerateUniqueFilename(file.Filename))
		letterPath, err = fileStore.Save(c.Request.Context(), key, src, file.Size, file.Header.Get("Content-Type"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store letter"})
			return
		}
	}

	reg := models.Registration{
		Email:           strings.ToLower(form.Email),
		FullName:        utils.SanitizeInput(form.FullName),
		Category:        category,
		InstitutionName: utils.SanitizeInput(form.InstitutionName),
		Phone:           utils.SanitizeInput(form.Phone),
		SupervisorName:  utils.SanitizeInput(form.SupervisorName),
		SupervisorPhone: utils.SanitizeInput(form.SupervisorPhone),
		SupervisorEmail: utils.SanitizeInput(form.SupervisorEmail),
		PlacementID:     form.PlacementID,
		LetterPath:      letterPath,
		Status:          models.RegistrationPending,
	}
	if err := config.DB.Create(&reg).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email is already registered"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"registration": reg,
		"message":      "Registration submitted, awaiting review",
	})
}
