package controllers

import (
	"crypto/rand"
	"log"
	"math/big"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"internship-program-api/config"
	"internship-program-api/models"
	"internship-program-api/render"
)

// ListRegistrations returns submissions for the admin review queue,
// optionally filtered by status and category.
func ListRegistrations(c *gin.Context) {
	q := config.DB.Preload("Placement").Model(&models.Registration{})

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}

	var regs []models.Registration
	if err := q.Order("create_at ASC").Find(&regs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load registrations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"registrations": regs, "total": len(regs)})
}

const credentialMailTemplate = `
<p>Halo {{NAME}},</p>
<p>Pendaftaran Anda telah disetujui. Silakan masuk dengan akun berikut:</p>
<p>Email: <b>{{EMAIL}}</b><br>Password: <b>{{PASSWORD}}</b></p>
<p>Segera ganti password setelah login pertama.</p>
`

// ApproveRegistration creates the participant account and profile in
// one transaction, then best-effort mails the credentials. The
// temporary password is also returned once in the response.
func ApproveRegistration(c *gin.Context) {
	registrationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration ID"})
		return
	}

	var reg models.Registration
	if err := config.DB.Where("registration_id = ?", registrationID).First(&reg).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Registration not found"})
		return
	}
	if reg.Processed() {
		c.JSON(http.StatusConflict, gin.H{"error": "Registration has already been processed"})
		return
	}

	tempPassword, err := generateTempPassword(12)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate credentials"})
		return
	}
	hashed, err := HashPassword(tempPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate credentials"})
		return
	}

	now := time.Now()
	user := models.User{
		FullName: reg.FullName,
		Email:    reg.Email,
		Password: hashed,
		Role:     models.RoleParticipant,
		CreateAt: &now,
		UpdateAt: &now,
	}
	var profile models.ParticipantProfile

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		profile = models.ParticipantProfile{
			UserID:          user.UserID,
			Category:        reg.Category,
			PlacementID:     reg.PlacementID,
			Phone:           reg.Phone,
			InstitutionName: reg.InstitutionName,
			SupervisorName:  reg.SupervisorName,
			SupervisorPhone: reg.SupervisorPhone,
			SupervisorEmail: reg.SupervisorEmail,
			Status:          models.ProfileActive,
			CreateAt:        &now,
			UpdateAt:        &now,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}

		return tx.Model(&models.Registration{}).
			Where("registration_id = ?", registrationID).
			Updates(map[string]interface{}{
				"status":    models.RegistrationApproved,
				"user_id":   user.UserID,
				"update_at": now,
			}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve registration"})
		return
	}

	// Credential mail is best effort; the admin still sees the password.
	body := render.RenderTokens(credentialMailTemplate, map[string]string{
		"NAME":     user.FullName,
		"EMAIL":    user.Email,
		"PASSWORD": tempPassword,
	})
	if err := config.SendMail([]string{user.Email}, "Akun Peserta Magang", body); err != nil {
		log.Printf("credential mail to %s failed: %v", user.Email, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Registration approved",
		"user":          user,
		"profile":       profile,
		"temp_password": tempPassword,
	})
}

// RejectRegistration marks a pending submission rejected, freeing its
// seat.
func RejectRegistration(c *gin.Context) {
	registrationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration ID"})
		return
	}

	var reg models.Registration
	if err := config.DB.Where("registration_id = ?", registrationID).First(&reg).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Registration not found"})
		return
	}
	if reg.Processed() {
		c.JSON(http.StatusConflict, gin.H{"error": "Registration has already been processed"})
		return
	}

	now := time.Now()
	if err := config.DB.Model(&models.Registration{}).
		Where("registration_id = ?", registrationID).
		Updates(map[string]interface{}{
			"status":    models.RegistrationRejected,
			"update_at": now,
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject registration"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registration rejected"})
}

const tempPasswordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func generateTempPassword(length int) (string, error) {
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(tempPasswordAlphabet))))
		if err != nil {
			return "", err
		}
		out[i] = tempPasswordAlphabet[n.Int64()]
	}
	return string(out), nil
}
