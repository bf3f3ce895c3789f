package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"internship-program-api/config"
	"internship-program-api/models"
	"internship-program-api/services"
	"internship-program-api/utils"
)

// GetMyAttendance lists the caller's records, newest first, optionally
// bounded by from/to dates.
func GetMyAttendance(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		return
	}

	q := config.DB.Where("profile_id = ?", profile.ProfileID)
	if from, ok := parseQueryDate(c, "from"); !ok {
		return
	} else if from != nil {
		q = q.Where("record_date >= ?", *from)
	}
	if to, ok := parseQueryDate(c, "to"); !ok {
		return
	} else if to != nil {
		q = q.Where("record_date <= ?", *to)
	}

	var records []models.AttendanceRecord
	if err := q.Order("record_date DESC").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load attendance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"attendance": records, "total": len(records)})
}

// Clock handles the check-in/check-out button: first call of the day
// checks in, second checks out.
func Clock(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		return
	}
	if profile.Status != models.ProfileActive {
		c.JSON(http.StatusConflict, gin.H{"error": "Only active participants can clock attendance"})
		return
	}

	rec, err := services.NewAttendanceService(nil).Clock(profile.ProfileID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDayCompleted), errors.Is(err, services.ErrLeaveDay):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record attendance"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"attendance": rec})
}

// SubmitLeave records an excused or sick day with an optional proof
// upload. Fails when the date already has any record.
func SubmitLeave(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		return
	}

	dateStr := c.PostForm("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	status := models.AttendanceStatus(c.PostForm("status"))
	if !models.LeaveStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be excused or sick"})
		return
	}
	note := utils.SanitizeInput(c.PostForm("note"))
	if note == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A reason is required"})
		return
	}

	proofPath := ""
	if file, err := c.FormFile("proof"); err == nil {
		if !utils.AllowedUploadExt(file.Filename) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Proof must be a PDF or image"})
			return
		}
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read proof"})
			return
		}
		defer src.Close()

		key := fmt.Sprintf("attendance/%d/%s", profile.ProfileID, utils.GenerateUniqueFilename(file.Filename))
		proofPath, err = fileStore.Save(c.Request.Context(), key, src, file.Size, file.Header.Get("Content-Type"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store proof"})
			return
		}
	}

	rec, err := services.NewAttendanceService(nil).SubmitLeave(profile.ProfileID, date, status, note, proofPath)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateDay) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit leave"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"attendance": rec})
}

// ListAttendance is the admin view: one day across participants, or one
// participant across days.
func ListAttendance(c *gin.Context) {
	q := config.DB.Preload("Profile").Preload("Profile.User").Model(&models.AttendanceRecord{})

	if date, ok := parseQueryDate(c, "date"); !ok {
		return
	} else if date != nil {
		q = q.Where("record_date = ?", *date)
	}
	if profileID := c.Query("profile_id"); profileID != "" {
		q = q.Where("attendance_records.profile_id = ?", profileID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("attendance_records.status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		q = q.Joins("JOIN participant_profiles ON participant_profiles.profile_id = attendance_records.profile_id").
			Where("participant_profiles.category = ?", category)
	}

	var records []models.AttendanceRecord
	if err := q.Order("attendance_records.record_date DESC, attendance_records.profile_id ASC").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load attendance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"attendance": records, "total": len(records)})
}

type AttendanceCorrectionRequest struct {
	Status models.AttendanceStatus `json:"status" binding:"required"`
	Note   string                  `json:"note"`
}

// CorrectAttendance lets an admin override a record's status, e.g. to
// mark a no-show absent.
func CorrectAttendance(c *gin.Context) {
	var rec models.AttendanceRecord
	if err := config.DB.Where("attendance_id = ?", c.Param("id")).First(&rec).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Attendance record not found"})
		return
	}

	var req AttendanceCorrectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	switch req.Status {
	case models.AttendancePresent, models.AttendanceExcused, models.AttendanceSick, models.AttendanceAbsent:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown attendance status"})
		return
	}

	now := time.Now()
	rec.Status = req.Status
	rec.Note = utils.SanitizeInput(req.Note)
	rec.UpdateAt = &now

	if err := config.DB.Save(&rec).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update attendance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"attendance": rec})
}

// parseQueryDate reads an optional YYYY-MM-DD query param, writing the
// 400 itself on a malformed value.
func parseQueryDate(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be YYYY-MM-DD"})
		return nil, false
	}
	return &t, true
}
