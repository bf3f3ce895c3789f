package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"internship-program-api/config"
	"internship-program-api/models"
	"internship-program-api/utils"
)

// GetAdminDashboard aggregates the program-wide counters for the admin
// landing page.
func GetAdminDashboard(c *gin.Context) {
	var (
		pendingRegistrations int64
		activeParticipants   int64
		completedProfiles    int64
		graduatedProfiles    int64
		reportsAwaiting      int64
		paymentsAwaiting     int64
		certificatesIssued   int64
		presentToday         int64
	)
	var reportsByStatus []struct {
		Status models.ReportStatus `json:"status"`
		Total  int64               `json:"total"`
	}

	today := time.Now().Format("2006-01-02")

	counts := []func() error{
		func() error {
			return config.DB.Model(&models.Registration{}).
				Where("status = ?", models.RegistrationPending).Count(&pendingRegistrations).Error
		},
		func() error {
			return config.DB.Model(&models.ParticipantProfile{}).
				Where("status = ?", models.ProfileActive).Count(&activeParticipants).Error
		},
		func() error {
			return config.DB.Model(&models.ParticipantProfile{}).
				Where("status = ?", models.ProfileCompleted).Count(&completedProfiles).Error
		},
		func() error {
			return config.DB.Model(&models.ParticipantProfile{}).
				Where("status = ?", models.ProfileGraduated).Count(&graduatedProfiles).Error
		},
		func() error {
			return config.DB.Model(&models.Report{}).
				Where("status IN ?", []models.ReportStatus{models.ReportNew, models.ReportInReview}).
				Count(&reportsAwaiting).Error
		},
		func() error {
			return config.DB.Model(&models.Report{}).
				Select("status, COUNT(*) AS total").
				Group("status").
				Scan(&reportsByStatus).Error
		},
		func() error {
			return config.DB.Model(&models.PaymentProof{}).
				Where("status = ?", models.PaymentPending).Count(&paymentsAwaiting).Error
		},
		func() error {
			return config.DB.Model(&models.Certificate{}).Count(&certificatesIssued).Error
		},
		func() error {
			return config.DB.Model(&models.AttendanceRecord{}).
				Where("record_date = ? AND status = ?", today, models.AttendancePresent).
				Count(&presentToday).Error
		},
	}
	for _, count := range counts {
		if err := count(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
	}

	// Activity feed: latest pending submissions and newest reports.
	var recentRegistrations []models.Registration
	if err := config.DB.Preload("Placement").
		Where("status = ?", models.RegistrationPending).
		Order("create_at DESC").Limit(10).
		Find(&recentRegistrations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}
	var recentReports []models.Report
	if err := config.DB.Preload("Profile").Preload("Profile.User").
		Order("submitted_at DESC").Limit(10).
		Find(&recentReports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"pending_registrations": pendingRegistrations,
			"active_participants":   activeParticipants,
			"completed_profiles":    completedProfiles,
			"graduated_profiles":    graduatedProfiles,
			"reports_awaiting":      reportsAwaiting,
			"reports_by_status":     reportsByStatus,
			"payments_awaiting":     paymentsAwaiting,
			"certificates_issued":   certificatesIssued,
			"present_today":         presentToday,
		},
		"recent_registrations": recentRegistrations,
		"recent_reports":       recentReports,
	})
}

// GetMyDashboard is the participant summary: completeness, attendance
// tally and working-day progress through the program period.
func GetMyDashboard(c *gin.Context) {
	profile, ok := currentProfile(c)
	if !ok {
		return
	}

	var presentDays, leaveDays int64
	if err := config.DB.Model(&models.AttendanceRecord{}).
		Where("profile_id = ? AND status = ?", profile.ProfileID, models.AttendancePresent).
		Count(&presentDays).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}
	if err := config.DB.Model(&models.AttendanceRecord{}).
		Where("profile_id = ? AND status IN ?", profile.ProfileID,
			[]models.AttendanceStatus{models.AttendanceExcused, models.AttendanceSick}).
		Count(&leaveDays).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	var pendingReports int64
	if err := config.DB.Model(&models.Report{}).
		Where("profile_id = ? AND status IN ?", profile.ProfileID,
			[]models.ReportStatus{models.ReportNew, models.ReportInReview}).
		Count(&pendingReports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	var paymentStatus *models.PaymentStatus
	var payment models.PaymentProof
	if err := config.DB.Where("profile_id = ?", profile.ProfileID).
		First(&payment).Error; err == nil {
		paymentStatus = &payment.Status
	}

	var certificate *models.Certificate
	var cert models.Certificate
	if err := config.DB.Where("profile_id = ?", profile.ProfileID).
		First(&cert).Error; err == nil {
		certificate = &cert
	}

	var announcements []models.Announcement
	if err := config.DB.
		Where("status = ? AND delete_at IS NULL", models.AnnouncementPublished).
		Where("audience = ? OR audience = ?", models.AudienceAll, string(profile.Category)).
		Order("published_at DESC").Limit(5).
		Find(&announcements).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	progress := gin.H{}
	if profile.StartDate != nil && profile.EndDate != nil {
		totalDays, err := utils.CalculateWorkingDays(*profile.StartDate, *profile.EndDate, holidaySource)
		if err != nil {
			log.Printf("working day calculation failed for profile %d: %v", profile.ProfileID, err)
			totalDays = 0
		}
		elapsed := 0
		now := time.Now()
		if !now.Before(*profile.StartDate) {
			end := now
			if end.After(*profile.EndDate) {
				end = *profile.EndDate
			}
			elapsed, err = utils.CalculateWorkingDays(*profile.StartDate, end, holidaySource)
			if err != nil {
				elapsed = 0
			}
		}
		progress = gin.H{
			"total_working_days":   totalDays,
			"elapsed_working_days": elapsed,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":         profile,
		"present_days":    presentDays,
		"leave_days":      leaveDays,
		"pending_reports": pendingReports,
		"payment_status":  paymentStatus,
		"certificate":     certificate,
		"announcements":   announcements,
		"progress":        progress,
	})
}
