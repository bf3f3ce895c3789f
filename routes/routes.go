package routes

import (
	"github.com/gin-gonic/gin"

	"internship-program-api/controllers"
	"internship-program-api/middleware"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Internship Program API is running",
				})
			})

			// Intake
			public.GET("/placements", controllers.ListPlacements)
			public.POST("/registrations", controllers.SubmitRegistration)
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// Account
			protected.GET("/me", controllers.GetMe)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Participant self-service
			protected.GET("/profile", controllers.GetMyProfile)
			protected.PUT("/profile", controllers.UpdateMyProfile)

			documents := protected.Group("/documents")
			{
				documents.GET("", controllers.ListMyDocuments)
				documents.POST("", controllers.UploadDocument)
				documents.DELETE("/:kind", controllers.DeleteMyDocument)
			}

			attendance := protected.Group("/attendance")
			{
				attendance.GET("", controllers.GetMyAttendance)
				attendance.POST("/clock", controllers.Clock)
				attendance.POST("/leave", controllers.SubmitLeave)
			}

			reports := protected.Group("/reports")
			{
				reports.GET("", controllers.ListMyReports)
				reports.POST("", controllers.SubmitReport)
			}

			payments := protected.Group("/payments")
			{
				payments.GET("/me", controllers.GetMyPayment)
				payments.POST("/me", controllers.UploadPayment)
			}

			protected.GET("/certificates/me", controllers.GetMyCertificate)
			protected.GET("/dashboard/me", controllers.GetMyDashboard)
			protected.GET("/announcements", controllers.GetAnnouncements)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
		{
			registrations := admin.Group("/registrations")
			{
				registrations.GET("", controllers.ListRegistrations)
				registrations.POST("/:id/approve", controllers.ApproveRegistration)
				registrations.POST("/:id/reject", controllers.RejectRegistration)
			}

			placements := admin.Group("/placements")
			{
				placements.GET("", controllers.ListPlacements)
				placements.POST("", controllers.CreatePlacement)
				placements.PUT("/:id", controllers.UpdatePlacement)
				placements.DELETE("/:id", controllers.DeletePlacement)
			}

			participants := admin.Group("/participants")
			{
				participants.GET("", controllers.ListParticipants)
				participants.PUT("/:id", controllers.UpdateParticipant)
			}

			attendance := admin.Group("/attendance")
			{
				attendance.GET("", controllers.ListAttendance)
				attendance.PUT("/:id", controllers.CorrectAttendance)
			}

			reports := admin.Group("/reports")
			{
				reports.GET("", controllers.ListReports)
				reports.PUT("/:id/review", controllers.ReviewReport)
			}

			payments := admin.Group("/payments")
			{
				payments.GET("", controllers.ListPayments)
				payments.PUT("/:id/verify", controllers.VerifyPayment)
			}

			certificates := admin.Group("/certificates")
			{
				certificates.GET("", controllers.ListCertificates)
				certificates.GET("/eligible", controllers.ListEligibleParticipants)
				certificates.POST("", controllers.IssueCertificate)
			}

			admin.GET("/dashboard", controllers.GetAdminDashboard)

			announcements := admin.Group("/announcements")
			{
				announcements.GET("", controllers.ListAllAnnouncements)
				announcements.POST("", controllers.CreateAnnouncement)
				announcements.PUT("/:id", controllers.UpdateAnnouncement)
				announcements.DELETE("/:id", controllers.DeleteAnnouncement)
			}
		}
	}
}
