package routes

import (
	"grantee-portal-api/controllers"
	"grantee-portal-api/middleware"
	"grantee-portal-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Grantee Portal API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// File uploads (step one of a submission)
			protected.POST("/uploads", controllers.UploadCertificateFile)

			// Certificates
			certificates := protected.Group("/certificates")
			{
				certificates.GET("", controllers.GetCertificates)
				certificates.GET("/:id", controllers.GetCertificate)
				certificates.POST("", controllers.CreateCertificate)
			}

			// Review (admin & personnel only)
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin, models.RolePersonnel))
			{
				admin.GET("/certificates/:id", controllers.AdminGetCertificate)
				admin.PUT("/certificates/:id", controllers.UpdateCertificate)
			}

			// Admin-only management
			adminOnly := protected.Group("/admin")
			adminOnly.Use(middleware.RequireRole(models.RoleAdmin))
			{
				adminOnly.GET("/activity-logs", controllers.GetActivityLogs)
				adminOnly.POST("/events", controllers.CreateEvent)
				adminOnly.PUT("/events/:id", controllers.UpdateEvent)
				adminOnly.DELETE("/events/:id", controllers.DeleteEvent)
			}

			// Dashboard
			dashboard := protected.Group("/dashboard")
			{
				dashboard.GET("/stats", controllers.GetDashboardStats)
			}

			// Calendar / deadlines
			protected.GET("/events", controllers.GetEvents)

			// Notifications
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", controllers.GetMyNotifications)
				notifications.PUT("/:id/read", controllers.MarkNotificationRead)
				notifications.PUT("/read-all", controllers.MarkAllNotificationsRead)
			}
		}
	}
}
