package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/Shubh17ss/locumbnb-sub000/config"
	"github.com/Shubh17ss/locumbnb-sub000/handlers"
	"github.com/Shubh17ss/locumbnb-sub000/middleware"
	"github.com/Shubh17ss/locumbnb-sub000/services"
	supa "github.com/supabase-community/supabase-go"
)

func SetupRoutes(router *gin.Engine, supabaseClient *supa.Client, cfg *config.Config, ipLookup services.IPLookup, notifier services.Notifier) {
	// Initialize handlers
	postingHandler := handlers.NewPostingHandler(supabaseClient, cfg)
	applicationHandler := handlers.NewApplicationHandler(supabaseClient, cfg, ipLookup, notifier)
	facilityHandler := handlers.NewFacilityHandler(supabaseClient, cfg, notifier)
	profileHandler := handlers.NewProfileHandler(supabaseClient, cfg)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"success": true,
			"message": "Server is running",
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes - job browse (no auth required)
		v1.GET("/postings", postingHandler.GetJobPostings)
		v1.GET("/postings/:id", postingHandler.GetJobPostingByID)

		// Protected routes
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			// Physician routes
			physician := protected.Group("")
			physician.Use(middleware.RoleMiddleware("physician", "admin"))
			{
				physician.GET("/profile", profileHandler.GetMyProfile)
				physician.GET("/profile/eligibility", profileHandler.CheckEligibility)

				physician.GET("/applications", applicationHandler.GetMyApplications)
				physician.POST("/applications", applicationHandler.SubmitApplication)
				physician.POST("/applications/:id/withdraw", applicationHandler.WithdrawApplication)
				physician.GET("/calendar-blocks", applicationHandler.GetMyCalendarBlocks)
			}

			// Facility routes
			facility := protected.Group("/facility")
			facility.Use(middleware.RoleMiddleware("facility", "admin"))
			{
				facility.POST("/postings", postingHandler.CreateJobPosting)
				facility.PUT("/postings/:id/status", postingHandler.UpdatePostingStatus)

				facility.GET("/applications", facilityHandler.GetApplications)
				facility.POST("/applications/:id/review", facilityHandler.StartReview)
				facility.POST("/applications/:id/decision", facilityHandler.DecideApplication)
			}
		}
	}
}
