// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/redoak/realty-backend/internal/config"
	"github.com/redoak/realty-backend/internal/handlers"
	"github.com/redoak/realty-backend/internal/middleware"
	"github.com/redoak/realty-backend/internal/repository"
	"github.com/redoak/realty-backend/internal/services"
	"github.com/redoak/realty-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize repositories
	agentRepo := repository.NewAgentRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	commissionRepo := repository.NewCommissionRepository(db)

	// Initialize services
	notificationService := services.NewNotificationService(db, cfg)
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		logrus.WithError(err).Warn("Storage service unavailable, image uploads will fail")
	}
	resolver := services.NewReferralResolver(agentRepo, propertyRepo)
	calculator := services.NewCommissionCalculator(cfg.Commission)

	authService := services.NewAuthService(db, cfg)
	agentService := services.NewAgentService(agentRepo, cfg.Commission)
	propertyService := services.NewPropertyService(propertyRepo, agentRepo)
	leadService := services.NewLeadService(leadRepo, agentRepo, propertyRepo, commissionRepo, resolver, calculator, notificationService)
	commissionService := services.NewCommissionService(commissionRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	agentHandler := handlers.NewAgentHandler(agentService)
	propertyHandler := handlers.NewPropertyHandler(propertyService, agentService, storageService)
	leadHandler := handlers.NewLeadHandler(leadService, agentService)
	commissionHandler := handlers.NewCommissionHandler(commissionService, agentService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.AuditLogMiddleware(db))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Agent routes
		agents := v1.Group("/agents")
		{
			agents.GET("/slug/:slug", agentHandler.GetAgentBySlug)
			agents.POST("", middleware.AuthRequired(), middleware.RealtorRequired(), agentHandler.CreateAgent)
			agents.GET("/me", middleware.AuthRequired(), agentHandler.GetMyAgent)
			agents.PUT("/me/bank-details", middleware.AuthRequired(), middleware.RealtorRequired(), agentHandler.UpdateBankDetails)
		}

		// Property routes
		properties := v1.Group("/properties")
		{
			properties.GET("", propertyHandler.ListProperties)
			properties.GET("/:id", propertyHandler.GetProperty)
			properties.POST("", middleware.AuthRequired(), propertyHandler.CreateProperty)
			properties.POST("/:id/images", middleware.AuthRequired(), propertyHandler.UploadImage)
		}

		// Lead routes; submission is public
		leads := v1.Group("/leads")
		{
			leads.POST("", middleware.LeadRateLimit(), middleware.OptionalAuth(), leadHandler.CreateLead)
			leads.GET("", middleware.AuthRequired(), leadHandler.ListLeads)
			leads.GET("/:id", middleware.AuthRequired(), leadHandler.GetLead)
			leads.PATCH("/:id/assign", middleware.AuthRequired(), middleware.AdminRequired(), leadHandler.AssignLead)
			leads.PATCH("/:id/status", middleware.AuthRequired(), middleware.AdminRequired(), leadHandler.UpdateLeadStatus)
		}

		// Commission routes
		commissions := v1.Group("/commissions")
		commissions.Use(middleware.AuthRequired())
		{
			commissions.GET("/mine", middleware.RealtorRequired(), commissionHandler.ListMyCommissions)
			commissions.POST("/:id/payout-request", middleware.RealtorRequired(), commissionHandler.RequestPayout)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.GET("/commissions", commissionHandler.ListCommissions)
			admin.PATCH("/commissions/:id/status", commissionHandler.SetCommissionStatus)
		}
	}

	return r
}
