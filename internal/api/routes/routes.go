package routes

import (
	"crm-portal-backend/internal/api/handlers"
	"crm-portal-backend/internal/api/middleware"
	"crm-portal-backend/internal/auth"
	"crm-portal-backend/internal/config"
	"crm-portal-backend/internal/logger"
	"crm-portal-backend/internal/repository"
	"crm-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	salesChannelRepo := repository.NewSalesChannelRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	businessUnitRepo := repository.NewBusinessUnitRepository(db)
	marketingOfficeRepo := repository.NewMarketingOfficeRepository(db)
	marketingChannelRepo := repository.NewMarketingChannelRepository(db)
	phoneCallRepo := repository.NewPhoneCallRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	salesChannelService := service.NewSalesChannelService(salesChannelRepo, validator)
	templateService := service.NewTemplateService(templateRepo, validator, cfg.MaxAttachmentBytes)
	businessUnitService := service.NewBusinessUnitService(businessUnitRepo, validator)
	marketingOfficeService := service.NewMarketingOfficeService(marketingOfficeRepo, businessUnitRepo, validator)
	marketingChannelService := service.NewMarketingChannelService(marketingChannelRepo, validator)
	leadService := service.NewLeadService(leadRepo, salesChannelRepo, marketingChannelRepo, validator)
	phoneCallService := service.NewPhoneCallService(phoneCallRepo, leadRepo, validator)
	directoryService := service.NewDirectoryService(cfg)
	linkedInService := service.NewLinkedInService(service.LinkedInConfig{
		ClientID:     cfg.LinkedInClientID,
		ClientSecret: cfg.LinkedInClientSecret,
		RedirectURL:  cfg.LinkedInRedirectURL,
	}, leadService, validator, logger.New())

	// Initialize auth
	authService := auth.NewAuthService(userRepo, validator, cfg.JWTSecret, cfg.JWTExpiryHours)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	salesChannelHandler := handlers.NewSalesChannelHandler(salesChannelService)
	templateHandler := handlers.NewTemplateHandler(templateService, cfg.MaxAttachmentBytes)
	businessUnitHandler := handlers.NewBusinessUnitHandler(businessUnitService)
	marketingOfficeHandler := handlers.NewMarketingOfficeHandler(marketingOfficeService)
	marketingChannelHandler := handlers.NewMarketingChannelHandler(marketingChannelService)
	phoneCallHandler := handlers.NewPhoneCallHandler(phoneCallService)
	leadHandler := handlers.NewLeadHandler(leadService, phoneCallService)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)
	linkedInHandler := handlers.NewLinkedInHandler(linkedInService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/validate", authHandler.ValidateToken)
	}

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	{
		// Sales channel routes
		salesChannels := v1.Group("/sales-channels")
		{
			salesChannels.GET("", salesChannelHandler.ListSalesChannels)
			salesChannels.POST("", salesChannelHandler.CreateSalesChannel)
			salesChannels.GET("/:code", salesChannelHandler.GetSalesChannel)
			salesChannels.PUT("/:code", salesChannelHandler.UpdateSalesChannel)
			salesChannels.DELETE("/:code", salesChannelHandler.DeleteSalesChannel)
		}

		// Template routes
		templates := v1.Group("/templates")
		{
			templates.GET("", templateHandler.ListTemplates)
			templates.POST("", templateHandler.CreateTemplate)
			templates.GET("/:id", templateHandler.GetTemplate)
			templates.PUT("/:id", templateHandler.UpdateTemplate)
			templates.DELETE("/:id", templateHandler.DeleteTemplate)
			templates.GET("/:id/attachments", templateHandler.ListAttachments)
			templates.POST("/:id/attachments", templateHandler.UploadAttachment)
			templates.GET("/:id/attachments/:attachmentId/content", templateHandler.DownloadAttachment)
			templates.DELETE("/:id/attachments/:attachmentId", templateHandler.DeleteAttachment)
		}

		// Business unit routes
		businessUnits := v1.Group("/business-units")
		{
			businessUnits.GET("", businessUnitHandler.ListBusinessUnits)
			businessUnits.POST("", businessUnitHandler.CreateBusinessUnit)
			businessUnits.GET("/:code", businessUnitHandler.GetBusinessUnit)
			businessUnits.GET("/:code/children", businessUnitHandler.GetBusinessUnitChildren)
			businessUnits.PUT("/:code", businessUnitHandler.UpdateBusinessUnit)
			businessUnits.DELETE("/:code", businessUnitHandler.DeleteBusinessUnit)
		}

		// Marketing office routes
		marketingOffices := v1.Group("/marketing-offices")
		{
			marketingOffices.GET("", marketingOfficeHandler.ListMarketingOffices)
			marketingOffices.POST("", marketingOfficeHandler.CreateMarketingOffice)
			marketingOffices.GET("/:code", marketingOfficeHandler.GetMarketingOffice)
			marketingOffices.PUT("/:code", marketingOfficeHandler.UpdateMarketingOffice)
			marketingOffices.DELETE("/:code", marketingOfficeHandler.DeleteMarketingOffice)
		}

		// Marketing channel routes
		marketingChannels := v1.Group("/marketing-channels")
		{
			marketingChannels.GET("", marketingChannelHandler.ListMarketingChannels)
			marketingChannels.POST("", marketingChannelHandler.CreateMarketingChannel)
			marketingChannels.GET("/:id", marketingChannelHandler.GetMarketingChannel)
			marketingChannels.PUT("/:id", marketingChannelHandler.UpdateMarketingChannel)
			marketingChannels.DELETE("/:id", marketingChannelHandler.DeleteMarketingChannel)
		}

		// Phone call routes
		phoneCalls := v1.Group("/phone-calls")
		{
			phoneCalls.GET("", phoneCallHandler.ListPhoneCalls)
			phoneCalls.POST("", phoneCallHandler.CreatePhoneCall)
			phoneCalls.GET("/:id", phoneCallHandler.GetPhoneCall)
			phoneCalls.PUT("/:id", phoneCallHandler.UpdatePhoneCall)
			phoneCalls.DELETE("/:id", phoneCallHandler.DeletePhoneCall)
		}

		// Lead routes
		leads := v1.Group("/leads")
		{
			leads.GET("", leadHandler.ListLeads)
			leads.GET("/search", leadHandler.SearchLeads)
			leads.POST("", leadHandler.CreateLead)
			leads.GET("/:id", leadHandler.GetLead)
			leads.GET("/:id/phone-calls", leadHandler.GetLeadPhoneCalls)
			leads.PUT("/:id", leadHandler.UpdateLead)
			leads.DELETE("/:id", leadHandler.DeleteLead)
		}

		// Directory routes
		directory := v1.Group("/directory")
		{
			directory.GET("/users/search", directoryHandler.UserSearch)
		}

		// LinkedIn routes
		linkedIn := v1.Group("/linkedin")
		{
			linkedIn.GET("/auth/start", linkedInHandler.Start)
			linkedIn.GET("/auth/callback", linkedInHandler.Callback)
			linkedIn.POST("/import", linkedInHandler.ImportLeads)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
