package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"shift-planner-backend/internal/api/handlers"
	"shift-planner-backend/internal/api/middleware"
	"shift-planner-backend/internal/auth"
	"shift-planner-backend/internal/config"
	"shift-planner-backend/internal/repository"
	"shift-planner-backend/internal/service"
)

// SetupRoutes wires repositories, services and handlers into a gin engine
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	// Repositories
	accountRepo := repository.NewAccountRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	templateRepo := repository.NewShiftTemplateRepository(db)
	settingsRepo := repository.NewAccountSettingsRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	snapshotRepo := repository.NewScheduleSnapshotRepository(db)

	// Services
	authService := auth.NewService(cfg.JWTSecret)
	accountService := service.NewAccountService(accountRepo, authService)
	solverService := service.NewSolverService(cfg)
	scheduleService := service.NewScheduleService(
		accountRepo, employeeRepo, templateRepo, settingsRepo,
		shiftRepo, snapshotRepo, solverService,
	)
	employeeService := service.NewEmployeeService(employeeRepo, accountRepo)
	availabilityService := service.NewAvailabilityService(availabilityRepo, employeeRepo)
	templateService := service.NewShiftTemplateService(templateRepo, accountRepo)
	settingsService := service.NewSettingsService(settingsRepo, accountRepo)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	accountHandler := handlers.NewAccountHandler(accountService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	templateHandler := handlers.NewShiftTemplateHandler(templateService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	router.GET("/health", healthHandler.Check)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := router.Group("/api/v1/auth")
	{
		public.POST("/register", accountHandler.Register)
		public.POST("/token", accountHandler.Token)
	}

	v1 := router.Group("/api/v1")
	v1.Use(authService.Middleware())
	{
		accounts := v1.Group("/accounts")
		{
			accounts.GET("/:id", accountHandler.Get)
			accounts.DELETE("/:id", accountHandler.Delete)
		}

		schedules := v1.Group("/schedules")
		{
			schedules.POST("/generate", scheduleHandler.Generate)
			schedules.PUT("", scheduleHandler.Save)
			schedules.GET("", scheduleHandler.Get)
			schedules.GET("/shifts", scheduleHandler.GetShifts)
		}

		employees := v1.Group("/employees")
		{
			employees.POST("", employeeHandler.Create)
			employees.GET("", employeeHandler.List)
			employees.GET("/:id", employeeHandler.Get)
			employees.PUT("/:id", employeeHandler.Update)
			employees.DELETE("/:id", employeeHandler.Delete)

			employees.PUT("/:id/availability", availabilityHandler.Set)
			employees.GET("/:id/availability", availabilityHandler.List)
			employees.DELETE("/:id/availability/:date", availabilityHandler.Clear)
		}

		templates := v1.Group("/shift-templates")
		{
			templates.POST("", templateHandler.Create)
			templates.GET("", templateHandler.List)
			templates.GET("/:id", templateHandler.Get)
			templates.PUT("/:id", templateHandler.Update)
			templates.DELETE("/:id", templateHandler.Delete)
		}

		settings := v1.Group("/settings")
		{
			settings.GET("", settingsHandler.Get)
			settings.PUT("", settingsHandler.Update)
		}
	}

	return router
}
