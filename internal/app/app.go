package app

import (
	"fmt"

	"expensetracker_backend/internal/auth"
	"expensetracker_backend/internal/config"
	"expensetracker_backend/internal/email"
	"expensetracker_backend/internal/handlers"
	"expensetracker_backend/internal/logger"
	"expensetracker_backend/internal/models"
	"expensetracker_backend/internal/repositories"
	"expensetracker_backend/internal/routes"
	"expensetracker_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run wires the whole application together and starts the HTTP server:
// config, logger, database, repositories, services, handlers, routes.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Unable to connect to the database.", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connection established successfully.")

	if err := gormDB.AutoMigrate(&models.User{}, &models.Category{}, &models.Expense{}); err != nil {
		logger.Fatal("Failed to migrate database schema", "error", err)
	}

	router := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server is running", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Unable to run the server.", "error", err)
	}
}

// SetupRouter builds the gin engine with every dependency wired. Tests use it
// directly against their own database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	userRepo := repositories.NewUserRepository(gormDB)
	categoryRepo := repositories.NewCategoryRepository(gormDB)
	expenseRepo := repositories.NewExpenseRepository(gormDB)

	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWTTTL())
	mailSender, err := email.NewSMTPSender(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize mail sender", "error", err)
	}

	container := &services.ServiceContainer{
		AccountService:  services.NewAccountService(userRepo, mailSender, jwtManager, cfg),
		UserService:     services.NewUserService(userRepo),
		CategoryService: services.NewCategoryService(categoryRepo),
		ExpenseService:  services.NewExpenseService(expenseRepo, categoryRepo),
	}

	appHandlers := handlers.NewAppHandlers(container)

	router := initializeGinRouter(cfg)
	routes.SetupRoutes(router, appHandlers, jwtManager, userRepo, expenseRepo)

	return router
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	return router
}
