package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/awfaabdulkader/interior-architect-backend/database"
	"github.com/awfaabdulkader/interior-architect-backend/internal/cache"
	"github.com/awfaabdulkader/interior-architect-backend/internal/config"
	"github.com/awfaabdulkader/interior-architect-backend/internal/email"
	"github.com/awfaabdulkader/interior-architect-backend/internal/handlers"
	"github.com/awfaabdulkader/interior-architect-backend/internal/logger"
	"github.com/awfaabdulkader/interior-architect-backend/internal/middleware"
	"github.com/awfaabdulkader/interior-architect-backend/internal/models"
	"github.com/awfaabdulkader/interior-architect-backend/internal/repositories"
	"github.com/awfaabdulkader/interior-architect-backend/internal/routes"
	"github.com/awfaabdulkader/interior-architect-backend/internal/services"
	"github.com/awfaabdulkader/interior-architect-backend/internal/storage"
	"github.com/awfaabdulkader/interior-architect-backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
		UseSSL:    cfg.Storage.UseSSL,
	}, gormDB)
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	listCache, err := cache.New(cache.Config{
		Type:     cfg.Cache.Type,
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
		TTL:      time.Duration(cfg.Cache.TTLSeconds) * time.Second,
	})
	if err != nil {
		logger.Fatal("Failed to initialize cache", "error", err)
	}
	logger.Info("Cache initialized", "type", cfg.Cache.Type)

	serviceContainer := initializeServices(cfg, storageInstance, listCache)
	appHandlers := initializeHandlers(serviceContainer, storageInstance)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage, listCache cache.Cache) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.Enabled {
		emailService = email.NewSMTPProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
	} else {
		logger.Warn("Email delivery disabled, contact notifications will be dropped")
		emailService = &email.NoopProvider{}
	}

	userRepo := repositories.NewUserRepository()
	categoryRepo := repositories.NewCategoryRepository()
	projectRepo := repositories.NewProjectRepository()
	skillRepo := repositories.NewSkillRepository()
	educationRepo := repositories.NewEducationRepository()
	experienceRepo := repositories.NewExperienceRepository()
	cvRepo := repositories.NewCvRepository()
	contactRepo := repositories.NewContactRepository()

	cacheTTL := time.Duration(cfg.Cache.TTLSeconds) * time.Second

	return &services.ServiceContainer{
		AuthService:       services.NewAuthService(userRepo),
		CategoryService:   services.NewCategoryService(categoryRepo, projectRepo, storageInstance, listCache, cacheTTL, cfg.Upload.MaxImageSize),
		ProjectService:    services.NewProjectService(projectRepo, categoryRepo, storageInstance, listCache, cacheTTL, cfg.Upload.MaxImageSize),
		SkillService:      services.NewSkillService(skillRepo, storageInstance, listCache, cacheTTL, cfg.Upload.MaxImageSize),
		EducationService:  services.NewEducationService(educationRepo),
		ExperienceService: services.NewExperienceService(experienceRepo),
		CvService:         services.NewCvService(cvRepo, cfg.Upload.MaxDocumentSize),
		ContactService:    services.NewContactService(contactRepo, emailService, cfg.Email.NotifyEmail),
		EmailService:      emailService,
		Storage:           storageInstance,
	}
}

func initializeHandlers(container *services.ServiceContainer, storageInstance storage.Storage) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:       handlers.NewAuthHandler(baseHandler, container.AuthService),
		CategoryHandler:   handlers.NewCategoryHandler(baseHandler, container.CategoryService),
		ProjectHandler:    handlers.NewProjectHandler(baseHandler, container.ProjectService),
		SkillHandler:      handlers.NewSkillHandler(baseHandler, container.SkillService),
		EducationHandler:  handlers.NewEducationHandler(baseHandler, container.EducationService),
		ExperienceHandler: handlers.NewExperienceHandler(baseHandler, container.ExperienceService),
		CvHandler:         handlers.NewCvHandler(baseHandler, container.CvService),
		ContactHandler:    handlers.NewContactHandler(baseHandler, container.ContactService),
		ImageHandler:      handlers.NewImageHandler(baseHandler, storageInstance),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin creates the single admin account on first boot.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var admin models.User
	result := db.Where("email = ?", adminEmail).First(&admin)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found. Creating first admin.", "email", adminEmail)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Name:         "Admin",
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("First admin user created", "email", adminEmail)
	return nil
}
