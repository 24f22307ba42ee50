package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pointarthub/config"
	"pointarthub/controllers"
	jobs "pointarthub/job"
	"pointarthub/middlewares"
	"pointarthub/migrations"
	"pointarthub/repositories"
	"pointarthub/routes"
	"pointarthub/services"
	"pointarthub/storage"
)

var (
	salesCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pointarthub_sales_recorded_total",
		Help: "Total de vendas registradas",
	})
	backupsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pointarthub_backups_total",
		Help: "Total de backups exportados",
	})
	restoresCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pointarthub_restores_total",
		Help: "Total de restores executados",
	})
	alertsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pointarthub_alerts_generated_total",
		Help: "Total de alertas gerados",
	})
)

func init() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	prometheus.MustRegister(salesCounter, backupsCounter, restoresCounter, alertsCounter)
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on the environment")
	}

	// Load configuration
	cfg := config.LoadConfig()
	logrus.Infof("Configuration loaded, serving on %s", cfg.ServerAddr)

	// Initialize database connection
	db, err := repositories.InitDB()
	if err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}
	if err := migrations.RunMigrations(db); err != nil {
		logrus.Fatal("Failed to run migrations: ", err)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	inventoryRepo := repositories.NewInventoryRepository(db)
	salesRepo := repositories.NewSalesRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)
	backupRepo := repositories.NewBackupRepository(db)
	twoFactorRepo := repositories.NewTwoFactorRepository(db)
	collectionStore := repositories.NewCollectionStore(db)

	// Snapshot artifact storage
	var snapshotStorage storage.Storage
	switch cfg.StorageType {
	case "s3":
		s3Storage, err := storage.NewS3Storage(cfg.S3Bucket)
		if err != nil {
			logrus.Fatal("Failed to configure S3 snapshot storage: ", err)
		}
		snapshotStorage = s3Storage
	default:
		snapshotStorage = storage.NewLocalStorage(cfg.BackupDir)
	}

	// Services
	authService := services.NewAuthService(userRepo)
	settingsService := services.NewSettingsService(settingsRepo)
	notificationService := services.NewNotificationService(notificationRepo, inventoryRepo, salesRepo, settingsService)
	salesService := services.NewSalesService(salesRepo, inventoryRepo, notificationService)
	backupService := services.NewBackupService(collectionStore, backupRepo, snapshotStorage)
	twoFactorService := services.NewTwoFactorService(twoFactorRepo, userRepo)

	// Controllers
	ctrls := routes.Controllers{
		Auth:          controllers.NewAuthController(authService),
		Inventory:     controllers.NewInventoryController(inventoryRepo, notificationService),
		Sales:         controllers.NewSalesController(salesService, salesCounter),
		Backup:        controllers.NewBackupController(backupService, notificationService, backupsCounter, restoresCounter),
		Notifications: controllers.NewNotificationController(notificationService, alertsCounter),
		Settings:      controllers.NewSettingsController(settingsService, notificationService),
		Admin:         controllers.NewAdminController(userRepo, twoFactorService),
	}

	// Set up Echo server
	e := echo.New()
	e.HideBanner = true

	// Apply global middlewares
	e.Use(middlewares.RecoveryMiddleware())
	e.Use(middlewares.ErrorHandler())

	authMiddleware := middlewares.NewAuthMiddleware(middlewares.JWTValidator{}, userRepo)
	routes.RegisterRoutes(e, ctrls, authMiddleware)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Background backup reminder
	go jobs.StartBackupReminderJob(backupService, notificationService,
		time.Duration(cfg.BackupReminderDays)*24*time.Hour)

	// Start server
	if err := e.Start(cfg.ServerAddr); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
