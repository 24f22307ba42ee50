package routes

import (
	"github.com/labstack/echo/v4"

	"pointarthub/controllers"
	"pointarthub/middlewares"
)

// Controllers groups everything RegisterRoutes wires up.
type Controllers struct {
	Auth          *controllers.AuthController
	Inventory     *controllers.InventoryController
	Sales         *controllers.SalesController
	Backup        *controllers.BackupController
	Notifications *controllers.NotificationController
	Settings      *controllers.SettingsController
	Admin         *controllers.AdminController
}

// RegisterRoutes initializes all API routes.
func RegisterRoutes(e *echo.Echo, c Controllers, auth *middlewares.AuthMiddleware) {
	// Public routes
	e.POST("/register", c.Auth.Register)
	e.POST("/login", c.Auth.Login)

	// Protected routes
	api := e.Group("/api")
	api.Use(auth.RequireAuth())

	api.GET("/profile", c.Auth.Profile)

	api.GET("/stationery", c.Inventory.ListStationery)
	api.POST("/stationery", c.Inventory.CreateStationery)
	api.PUT("/stationery/:id", c.Inventory.UpdateStationery)
	api.DELETE("/stationery/:id", c.Inventory.DeleteStationery)

	api.GET("/gift-store", c.Inventory.ListGiftStore)
	api.POST("/gift-store", c.Inventory.CreateGiftStore)
	api.PUT("/gift-store/:id", c.Inventory.UpdateGiftStore)
	api.DELETE("/gift-store/:id", c.Inventory.DeleteGiftStore)

	api.GET("/embroidery", c.Inventory.ListEmbroidery)
	api.POST("/embroidery", c.Inventory.CreateEmbroidery)
	api.GET("/machines", c.Inventory.ListMachines)
	api.POST("/machines", c.Inventory.CreateMachine)
	api.GET("/art-services", c.Inventory.ListArtServices)
	api.POST("/art-services", c.Inventory.CreateArtService)
	api.GET("/stock-levels", c.Inventory.StockLevels)

	api.POST("/sales/stationery", c.Sales.RecordStationerySale)
	api.POST("/sales/gift", c.Sales.RecordGiftSale)
	api.GET("/sales/stationery", c.Sales.ListStationerySales)
	api.GET("/sales/gift", c.Sales.ListGiftDailySales)
	api.GET("/sales/stats", c.Sales.Stats)

	api.GET("/notifications", c.Notifications.List)
	api.POST("/notifications/evaluate", c.Notifications.Evaluate)
	api.POST("/notifications/:id/read", c.Notifications.MarkRead)
	api.POST("/notifications/read-all", c.Notifications.MarkAllRead)

	api.GET("/settings", c.Settings.Get)
	api.PUT("/settings", c.Settings.Update)

	// Admin-only routes
	admin := e.Group("/admin")
	admin.Use(auth.RequireAdmin())

	admin.GET("/users", c.Admin.ListUsers)
	admin.PUT("/users/role", c.Admin.UpdateRole)
	admin.POST("/two-factor/setup", c.Admin.SetupTwoFactor)
	admin.POST("/two-factor/enable", c.Admin.EnableTwoFactor)

	admin.POST("/backup/export", c.Backup.Export)
	admin.GET("/backup/runs", c.Backup.ListRuns)
	admin.GET("/backup/download/:filename", c.Backup.Download)
	admin.POST("/backup/restore", c.Backup.Restore)
}
