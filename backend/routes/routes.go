package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HanishaChandrasekaran/placement-prep/backend/config"
	"github.com/HanishaChandrasekaran/placement-prep/backend/controllers"
	"github.com/HanishaChandrasekaran/placement-prep/backend/middleware"
	"github.com/HanishaChandrasekaran/placement-prep/backend/session"
)

func SetupRoutes(app *fiber.App, mgr *session.Manager, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(mgr, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)
	app.Post("/api/auth/logout", authController.Logout)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(mgr, cfg)

	// User routes
	userController := controllers.NewUserController(mgr, cfg)
	app.Get("/api/session", authMiddleware, userController.GetSession)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)
	app.Put("/api/user/profile", authMiddleware, userController.UpdateProfile)
	app.Put("/api/user/preferences", authMiddleware, userController.UpdatePreferences)

	// Progress routes
	progressController := controllers.NewProgressController(mgr, cfg)
	app.Get("/api/progress", authMiddleware, progressController.GetProgress)
	app.Put("/api/progress/:language", authMiddleware, progressController.SetProgress)
	app.Post("/api/courses/:id/complete", authMiddleware, progressController.CompleteItem)
	app.Get("/api/courses/completed", authMiddleware, progressController.GetCompleted)

	// Performance routes
	performanceController := controllers.NewPerformanceController(mgr, cfg)
	performance := app.Group("/api/performance", authMiddleware)
	performance.Post("/", performanceController.Record)
	performance.Get("/", performanceController.List)
	performance.Get("/stats", performanceController.Stats)

	// Catalog routes
	catalogController := controllers.NewCatalogController(cfg)
	languages := app.Group("/api/languages", authMiddleware)
	languages.Get("/", catalogController.ListLanguages)
	languages.Get("/:id/roadmap", catalogController.GetRoadmap)
	languages.Get("/:id/resources", catalogController.GetResources)
}
