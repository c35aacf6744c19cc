package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "kelasku_backend/internals/middlewares/auth"
	routeDetails "kelasku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== WEBHOOK (tanpa auth) =====================
	log.Println("[INFO] Setting up WEBHOOK routes...")
	webhook := app.Group("/api")
	routeDetails.WebhookRoutes(webhook, db)

	// ===================== PUBLIC → JWT opsional =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api", authMiddleware.OptionalAuthMiddleware())
	routeDetails.PublicRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware())
	routeDetails.UserRoutes(private, db)

	// ===================== STAFF =====================
	log.Println("[INFO] Setting up STAFF group...")
	staff := app.Group("/api/a", authMiddleware.AuthMiddleware())
	routeDetails.StaffRoutes(staff, db)
}
