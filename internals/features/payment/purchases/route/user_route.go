package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	purchaseCtrl "kelasku_backend/internals/features/payment/purchases/controller"
	"kelasku_backend/internals/middlewares"
)

// Route pembelian untuk user login (prefix: /api/u)
func PurchaseUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := purchaseCtrl.NewPurchaseController(db)

	g := r.Group("/purchases")
	g.Post("/sessions", middlewares.CheckoutRateLimiter(), ctrl.CheckoutSession)
	g.Post("/schedules", middlewares.CheckoutRateLimiter(), ctrl.CheckoutSchedule)
	g.Get("/sessions/me", ctrl.MySessionPurchases)
	g.Get("/schedules/me", ctrl.MyScheduleEnrollments)
}
