package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	purchaseRoute "kelasku_backend/internals/features/payment/purchases/route"
)

// WebhookRoutes: endpoint notifikasi gateway, publik tanpa auth.
func WebhookRoutes(r fiber.Router, db *gorm.DB) {
	purchaseRoute.PaymentWebhookRoutes(r, db)
}
