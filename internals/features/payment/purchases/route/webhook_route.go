package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	purchaseCtrl "kelasku_backend/internals/features/payment/purchases/controller"
)

// Route webhook gateway (publik, tanpa auth)
func PaymentWebhookRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := purchaseCtrl.NewPaymentWebhookController(db)
	r.Post("/payments/notification", ctrl.HandleMidtransNotification)
}
