package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationRoute "kelasku_backend/internals/features/home/notifications/route"
	purchaseRoute "kelasku_backend/internals/features/payment/purchases/route"
)

// UserRoutes mendaftarkan semua endpoint di bawah /api/u (wajib login).
func UserRoutes(r fiber.Router, db *gorm.DB) {
	liveclassUserRoutes(r, db)
	purchaseRoute.PurchaseUserRoutes(r, db)
	notificationRoute.NotificationUserRoutes(r, db)
}
