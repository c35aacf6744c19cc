package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifCtrl "kelasku_backend/internals/features/home/notifications/controller"
)

// Route notifikasi untuk user login (prefix: /api/u)
func NotificationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := notifCtrl.NewNotificationController(db)

	g := r.Group("/notifications")
	g.Get("/me", ctrl.MyNotifications)
	g.Post("/:id/read", ctrl.MarkRead)
}
