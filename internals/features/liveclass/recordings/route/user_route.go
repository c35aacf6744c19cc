package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	recordingCtrl "kelasku_backend/internals/features/liveclass/recordings/controller"
)

// Route rekaman untuk user login (prefix: /api/u)
func RecordingUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := recordingCtrl.NewRecordingController(db)

	r.Get("/live-sessions/:id/recordings", ctrl.ListBySession)
	r.Get("/recordings/:id/watch", ctrl.Watch)
}
