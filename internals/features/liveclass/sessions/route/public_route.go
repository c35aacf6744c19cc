package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionCtrl "kelasku_backend/internals/features/liveclass/sessions/controller"
)

// Katalog publik (prefix: /api, OptionalAuth — anonymous boleh browse)
func SessionPublicRoutes(r fiber.Router, db *gorm.DB) {
	sessions := sessionCtrl.NewLiveSessionController(db)
	schedules := sessionCtrl.NewScheduleController(db)

	r.Get("/live-sessions", sessions.List)
	r.Get("/live-sessions/:id", sessions.Detail)

	r.Get("/schedules", schedules.List)
	r.Get("/schedules/:id", schedules.Detail)
}

// Endpoint sesi yang butuh login (prefix: /api/u)
func SessionUserRoutes(r fiber.Router, db *gorm.DB) {
	sessions := sessionCtrl.NewLiveSessionController(db)

	r.Get("/live-sessions/:id/access", sessions.CheckAccess)
}
