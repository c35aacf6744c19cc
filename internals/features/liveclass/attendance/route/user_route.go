package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceCtrl "kelasku_backend/internals/features/liveclass/attendance/controller"
	"kelasku_backend/internals/middlewares"
)

// Route kehadiran untuk user login (prefix: /api/u)
func AttendanceUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attendanceCtrl.NewAttendanceController(db)

	session := r.Group("/live-sessions")
	session.Post("/:id/join", middlewares.JoinRateLimiter(), ctrl.Join)
	session.Post("/:id/leave", ctrl.Leave)
	session.Get("/:id/attendance/me", ctrl.MyAttendance)

	r.Get("/attendances/me", ctrl.MyHistory)
}
