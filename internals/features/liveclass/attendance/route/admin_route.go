package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/constants"
	attendanceCtrl "kelasku_backend/internals/features/liveclass/attendance/controller"
	authMiddleware "kelasku_backend/internals/middlewares/auth"
)

// Route rekap kehadiran untuk staff (prefix: /api/a)
func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attendanceCtrl.NewAttendanceAdminController(db)

	session := r.Group("/live-sessions",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("mengelola kehadiran"), constants.StaffAndAbove...))

	session.Get("/:id/attendances", ctrl.ListBySession)
	session.Get("/:id/attendances/stats", ctrl.Stats)
	session.Post("/:id/attendances/excuse", ctrl.Excuse)
}
