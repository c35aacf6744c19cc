package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "kelasku_backend/internals/features/liveclass/attendance/route"
	recordingRoute "kelasku_backend/internals/features/liveclass/recordings/route"
	sessionRoute "kelasku_backend/internals/features/liveclass/sessions/route"
)

// Katalog sesi & paket — publik, JWT opsional.
func PublicRoutes(r fiber.Router, db *gorm.DB) {
	sessionRoute.SessionPublicRoutes(r, db)
}

// Semua fitur live-class yang butuh login.
func liveclassUserRoutes(r fiber.Router, db *gorm.DB) {
	sessionRoute.SessionUserRoutes(r, db)
	attendanceRoute.AttendanceUserRoutes(r, db)
	recordingRoute.RecordingUserRoutes(r, db)
}

// Rekap kehadiran untuk staff.
func StaffRoutes(r fiber.Router, db *gorm.DB) {
	attendanceRoute.AttendanceAdminRoutes(r, db)
}
