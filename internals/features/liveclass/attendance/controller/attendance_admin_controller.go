package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/liveclass/attendance/dto"
	"kelasku_backend/internals/features/liveclass/attendance/model"
	"kelasku_backend/internals/features/liveclass/attendance/service"
	helper "kelasku_backend/internals/helpers"
)

// Controller khusus staff (instructor/admin): rekap + pengecualian manual.
type AttendanceAdminController struct {
	DB       *gorm.DB
	Service  *service.AttendanceService
	Validate *validator.Validate
}

func NewAttendanceAdminController(db *gorm.DB) *AttendanceAdminController {
	return &AttendanceAdminController{
		DB:       db,
		Service:  service.NewAttendanceService(db),
		Validate: validator.New(),
	}
}

/* ===================== STATS ===================== */
// GET /api/a/live-sessions/:id/attendances/stats
func (ctrl *AttendanceAdminController) Stats(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	stats, err := ctrl.Service.StatsForSession(sessionID)
	if err != nil {
		return helper.FromDomainError(c, err)
	}

	return helper.Success(c, "Statistik kehadiran sesi", stats)
}

/* ===================== LIST ===================== */
// GET /api/a/live-sessions/:id/attendances?page=&per_page=
func (ctrl *AttendanceAdminController) ListBySession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	p := helper.ResolvePaging(c, 50, 200)

	q := ctrl.DB.Model(&model.LiveSessionAttendanceModel{}).
		Where("live_session_attendance_session_id = ?", sessionID)

	// filter opsional ?status=present|late|absent|excused
	if status := c.Query("status"); status != "" {
		q = q.Where("live_session_attendance_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung kehadiran")
	}

	var items []model.LiveSessionAttendanceModel
	if err := q.
		Order("live_session_attendance_joined_at ASC NULLS LAST").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar kehadiran")
	}

	return helper.SuccessWithPagination(c, "Daftar kehadiran sesi",
		dto.ToLiveSessionAttendanceResponses(items),
		helper.BuildPagination(total, p, len(items)))
}

/* ===================== EXCUSE ===================== */
// POST /api/a/live-sessions/:id/attendances/excuse
func (ctrl *AttendanceAdminController) Excuse(c *fiber.Ctx) error {
	staffID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	var req dto.ExcuseAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	att, err := ctrl.Service.Excuse(staffID, req.UserID, sessionID, req.Reason)
	if err != nil {
		return helper.FromDomainError(c, err)
	}

	return helper.Success(c, "Kehadiran ditandai excused", dto.ToLiveSessionAttendanceResponse(att))
}
