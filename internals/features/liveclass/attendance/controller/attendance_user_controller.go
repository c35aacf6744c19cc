package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/liveclass/attendance/dto"
	"kelasku_backend/internals/features/liveclass/attendance/model"
	"kelasku_backend/internals/features/liveclass/attendance/service"
	helper "kelasku_backend/internals/helpers"
)

type AttendanceController struct {
	DB      *gorm.DB
	Service *service.AttendanceService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:      db,
		Service: service.NewAttendanceService(db),
	}
}

/* ===================== JOIN ===================== */
// POST /api/u/live-sessions/:id/join
func (ctrl *AttendanceController) Join(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	// body opsional (device info saja), payload rusak tidak menggagalkan join
	var req dto.JoinLiveSessionRequest
	_ = c.BodyParser(&req)

	att, err := ctrl.Service.RecordJoin(userID, sessionID, req.DeviceInfoJSON())
	if err != nil {
		return helper.FromDomainError(c, err)
	}

	return helper.Success(c, "Berhasil join sesi", dto.ToLiveSessionAttendanceResponse(att))
}

/* ===================== LEAVE ===================== */
// POST /api/u/live-sessions/:id/leave
func (ctrl *AttendanceController) Leave(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	att, err := ctrl.Service.RecordLeave(userID, sessionID)
	if err != nil {
		return helper.FromDomainError(c, err)
	}

	return helper.Success(c, "Berhasil keluar dari sesi", dto.ToLiveSessionAttendanceResponse(att))
}

/* ===================== MY DETAIL ===================== */
// GET /api/u/live-sessions/:id/attendance/me
func (ctrl *AttendanceController) MyAttendance(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	var att model.LiveSessionAttendanceModel
	if err := ctrl.DB.
		Where("live_session_attendance_session_id = ? AND live_session_attendance_user_id = ?",
			sessionID, userID).
		First(&att).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Belum ada catatan kehadiran di sesi ini")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kehadiran")
	}

	return helper.Success(c, "Catatan kehadiran ditemukan", dto.ToLiveSessionAttendanceResponse(&att))
}

/* ===================== MY HISTORY ===================== */
// GET /api/u/attendances/me?page=&per_page=
func (ctrl *AttendanceController) MyHistory(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	q := ctrl.DB.Model(&model.LiveSessionAttendanceModel{}).
		Where("live_session_attendance_user_id = ?", userID)
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung riwayat")
	}

	var items []model.LiveSessionAttendanceModel
	if err := q.
		Order("live_session_attendance_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil riwayat kehadiran")
	}

	return helper.SuccessWithPagination(c, "Riwayat kehadiran",
		dto.ToLiveSessionAttendanceResponses(items),
		helper.BuildPagination(total, p, len(items)))
}
