package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/liveclass/sessions/dto"
	"kelasku_backend/internals/features/liveclass/sessions/model"
	helper "kelasku_backend/internals/helpers"
)

type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

/* ===================== LIST ===================== */
// GET /api/schedules?page=&per_page=
// Hanya paket yang bisa dibeli (published/active) yang tampil di katalog.
func (ctrl *ScheduleController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ScheduleModel{}).
		Where("schedule_status IN ?", []string{
			model.ScheduleStatusPublished,
			model.ScheduleStatusActive,
		})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung paket")
	}

	var items []model.ScheduleModel
	if err := q.
		Order("schedule_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar paket")
	}

	return helper.SuccessWithPagination(c, "Daftar paket",
		dto.ToScheduleResponses(items),
		helper.BuildPagination(total, p, len(items)))
}

/* ===================== DETAIL ===================== */
// GET /api/schedules/:id (beserta sesi-sesinya)
func (ctrl *ScheduleController) Detail(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID paket tidak valid")
	}

	var sched model.ScheduleModel
	if err := ctrl.DB.First(&sched, "schedule_id = ?", scheduleID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Paket tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil paket")
	}

	var sessions []model.LiveSessionModel
	if err := ctrl.DB.
		Where("live_session_schedule_id = ?", scheduleID).
		Order("live_session_start_time ASC").
		Find(&sessions).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil sesi paket")
	}

	return helper.Success(c, "Detail paket", dto.ScheduleDetailResponse{
		ScheduleResponse: dto.ToScheduleResponse(&sched),
		Sessions:         dto.ToLiveSessionResponses(sessions),
	})
}
