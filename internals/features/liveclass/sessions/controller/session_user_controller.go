package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	entitlement "kelasku_backend/internals/features/liveclass/entitlement/service"
	"kelasku_backend/internals/features/liveclass/sessions/dto"
	"kelasku_backend/internals/features/liveclass/sessions/model"
	helper "kelasku_backend/internals/helpers"
)

type LiveSessionController struct {
	DB          *gorm.DB
	Entitlement *entitlement.EntitlementService
}

func NewLiveSessionController(db *gorm.DB) *LiveSessionController {
	return &LiveSessionController{
		DB:          db,
		Entitlement: entitlement.NewEntitlementService(db),
	}
}

/* ===================== LIST ===================== */
// GET /api/live-sessions?course_id=&status=&page=&per_page=
func (ctrl *LiveSessionController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.LiveSessionModel{})

	if courseID := c.Query("course_id"); courseID != "" {
		id, err := uuid.Parse(courseID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "course_id tidak valid")
		}
		q = q.Where("live_session_course_id = ?", id)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("live_session_status = ?", status)
	} else {
		// default: sembunyikan yang dibatalkan
		q = q.Where("live_session_status <> ?", model.LiveSessionStatusCancelled)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung sesi")
	}

	var items []model.LiveSessionModel
	if err := q.
		Order("live_session_start_time ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar sesi")
	}

	return helper.SuccessWithPagination(c, "Daftar sesi live",
		dto.ToLiveSessionResponses(items),
		helper.BuildPagination(total, p, len(items)))
}

/* ===================== DETAIL ===================== */
// GET /api/live-sessions/:id
// Publik; kalau ada token, keputusan akses pemanggil ikut dikirim.
func (ctrl *LiveSessionController) Detail(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	var sess model.LiveSessionModel
	if err := ctrl.DB.First(&sess, "live_session_id = ?", sessionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil sesi")
	}

	userID := helper.GetUserIDOptional(c)
	decision, err := ctrl.Entitlement.ResolveForSession(userID, &sess)
	if err != nil {
		return helper.FromDomainError(c, err)
	}

	return helper.Success(c, "Detail sesi live", dto.LiveSessionDetailResponse{
		LiveSessionResponse: dto.ToLiveSessionResponse(&sess),
		Access:              decision,
	})
}

/* ===================== ACCESS CHECK ===================== */
// GET /api/u/live-sessions/:id/access
// Cek akses eksplisit tanpa join (dipakai FE sebelum menampilkan tombol).
func (ctrl *LiveSessionController) CheckAccess(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	decision, _, err := ctrl.Entitlement.Resolve(userID, sessionID)
	if err != nil {
		return helper.FromDomainError(c, err)
	}

	return helper.Success(c, "Keputusan akses sesi", decision)
}
