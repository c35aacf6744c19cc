package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/liveclass/recordings/dto"
	"kelasku_backend/internals/features/liveclass/recordings/service"
	helper "kelasku_backend/internals/helpers"
)

type RecordingController struct {
	DB      *gorm.DB
	Service *service.RecordingGateService
}

func NewRecordingController(db *gorm.DB) *RecordingController {
	return &RecordingController{
		DB:      db,
		Service: service.NewRecordingGateService(db),
	}
}

/* ===================== LIST ===================== */
// GET /api/u/live-sessions/:id/recordings
func (ctrl *RecordingController) ListBySession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	items, err := ctrl.Service.ListForSession(sessionID)
	if err != nil {
		return helper.FromDomainError(c, err)
	}

	return helper.Success(c, "Daftar rekaman sesi", dto.ToRecordingResponses(items))
}

/* ===================== WATCH ===================== */
// GET /api/u/recordings/:id/watch
func (ctrl *RecordingController) Watch(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	recordingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID rekaman tidak valid")
	}

	rec, decision, err := ctrl.Service.Resolve(userID, recordingID)
	if err != nil {
		return helper.FromDomainError(c, err)
	}

	// view dihitung hanya setelah lolos gate; gagal increment tidak
	// menggagalkan tontonan
	if err := ctrl.Service.RegisterView(recordingID); err != nil {
		log.Printf("[ERROR] Gagal menambah view_count rekaman %s: %v", recordingID, err)
	}

	return helper.Success(c, "Akses rekaman diberikan", dto.WatchRecordingResponse{
		Recording:    dto.ToRecordingResponse(rec),
		VideoURL:     rec.LiveSessionRecordingVideoURL,
		AccessReason: string(decision.Reason),
	})
}
