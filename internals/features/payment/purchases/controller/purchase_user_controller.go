package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/payment/purchases/dto"
	"kelasku_backend/internals/features/payment/purchases/model"
	"kelasku_backend/internals/features/payment/purchases/service"
	helper "kelasku_backend/internals/helpers"
)

type PurchaseController struct {
	DB       *gorm.DB
	Service  *service.PurchaseService
	Validate *validator.Validate
}

func NewPurchaseController(db *gorm.DB) *PurchaseController {
	return &PurchaseController{
		DB:       db,
		Service:  service.NewPurchaseService(db),
		Validate: validator.New(),
	}
}

/* ===================== CHECKOUT SESI ===================== */
// POST /api/u/purchases/sessions
func (ctrl *PurchaseController) CheckoutSession(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CheckoutSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := ctrl.Service.CheckoutSession(userID, req.SessionID)
	if err != nil {
		return helper.FromDomainError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated,
		"Pembelian dibuat. Silakan lanjutkan pembayaran.", result)
}

/* ===================== CHECKOUT PAKET ===================== */
// POST /api/u/purchases/schedules
func (ctrl *PurchaseController) CheckoutSchedule(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CheckoutScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := ctrl.Service.CheckoutSchedule(userID, req.ScheduleID)
	if err != nil {
		return helper.FromDomainError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated,
		"Pendaftaran paket dibuat. Silakan lanjutkan pembayaran.", result)
}

/* ===================== RIWAYAT ===================== */
// GET /api/u/purchases/sessions/me
func (ctrl *PurchaseController) MySessionPurchases(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.SessionPurchaseModel{}).
		Where("session_purchase_user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung pembelian")
	}

	var items []model.SessionPurchaseModel
	if err := q.
		Order("session_purchase_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil riwayat pembelian")
	}

	return helper.SuccessWithPagination(c, "Riwayat pembelian sesi",
		dto.ToSessionPurchaseResponses(items),
		helper.BuildPagination(total, p, len(items)))
}

// GET /api/u/purchases/schedules/me
func (ctrl *PurchaseController) MyScheduleEnrollments(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ScheduleEnrollmentModel{}).
		Where("schedule_enrollment_user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung enrollment")
	}

	var items []model.ScheduleEnrollmentModel
	if err := q.
		Order("schedule_enrollment_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil riwayat enrollment")
	}

	return helper.SuccessWithPagination(c, "Riwayat pendaftaran paket",
		dto.ToScheduleEnrollmentResponses(items),
		helper.BuildPagination(total, p, len(items)))
}
