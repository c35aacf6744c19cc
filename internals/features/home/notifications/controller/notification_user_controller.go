package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/home/notifications/model"
	helper "kelasku_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

/* ===================== LIST ===================== */
// GET /api/u/notifications/me?unread=true&page=&per_page=
func (ctrl *NotificationController) MyNotifications(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ?", userID)
	if c.Query("unread") == "true" {
		q = q.Where("notification_is_read = FALSE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung notifikasi")
	}

	var items []model.NotificationModel
	if err := q.
		Order("notification_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	return helper.SuccessWithPagination(c, "Daftar notifikasi", items,
		helper.BuildPagination(total, p, len(items)))
}

/* ===================== MARK READ ===================== */
// POST /api/u/notifications/:id/read
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID notifikasi tidak valid")
	}

	res := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_user_id = ?", notifID, userID).
		Update("notification_is_read", true)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menandai notifikasi")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Notifikasi tidak ditemukan")
	}

	return helper.Success(c, "Notifikasi ditandai sudah dibaca", nil)
}
