package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/payment/purchases/service"
)

// Webhook Midtrans. Endpoint publik (di-skip auth middleware) — identitas
// datang dari signature/server key gateway, bukan JWT user.
type PaymentWebhookController struct {
	DB *gorm.DB
}

func NewPaymentWebhookController(db *gorm.DB) *PaymentWebhookController {
	return &PaymentWebhookController{DB: db}
}

// POST /api/payments/notification
func (ctrl *PaymentWebhookController) HandleMidtransNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid webhook",
		})
	}

	log.Println("Received webhook:", body)

	if err := service.HandlePaymentNotification(ctrl.DB, body); err != nil {
		// balas 500 supaya Midtrans retry
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "OK"})
}
