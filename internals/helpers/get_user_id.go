package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserIDFromToken mengambil user_id yang sudah ditaruh auth middleware di
// Locals. Identitas dipercaya apa adanya — authn/authz terjadi di upstream.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak ditemukan di token")
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak valid")
	}
	return id, nil
}

// GetUserIDOptional: untuk endpoint publik yang tetap ingin tahu siapa
// pemanggilnya kalau ada token. Anonymous → uuid.Nil tanpa error.
func GetUserIDOptional(c *fiber.Ctx) uuid.UUID {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// GetRoleFromToken membaca role dari Locals (diisi auth middleware).
func GetRoleFromToken(c *fiber.Ctx) string {
	role, _ := c.Locals("role").(string)
	return role
}
