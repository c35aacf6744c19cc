package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"kelasku_backend/internals/constants"
)

// ✅ Success Response tanpa custom code (default 200)
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

// ✅ Success Response dengan custom code (contoh 201 untuk created)
func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// ✅ Error Response sederhana
func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

// ✅ Error Response advance (opsional), bisa kirim multiple field error
func ErrorWithDetails(c *fiber.Ctx, code int, message string, errs interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"errors":  errs,
	})
}

// ✅ Khusus error validasi (validator.v10)
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return Error(c, fiber.StatusBadRequest, "Invalid input")
	}

	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	return ErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", errorsMap)
}

// ✅ Terjemahkan error taksonomi live-class ke HTTP. Reason entitlement tidak
// boleh hilang jadi "error" generik — pesan sentinel ikut dikirim apa adanya.
func FromDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, constants.ErrNotFound):
		return Error(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, constants.ErrNotEntitled):
		return Error(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, constants.ErrSessionFull):
		return Error(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, constants.ErrAlreadyEntitled):
		// bukan hard error — FE tinggal redirect ke sesi
		return SuccessWithCode(c, fiber.StatusOK, err.Error(), fiber.Map{
			"already_entitled": true,
		})
	case errors.Is(err, constants.ErrInvalidState):
		return Error(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, constants.ErrTransientStorage):
		return Error(c, fiber.StatusServiceUnavailable, err.Error())
	default:
		return Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan internal")
	}
}
