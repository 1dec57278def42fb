package helper

import "github.com/gofiber/fiber/v2"

func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func SuccessList(c *fiber.Ctx, data interface{}, total int64, page, limit int) error {
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   data,
		"meta": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}

// ErrorFields untuk error validasi per field, dikembalikan ke form.
func ErrorFields(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"status":  "error",
		"message": "Validasi gagal",
		"errors":  fields,
	})
}
