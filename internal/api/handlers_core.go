package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rntpans0531/healthcheckapp/internal/models"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// GetRegions serves the static body-region catalog the picker is built from.
func (handler *Handler) GetRegions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"regions": models.AllBodyRegions()})
}
