package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rntpans0531/healthcheckapp/internal/services"
)

func (handler *Handler) GetDashboardOverview(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	period := strings.TrimSpace(c.Query("period", services.PeriodWeekly))
	if !services.IsValidPeriod(period) {
		return apiError(c, fiber.StatusBadRequest, "invalid period")
	}

	overview, err := handler.statsService.BuildOverview(user.ID, period)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build overview")
	}
	return c.JSON(overview)
}
