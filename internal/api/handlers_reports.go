package api

import "github.com/gofiber/fiber/v2"

// GetReportHistory returns the user's full report history, newest first by
// save time.
func (handler *Handler) GetReportHistory(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	reports, err := handler.reportService.FetchHistory(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load history")
	}
	return c.JSON(fiber.Map{"reports": reportPayloads(reports)})
}

func (handler *Handler) GetReportByDate(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	day, ok := handler.parseDateParam(c, "date")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	report, found, err := handler.reportService.FetchByDate(user.ID, day, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load report")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "report not found")
	}
	return c.JSON(fiber.Map{"report": reportPayload(report)})
}
