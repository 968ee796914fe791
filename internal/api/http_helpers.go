package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rntpans0531/healthcheckapp/internal/models"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// reportPayload renders a report with its date in the ISO yyyy-MM-dd wire
// format instead of a full timestamp.
func reportPayload(report models.Report) fiber.Map {
	return fiber.Map{
		"id":          report.ID,
		"userId":      report.UserID,
		"date":        report.DateString(),
		"times":       report.Times,
		"exercise":    report.Exercise,
		"painRecords": report.PainRecords,
		"createdAt":   report.CreatedAt,
		"updatedAt":   report.UpdatedAt,
	}
}

func reportPayloads(reports []models.Report) []fiber.Map {
	payloads := make([]fiber.Map, 0, len(reports))
	for _, report := range reports {
		payloads = append(payloads, reportPayload(report))
	}
	return payloads
}
