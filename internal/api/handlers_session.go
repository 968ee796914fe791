package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rntpans0531/healthcheckapp/internal/models"
	"github.com/rntpans0531/healthcheckapp/internal/services"
)

func (handler *Handler) GetSession(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(handler.sessionPayload(handler.sessions.Snapshot(user.ID)))
}

// LoadSessionDate points the wizard at a calendar day. An existing report
// for that day is loaded into the session for editing; otherwise the draft
// resets for a new entry.
func (handler *Handler) LoadSessionDate(c *fiber.Ctx) error {
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

	var loaded *models.Report
	if found {
		loaded = &report
	}
	return c.JSON(handler.sessionPayload(handler.sessions.LoadReport(user.ID, day, loaded)))
}

func (handler *Handler) UpdateDraft(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := draftInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if message := input.validate(); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	snapshot := handler.sessions.UpdateDraft(user.ID, input.Times, input.Exercise)
	return c.JSON(handler.sessionPayload(snapshot))
}

func (handler *Handler) ToggleRegion(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := toggleInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entries, err := handler.sessions.Toggle(user.ID, input.Region, input.Side)
	switch {
	case errors.Is(err, services.ErrUnknownRegion):
		return apiError(c, fiber.StatusBadRequest, "unknown body region")
	case errors.Is(err, services.ErrInvalidSide):
		return apiError(c, fiber.StatusBadRequest, "invalid side for region")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to update selection")
	}
	return c.JSON(fiber.Map{"selection": entries})
}

func (handler *Handler) RemoveRegion(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	region := models.BodyRegion(strings.TrimSpace(c.Params("region")))
	if !models.IsValidRegion(region) {
		return apiError(c, fiber.StatusBadRequest, "unknown body region")
	}
	return c.JSON(fiber.Map{"selection": handler.sessions.RemoveRegion(user.ID, region)})
}

func (handler *Handler) ResetSelection(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	handler.sessions.ResetSelection(user.ID)
	return c.JSON(fiber.Map{"selection": []models.SelectedRegion{}})
}

func (handler *Handler) sessionPayload(snapshot services.SessionSnapshot) fiber.Map {
	totalHours := snapshot.Times.Total()
	payload := fiber.Map{
		"date":        services.FormatISODate(snapshot.Date),
		"times":       snapshot.Times,
		"exercise":    snapshot.Exercise,
		"totalHours":  totalHours,
		"over24":      totalHours > maxDailyHours,
		"selection":   snapshot.Selection,
		"painRecords": snapshot.PainRecords,
	}
	if snapshot.Survey != nil {
		payload["survey"] = surveyProgressPayload(*snapshot.Survey)
	}
	return payload
}

func surveyProgressPayload(progress services.SurveyProgress) fiber.Map {
	payload := fiber.Map{
		"currentIndex": progress.CurrentIndex,
		"stepCount":    progress.StepCount,
		"complete":     progress.Complete,
	}
	if progress.Current != nil {
		payload["current"] = *progress.Current
	}
	return payload
}
