package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rntpans0531/healthcheckapp/internal/services"
)

// StartSurvey freezes the current selection into a survey sequence. The
// over-24-hour activity check gates this entry point only; the zero-pain
// quick finish deliberately bypasses it, matching the form wizard's
// uneven validation coverage.
func (handler *Handler) StartSurvey(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	snapshot := handler.sessions.Snapshot(user.ID)
	if snapshot.Times.Total() > maxDailyHours {
		return apiError(c, fiber.StatusUnprocessableEntity, "daily activity time exceeds 24 hours")
	}

	started := handler.sessions.StartSurvey(user.ID)
	return c.JSON(handler.sessionPayload(started))
}

func (handler *Handler) CurrentSurveyStep(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	progress, defaults, err := handler.sessions.CurrentStep(user.ID)
	if errors.Is(err, services.ErrNoSurveyInProgress) {
		return apiError(c, fiber.StatusConflict, "no survey in progress")
	}
	return c.JSON(fiber.Map{
		"progress": surveyProgressPayload(progress),
		"defaults": defaults,
	})
}

// SubmitSurveyStep records the current region's answers. Completing the last
// step finalizes the report immediately: save first, then best-effort
// alerts.
func (handler *Handler) SubmitSurveyStep(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	answers := services.SurveyAnswers{}
	if err := c.BodyParser(&answers); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	done, err := handler.sessions.SubmitAnswers(user.ID, answers)
	switch {
	case errors.Is(err, services.ErrPainLevelOutOfRange):
		return apiError(c, fiber.StatusBadRequest, "pain level must be between 1 and 10")
	case errors.Is(err, services.ErrNoSurveyInProgress):
		return apiError(c, fiber.StatusConflict, "no survey in progress")
	case errors.Is(err, services.ErrSurveyComplete):
		return apiError(c, fiber.StatusConflict, "survey already complete")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to record answers")
	}

	if !done {
		return c.JSON(handler.sessionPayload(handler.sessions.Snapshot(user.ID)))
	}
	return handler.finalizeSurvey(c, user.ID)
}

// FinishSurvey saves a completed sequence. It covers the zero-pain quick
// finish (empty selection) and retrying after a failed save; a sequence
// mid-walk is rejected.
func (handler *Handler) FinishSurvey(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	snapshot := handler.sessions.Snapshot(user.ID)
	if snapshot.Survey == nil {
		if len(snapshot.Selection) > 0 {
			return apiError(c, fiber.StatusConflict, "survey not started")
		}
		handler.sessions.StartSurvey(user.ID)
	}
	return handler.finalizeSurvey(c, user.ID)
}

// finalizeSurvey is the single save path. A persistence failure surfaces to
// the caller and leaves the session untouched for retry; alert and history
// failures after a successful save are logged inside the alert service and
// never reach the response status.
func (handler *Handler) finalizeSurvey(c *fiber.Ctx, userID uint) error {
	records, err := handler.sessions.CompletedRecords(userID)
	switch {
	case errors.Is(err, services.ErrNoSurveyInProgress):
		return apiError(c, fiber.StatusConflict, "no survey in progress")
	case errors.Is(err, services.ErrSurveyNotComplete):
		return apiError(c, fiber.StatusConflict, "survey not complete")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to collect answers")
	}

	snapshot := handler.sessions.Snapshot(userID)
	report, err := handler.reportService.Finalize(userID, snapshot.Date, snapshot.Times, snapshot.Exercise, records, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save report")
	}

	alerts := handler.alertService.ProcessSubmission(c.UserContext(), userID, report.Date, report.PainRecords)
	handler.sessions.MarkSaved(userID, &report)

	return c.JSON(fiber.Map{
		"status": "saved",
		"report": reportPayload(report),
		"alerts": alerts,
	})
}
