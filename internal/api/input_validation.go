package api

import (
	"net/mail"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rntpans0531/healthcheckapp/internal/models"
	"github.com/rntpans0531/healthcheckapp/internal/services"
)

const maxDailyHours = 24

type credentialsInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return credentialsInput{}, err
	}
	input.Email = services.NormalizeEmail(input.Email)
	return input, nil
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}

type profileInput struct {
	DisplayName string `json:"displayName"`
}

type draftInput struct {
	Times    models.ActivityTimes   `json:"times"`
	Exercise models.ExerciseMinutes `json:"exercise"`
}

// validate rejects negative values; the over-24-hour check is advisory and
// handled separately.
func (input draftInput) validate() string {
	times := input.Times
	if times.Sitting < 0 || times.Standing < 0 || times.Sleeping < 0 || times.Driving < 0 {
		return "activity hours must not be negative"
	}
	exercise := input.Exercise
	if exercise.High < 0 || exercise.Mid < 0 || exercise.Low < 0 {
		return "exercise minutes must not be negative"
	}
	return ""
}

type toggleInput struct {
	Region models.BodyRegion `json:"region"`
	Side   models.Side       `json:"side"`
}

// parseDateParam reads a yyyy-MM-dd route parameter in the handler's
// location. Malformed dates are a validation error, rejected before any
// state changes.
func (handler *Handler) parseDateParam(c *fiber.Ctx, name string) (time.Time, bool) {
	raw := strings.TrimSpace(c.Params(name))
	day, err := services.ParseISODate(raw, handler.location)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}
