package api

import (
	"time"

	"github.com/rntpans0531/healthcheckapp/internal/db"
	"github.com/rntpans0531/healthcheckapp/internal/services"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, notifier services.Notifier, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
		loginLimiter: newAttemptLimiter(),
	}

	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.reportService = services.NewReportService(handler.repositories.Reports)
	handler.statsService = services.NewStatsService(handler.repositories.Reports)
	handler.alertService = services.NewAlertService(handler.reportService, notifier, location)
	handler.sessions = services.NewSessionStore(location)
	return handler
}
