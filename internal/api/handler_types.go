package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rntpans0531/healthcheckapp/internal/db"
	"github.com/rntpans0531/healthcheckapp/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db            *gorm.DB
	secretKey     []byte
	location      *time.Location
	cookieSecure  bool
	repositories  *db.Repositories
	authService   *services.AuthService
	reportService *services.ReportService
	statsService  *services.StatsService
	alertService  *services.AlertService
	sessions      *services.SessionStore
	loginLimiter  *attemptLimiter
}

const (
	authCookieName      = "healthcheck_auth"
	contextUserKey      = "current_user"
	defaultAuthTokenTTL = 7 * 24 * time.Hour

	loginAttemptLimit  = 10
	loginAttemptWindow = 15 * time.Minute
)

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}
