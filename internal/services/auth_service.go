package services

import (
	"errors"
	"strings"

	"github.com/rntpans0531/healthcheckapp/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Auth failures map onto a fixed classification so handlers never leak raw
// provider errors to the user.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailInUse         = errors.New("email already in use")
	ErrWeakPassword       = errors.New("weak password")
)

const minPasswordLength = 6

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	UpdateDisplayName(userID uint, displayName string) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates a user with a bcrypt password hash. The email is stored
// as given; uniqueness is checked against its normalized form.
func (service *AuthService) Register(email string, password string, displayName string) (models.User, error) {
	if len(password) < minPasswordLength {
		return models.User{}, ErrWeakPassword
	}

	normalized := NormalizeEmail(email)
	exists, err := service.users.ExistsByNormalizedEmail(normalized)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrEmailInUse
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:        normalized,
		PasswordHash: string(passwordHash),
		DisplayName:  strings.TrimSpace(displayName),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, ErrEmailInUse
	}
	return user, nil
}

// Authenticate verifies credentials and returns the matching user. Unknown
// email and wrong password both map to ErrInvalidCredentials.
func (service *AuthService) Authenticate(email string, password string) (models.User, error) {
	user, err := service.users.FindByNormalizedEmail(NormalizeEmail(email))
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

// UpdateDisplayName stores the trimmed display name and returns the updated
// user.
func (service *AuthService) UpdateDisplayName(userID uint, displayName string) (models.User, error) {
	if err := service.users.UpdateDisplayName(userID, strings.TrimSpace(displayName)); err != nil {
		return models.User{}, err
	}
	return service.users.FindByID(userID)
}

func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
