package admin

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"sanocare/config"
	adminRepo "sanocare/database/repository/admin"
	"sanocare/models"
	"sanocare/utils"

	"golang.org/x/crypto/bcrypt"
)

// Errors surfaced to the operations sign-in and user-management surface.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotMasterAdmin     = errors.New("only the master admin can create users")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrEmailTaken         = errors.New("an admin with this email already exists")
)

const tokenTTL = 12 * time.Hour

// AuthService authenticates operations staff and manages dashboard users.
type AuthService interface {
	// SignIn verifies credentials and issues a session token.
	SignIn(email, password string) (token string, err error)
	// CreateAdmin registers a new dashboard user. Only the configured
	// master admin identity may call it.
	CreateAdmin(callerEmail, email, password string) (*models.OpsAdmin, error)
}

// DefaultAuthService implements AuthService.
type DefaultAuthService struct {
	Repo adminRepo.AdminRepository
}

// SignIn verifies the password hash and issues a JWT.
func (s *DefaultAuthService) SignIn(email, password string) (string, error) {
	account, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, adminRepo.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("sign-in lookup failed: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateToken(account.ID, account.Email, tokenTTL)
}

// CreateAdmin registers a dashboard user, gated to the master admin email.
func (s *DefaultAuthService) CreateAdmin(callerEmail, email, password string) (*models.OpsAdmin, error) {
	if !IsMasterAdmin(callerEmail) {
		return nil, ErrNotMasterAdmin
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	if len(password) < 6 {
		return nil, ErrWeakPassword
	}
	if _, err := s.Repo.GetByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, adminRepo.ErrNotFound) {
		return nil, fmt.Errorf("admin lookup failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.OpsAdmin{
		Email:        email,
		PasswordHash: string(hash),
		CreatedBy:    strings.ToLower(callerEmail),
	}
	if _, err := s.Repo.Create(account); err != nil {
		return nil, err
	}
	return account, nil
}

// IsMasterAdmin reports whether the email is the configured master identity.
func IsMasterAdmin(email string) bool {
	master := config.AppConfig.MasterAdminEmail
	return master != "" && strings.EqualFold(strings.TrimSpace(email), master)
}
