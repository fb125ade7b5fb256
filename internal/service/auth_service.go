package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Fsisnio/procure-sub001/internal/model"
	"github.com/Fsisnio/procure-sub001/internal/password"
	"github.com/Fsisnio/procure-sub001/internal/websocket"
)

// ErrInvalidCredentials hides whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// --- DTOs ---

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

type GeneratedPasswordResponse struct {
	Password string `json:"password"`
}

// --- Interface ---

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
	// ResetPassword reverts a user to the deterministic tenant default and
	// returns it so an admin can hand it over out of band.
	ResetPassword(ctx context.Context, userID string) (string, error)
	SuggestPassword(length int) (string, error)
}

type authService struct {
	dir       *Directory
	hub       *websocket.Hub
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService returns the credential collaborator. tokenTTL <= 0
// falls back to 24h.
func NewAuthService(dir *Directory, hub *websocket.Hub, jwtSecret []byte, tokenTTL time.Duration) AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &authService{dir: dir, hub: hub, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// --- Implementation ---

func (s *authService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	users, err := s.dir.Users(ctx)
	if err != nil {
		return nil, err
	}

	var user *model.User
	for i := range users {
		if strings.EqualFold(users[i].Email, req.Email) {
			user = &users[i]
			break
		}
	}
	if user == nil || user.Status != model.UserActive {
		return nil, ErrInvalidCredentials
	}
	if !verifyPassword(user.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":    user.ID,
		"role":   user.Role.Name,
		"tenant": user.TenantID,
		"exp":    time.Now().Add(s.tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &TokenResponse{Token: signed, User: toUserResponse(*user)}, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	if !password.ValidateStrength(req.NewPassword) {
		return password.ErrWeakPassword
	}

	users, err := s.dir.Users(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i := range users {
		if users[i].ID == userID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrUserNotFound
	}
	if !verifyPassword(users[idx].Password, req.CurrentPassword) {
		return ErrInvalidCredentials
	}

	// New credentials are stored hashed; seeded demo passwords stay
	// plaintext so the fixture shape is stable.
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("failed to hash password")
	}
	users[idx].Password = string(hashed)
	users[idx].UpdatedAt = time.Now().UTC()

	if err := s.dir.SaveUsers(ctx, users); err != nil {
		return err
	}

	s.hub.Publish("user.password_changed", users[idx].TenantID, userID)
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, userID string) (string, error) {
	users, err := s.dir.Users(ctx)
	if err != nil {
		return "", err
	}
	tenants, err := s.dir.Tenants(ctx)
	if err != nil {
		return "", err
	}

	idx := -1
	for i := range users {
		if users[i].ID == userID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", ErrUserNotFound
	}

	companyName := ""
	for _, t := range tenants {
		if t.ID == users[idx].TenantID {
			companyName = t.CompanyName
			break
		}
	}

	pw := password.DeriveUserDefaultPassword(users[idx].FirstName, companyName)
	users[idx].Password = pw
	users[idx].UpdatedAt = time.Now().UTC()

	if err := s.dir.SaveUsers(ctx, users); err != nil {
		return "", err
	}

	s.hub.Publish("user.password_reset", users[idx].TenantID, userID)
	return pw, nil
}

func (s *authService) SuggestPassword(length int) (string, error) {
	if length <= 0 {
		length = password.DefaultLength
	}
	return password.Generate(length)
}

// verifyPassword accepts both storage formats: bcrypt hashes written by
// the change-password flow, and the plaintext demo fixtures.
func verifyPassword(stored, candidate string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
