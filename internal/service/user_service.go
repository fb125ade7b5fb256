package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Fsisnio/procure-sub001/internal/model"
	"github.com/Fsisnio/procure-sub001/internal/password"
	"github.com/Fsisnio/procure-sub001/internal/websocket"
)

// ErrUserNotFound is returned when a user id resolves to nothing.
var ErrUserNotFound = errors.New("user not found")

// ErrUserQuotaReached is returned when a tenant is at its maxUsers limit.
var ErrUserQuotaReached = errors.New("tenant user quota reached")

// --- DTOs ---

type CreateUserRequest struct {
	TenantID  string `json:"tenantId" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	RoleName  string `json:"roleName" binding:"required"`
	// Password is optional: when empty the deterministic tenant default
	// is derived so onboarding can communicate it out of band.
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Email     string `json:"email" binding:"omitempty,email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Status    string `json:"status"`
}

// UserResponse omits the credential field from API output.
type UserResponse struct {
	ID        string           `json:"id"`
	TenantID  string           `json:"tenantId"`
	Email     string           `json:"email"`
	FirstName string           `json:"firstName"`
	LastName  string           `json:"lastName"`
	Role      model.Role       `json:"role"`
	Status    model.UserStatus `json:"status"`
	CreatedAt string           `json:"createdAt"`
	UpdatedAt string           `json:"updatedAt"`
}

// --- Interface ---

type UserService interface {
	ListUsers(ctx context.Context, tenantID string, page, limit int) ([]UserResponse, int, error)
	GetUser(ctx context.Context, id string) (*UserResponse, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (*UserResponse, error)
	UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*UserResponse, error)
	DeleteUser(ctx context.Context, id string) error
}

type userService struct {
	dir *Directory
	hub *websocket.Hub
}

// NewUserService returns a user CRUD collaborator over the store.
func NewUserService(dir *Directory, hub *websocket.Hub) UserService {
	return &userService{dir: dir, hub: hub}
}

// --- Implementation ---

func (s *userService) ListUsers(ctx context.Context, tenantID string, page, limit int) ([]UserResponse, int, error) {
	users, err := s.dir.Users(ctx)
	if err != nil {
		return nil, 0, err
	}

	filtered := users
	if tenantID != "" {
		filtered = make([]model.User, 0, len(users))
		for _, u := range users {
			if u.TenantID == tenantID {
				filtered = append(filtered, u)
			}
		}
	}

	total := len(filtered)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	out := make([]UserResponse, 0, end-start)
	for _, u := range filtered[start:end] {
		out = append(out, toUserResponse(u))
	}
	return out, total, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*UserResponse, error) {
	users, err := s.dir.Users(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			resp := toUserResponse(u)
			return &resp, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	tenants, err := s.dir.Tenants(ctx)
	if err != nil {
		return nil, err
	}

	var tenant *model.Tenant
	if req.TenantID != model.TenantSystem {
		for i := range tenants {
			if tenants[i].ID == req.TenantID {
				tenant = &tenants[i]
				break
			}
		}
		if tenant == nil {
			return nil, ErrTenantNotFound
		}
	}

	users, err := s.dir.Users(ctx)
	if err != nil {
		return nil, err
	}

	// Email unique within tenant scope; maxUsers enforced here, not in the seeder.
	tenantCount := 0
	for _, u := range users {
		if u.TenantID != req.TenantID {
			continue
		}
		tenantCount++
		if strings.EqualFold(u.Email, req.Email) {
			return nil, fmt.Errorf("email %q already exists in tenant", req.Email)
		}
	}
	if tenant != nil && tenantCount >= tenant.MaxUsers {
		return nil, ErrUserQuotaReached
	}

	roles, err := s.dir.Roles(ctx)
	if err != nil {
		return nil, err
	}
	var role *model.Role
	for i := range roles {
		if roles[i].Name == req.RoleName {
			role = &roles[i]
			break
		}
	}
	if role == nil {
		return nil, fmt.Errorf("role %q not found", req.RoleName)
	}

	pw := req.Password
	if pw == "" {
		companyName := ""
		if tenant != nil {
			companyName = tenant.CompanyName
		}
		pw = password.DeriveUserDefaultPassword(req.FirstName, companyName)
	} else if !password.ValidateStrength(pw) {
		return nil, password.ErrWeakPassword
	}

	now := time.Now().UTC()
	user := model.User{
		ID:        model.NewID("user"),
		TenantID:  req.TenantID,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  pw,
		Role:      *role, // snapshot: later role edits do not propagate
		Status:    model.UserActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	users = append(users, user)
	if err := s.dir.SaveUsers(ctx, users); err != nil {
		return nil, err
	}

	s.hub.Publish("user.created", user.TenantID, user.ID)
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*UserResponse, error) {
	users, err := s.dir.Users(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range users {
		if users[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrUserNotFound
	}

	u := &users[idx]
	if req.Email != "" && !strings.EqualFold(req.Email, u.Email) {
		for _, other := range users {
			if other.TenantID == u.TenantID && strings.EqualFold(other.Email, req.Email) {
				return nil, fmt.Errorf("email %q already exists in tenant", req.Email)
			}
		}
		u.Email = req.Email
	}
	if req.FirstName != "" {
		u.FirstName = req.FirstName
	}
	if req.LastName != "" {
		u.LastName = req.LastName
	}
	if req.Status != "" {
		status := model.UserStatus(req.Status)
		if status != model.UserActive && status != model.UserSuspended {
			return nil, fmt.Errorf("invalid user status %q", req.Status)
		}
		u.Status = status
	}
	u.UpdatedAt = time.Now().UTC()

	if err := s.dir.SaveUsers(ctx, users); err != nil {
		return nil, err
	}

	s.hub.Publish("user.updated", u.TenantID, u.ID)
	resp := toUserResponse(*u)
	return &resp, nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	users, err := s.dir.Users(ctx)
	if err != nil {
		return err
	}

	for i := range users {
		if users[i].ID != id {
			continue
		}
		tenantID := users[i].TenantID
		users = append(users[:i], users[i+1:]...)
		if err := s.dir.SaveUsers(ctx, users); err != nil {
			return err
		}
		s.hub.Publish("user.deleted", tenantID, id)
		return nil
	}
	return ErrUserNotFound
}

// --- Helpers ---

func toUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		TenantID:  u.TenantID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}
