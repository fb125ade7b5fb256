package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Fsisnio/procure-sub001/internal/middleware"
	"github.com/Fsisnio/procure-sub001/internal/model"
	"github.com/Fsisnio/procure-sub001/internal/password"
	"github.com/Fsisnio/procure-sub001/internal/service"
	"github.com/Fsisnio/procure-sub001/pkg/response"
)

type AuthHandler struct {
	authService service.AuthService
	userService service.UserService
}

func NewAuthHandler(authService service.AuthService, userService service.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/api/auth")
	{
		auth.POST("/login", h.Login)
		auth.GET("/me", middleware.RequireRole(
			model.RoleSystemAdmin, model.RoleTenantAdmin, model.RoleStandardUser, model.RoleViewer), h.Me)
		auth.POST("/change-password", middleware.RequireRole(
			model.RoleSystemAdmin, model.RoleTenantAdmin, model.RoleStandardUser, model.RoleViewer), h.ChangePassword)
		auth.POST("/users/:id/reset-password", middleware.RequirePermission("user:update"), h.ResetPassword)
		auth.GET("/generate-password", middleware.RequirePermission("user:create"), h.GeneratePassword)
	}
}

// Login authenticates a user and returns a signed JWT
// @Summary      Login
// @Description  Authenticates by email and password, returns a JWT with role and tenant claims
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.LoginRequest  true  "Credentials"
// @Success      200      {object}  response.Response{data=service.TokenResponse}
// @Failure      401      {object}  response.Response
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, token))
}

// Me returns the authenticated user's profile
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=service.UserResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, _ := c.Get("userID")
	id, _ := userID.(string)

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, user))
}

// ChangePassword rotates the authenticated user's credential
// @Summary      Change password
// @Description  Verifies the current password and stores the new one if it meets the strength policy
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.ChangePasswordRequest  true  "Passwords"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /api/auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req service.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	userID, _ := c.Get("userID")
	id, _ := userID.(string)

	err := h.authService.ChangePassword(c.Request.Context(), id, req)
	switch {
	case errors.Is(err, password.ErrWeakPassword):
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, err.Error()))
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
	default:
		c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "password updated"}))
	}
}

// ResetPassword reverts a user to the deterministic tenant default
// @Summary      Reset a user's password
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=service.GeneratedPasswordResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/auth/users/{id}/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	pw, err := h.authService.ResetPassword(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, service.GeneratedPasswordResponse{Password: pw}))
}

// GeneratePassword returns a random policy-compliant password suggestion
// @Summary      Generate a password
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        length  query     int  false  "Desired length (default 12, minimum 4)"
// @Success      200     {object}  response.Response{data=service.GeneratedPasswordResponse}
// @Failure      400     {object}  response.Response
// @Router       /api/auth/generate-password [get]
func (h *AuthHandler) GeneratePassword(c *gin.Context) {
	length, _ := strconv.Atoi(c.DefaultQuery("length", "0"))

	pw, err := h.authService.SuggestPassword(length)
	if err != nil {
		var lengthErr *password.InvalidLengthError
		if errors.As(err, &lengthErr) {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, service.GeneratedPasswordResponse{Password: pw}))
}
