package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Fsisnio/procure-sub001/internal/middleware"
	"github.com/Fsisnio/procure-sub001/internal/service"
	"github.com/Fsisnio/procure-sub001/pkg/response"
)

type TenantHandler struct {
	tenantService service.TenantService
}

func NewTenantHandler(tenantService service.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup.
// Tenant management is reserved to roles holding tenant:* permissions,
// which by construction is System Admin only.
func (h *TenantHandler) RegisterRoutes(router *gin.RouterGroup) {
	tenants := router.Group("/api/tenants")
	{
		tenants.GET("", middleware.RequirePermission("tenant:read"), h.ListTenants)
		tenants.GET("/:id", middleware.RequirePermission("tenant:read"), h.GetTenant)
		tenants.POST("", middleware.RequirePermission("tenant:create"), h.CreateTenant)
		tenants.PUT("/:id", middleware.RequirePermission("tenant:update"), h.UpdateTenant)
		tenants.PUT("/:id/status", middleware.RequirePermission("tenant:manage"), h.UpdateTenantStatus)
	}

	// Plan catalog is readable by anyone who can read tenants
	router.GET("/api/plans", middleware.RequirePermission("tenant:read"), h.ListPlans)
}

// ListTenants returns all organizations
// @Summary      List tenants
// @Tags         tenants
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]model.Tenant}
// @Router       /api/tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
	tenants, err := h.tenantService.ListTenants(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, tenants))
}

// GetTenant returns one organization by id
// @Summary      Get tenant
// @Tags         tenants
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Tenant ID"
// @Success      200  {object}  response.Response{data=model.Tenant}
// @Failure      404  {object}  response.Response
// @Router       /api/tenants/{id} [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	tenant, err := h.tenantService.GetTenant(c.Request.Context(), c.Param("id"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrTenantNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, tenant))
}

// CreateTenant registers a new organization
// @Summary      Create tenant
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateTenantRequest  true  "Tenant payload"
// @Success      201      {object}  response.Response{data=model.Tenant}
// @Failure      400      {object}  response.Response
// @Router       /api/tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req service.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	tenant, err := h.tenantService.CreateTenant(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, tenant))
}

// UpdateTenant edits an organization's profile fields
// @Summary      Update tenant
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                       true  "Tenant ID"
// @Param        payload  body      service.UpdateTenantRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=model.Tenant}
// @Failure      404      {object}  response.Response
// @Router       /api/tenants/{id} [put]
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	var req service.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	tenant, err := h.tenantService.UpdateTenant(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrTenantNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, tenant))
}

// UpdateTenantStatus moves an organization through its lifecycle
// @Summary      Update tenant status
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                             true  "Tenant ID"
// @Param        payload  body      service.UpdateTenantStatusRequest  true  "New status"
// @Success      200      {object}  response.Response{data=model.Tenant}
// @Failure      404      {object}  response.Response
// @Router       /api/tenants/{id}/status [put]
func (h *TenantHandler) UpdateTenantStatus(c *gin.Context) {
	var req service.UpdateTenantStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	tenant, err := h.tenantService.UpdateTenantStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrTenantNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, tenant))
}

// ListPlans returns the subscription tiers
// @Summary      List plans
// @Tags         tenants
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]model.Plan}
// @Router       /api/plans [get]
func (h *TenantHandler) ListPlans(c *gin.Context) {
	plans, err := h.tenantService.ListPlans(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, plans))
}
