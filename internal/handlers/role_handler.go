package handlers

import (
	"net/http"

	"github.com/tripnest/hotel-services-backend/internal/models"
	"github.com/tripnest/hotel-services-backend/internal/services"
	"github.com/tripnest/hotel-services-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type RoleHandler struct {
	roleService *services.RoleService
	perm        *services.PermissionService
}

func NewRoleHandler(roleService *services.RoleService, perm *services.PermissionService) *RoleHandler {
	return &RoleHandler{
		roleService: roleService,
		perm:        perm,
	}
}

// List godoc
// @Summary List roles
// @Description List all roles, admin only
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Router /api/v1/roles [get]
func (h *RoleHandler) List(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	roles, err := h.roleService.List()
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Roles retrieved", utils.WithData(roles))
}

// Get godoc
// @Summary Get a role
// @Description Get one role by id, admin only
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Router /api/v1/roles/{id} [get]
func (h *RoleHandler) Get(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	role, err := h.roleService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Role retrieved", utils.WithData(role))
}

// Create godoc
// @Summary Create a role
// @Description Create a role with a unique name, admin only
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateRoleRequest true "Role payload"
// @Success 201 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Router /api/v1/roles [post]
func (h *RoleHandler) Create(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	var req models.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request data",
			utils.WithErrors(map[string]interface{}{"body": err.Error()}))
		return
	}

	role, err := h.roleService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusCreated, "Role created", utils.WithData(role))
}

// Update godoc
// @Summary Update a role
// @Description Rename or redescribe a role, admin only. System roles keep their name.
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Param request body models.UpdateRoleRequest true "Update payload"
// @Success 200 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Router /api/v1/roles/{id} [put]
func (h *RoleHandler) Update(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request data",
			utils.WithErrors(map[string]interface{}{"body": err.Error()}))
		return
	}

	role, err := h.roleService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Role updated", utils.WithData(role))
}

// Delete godoc
// @Summary Delete a role
// @Description Delete a role, admin only. System roles are protected.
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Success 200 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Router /api/v1/roles/{id} [delete]
func (h *RoleHandler) Delete(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.roleService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Role deleted")
}

// Assign godoc
// @Summary Assign a role
// @Description Grant a role to a user, admin only, idempotent
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Param request body models.UserRoleRequest true "Target user"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Router /api/v1/roles/{id}/assign [post]
func (h *RoleHandler) Assign(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request data",
			utils.WithErrors(map[string]interface{}{"body": err.Error()}))
		return
	}

	if err := h.roleService.Assign(id, req.UserID); err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Role assigned")
}

// Remove godoc
// @Summary Remove a role
// @Description Revoke a role from a user, admin only
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Param request body models.UserRoleRequest true "Target user"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Router /api/v1/roles/{id}/remove [post]
func (h *RoleHandler) Remove(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request data",
			utils.WithErrors(map[string]interface{}{"body": err.Error()}))
		return
	}

	if err := h.roleService.Remove(id, req.UserID); err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Role removed")
}

func (h *RoleHandler) requireAdmin(c *gin.Context) bool {
	ok, err := h.perm.IsAdmin(currentUser(c))
	if err != nil {
		respondError(c, err)
		return false
	}
	if !ok {
		utils.Respond(c, http.StatusForbidden, "Admin role required")
		return false
	}
	return true
}
