package handlers

import (
	"net/http"

	"github.com/tripnest/hotel-services-backend/internal/models"
	"github.com/tripnest/hotel-services-backend/internal/services"
	"github.com/tripnest/hotel-services-backend/internal/services/auth"
	"github.com/tripnest/hotel-services-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type SignUpCodeHandler struct {
	authService *auth.AuthService
	perm        *services.PermissionService
}

func NewSignUpCodeHandler(authService *auth.AuthService, perm *services.PermissionService) *SignUpCodeHandler {
	return &SignUpCodeHandler{
		authService: authService,
		perm:        perm,
	}
}

// List godoc
// @Summary List sign-up codes
// @Description List all outstanding invitation codes, admin only
// @Tags sign-up-codes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Router /api/v1/sign-up-codes [get]
func (h *SignUpCodeHandler) List(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	codes, err := h.authService.ListSignUpCodes()
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Sign-up codes retrieved", utils.WithData(codes))
}

// Generate godoc
// @Summary Generate a sign-up code
// @Description Mint an operator invitation code valid for 24 hours, admin only
// @Tags sign-up-codes
// @Produce json
// @Security BearerAuth
// @Success 201 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Router /api/v1/sign-up-codes/generate [post]
func (h *SignUpCodeHandler) Generate(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	code, err := h.authService.CreateSignUpCode(currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusCreated, "Sign-up code generated", utils.WithData(code))
}

// Validate godoc
// @Summary Validate a sign-up code
// @Description Check a code without consuming it
// @Tags sign-up-codes
// @Accept json
// @Produce json
// @Param request body models.ValidateSignUpCodeRequest true "Code to validate"
// @Success 200 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Router /api/v1/sign-up-codes/validate [post]
func (h *SignUpCodeHandler) Validate(c *gin.Context) {
	var req models.ValidateSignUpCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request data",
			utils.WithErrors(map[string]interface{}{"body": err.Error()}))
		return
	}

	code, err := h.authService.ValidateSignUpCode(req.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Sign-up code is valid", utils.WithData(code))
}

// Delete godoc
// @Summary Delete a sign-up code
// @Description Revoke an invitation code, admin only
// @Tags sign-up-codes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Code ID"
// @Success 200 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Router /api/v1/sign-up-codes/{id} [delete]
func (h *SignUpCodeHandler) Delete(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.authService.DeleteSignUpCode(id); err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Sign-up code deleted")
}

func (h *SignUpCodeHandler) requireAdmin(c *gin.Context) bool {
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
