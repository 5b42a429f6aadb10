package handlers

import (
	"net/http"

	"github.com/tripnest/hotel-services-backend/internal/models"
	"github.com/tripnest/hotel-services-backend/internal/services/auth"
	"github.com/tripnest/hotel-services-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *auth.AuthService
}

func NewAuthHandler(authService *auth.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create an account, optionally redeeming a sign-up code for the operator role
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration request"
// @Success 201 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request data",
			utils.WithErrors(map[string]interface{}{"body": err.Error()}))
		return
	}

	user, tokens, err := h.authService.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusCreated, "Account created",
		utils.WithData(user),
		utils.WithMetaData(map[string]interface{}{
			"accessToken":  tokens.AccessToken,
			"refreshToken": tokens.RefreshToken,
		}))
}

// Login godoc
// @Summary Login
// @Description Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} utils.Envelope
// @Failure 401 {object} utils.Envelope
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request data",
			utils.WithErrors(map[string]interface{}{"body": err.Error()}))
		return
	}

	user, tokens, err := h.authService.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Logged in",
		utils.WithData(user),
		utils.WithMetaData(map[string]interface{}{
			"accessToken":  tokens.AccessToken,
			"refreshToken": tokens.RefreshToken,
		}))
}

// Refresh godoc
// @Summary Refresh tokens
// @Description Exchange a refresh token for a new access/refresh pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RefreshTokenRequest true "Refresh token request"
// @Success 200 {object} utils.Envelope
// @Failure 401 {object} utils.Envelope
// @Router /api/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req models.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request data",
			utils.WithErrors(map[string]interface{}{"body": err.Error()}))
		return
	}

	tokens, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Tokens refreshed",
		utils.WithMetaData(map[string]interface{}{
			"accessToken":  tokens.AccessToken,
			"refreshToken": tokens.RefreshToken,
		}))
}

// Logout godoc
// @Summary Logout
// @Description Revoke every session of the current user
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Envelope
// @Failure 401 {object} utils.Envelope
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	user := currentUser(c)

	if err := h.authService.Revoke(user.ID); err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Logged out")
}
