package handlers

import (
	"net/http"

	"github.com/tripnest/hotel-services-backend/internal/models"
	"github.com/tripnest/hotel-services-backend/internal/services"
	"github.com/tripnest/hotel-services-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type HotelBedsHandler struct {
	hotelBedsService *services.HotelBedsService
	perm             *services.PermissionService
}

func NewHotelBedsHandler(hotelBedsService *services.HotelBedsService, perm *services.PermissionService) *HotelBedsHandler {
	return &HotelBedsHandler{
		hotelBedsService: hotelBedsService,
		perm:             perm,
	}
}

// CheckStatus godoc
// @Summary Check provider status
// @Description Ping the HotelBeds API with the configured credentials, staff only
// @Tags hotel-beds
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Router /api/v1/hotel-beds/check-status [get]
func (h *HotelBedsHandler) CheckStatus(c *gin.Context) {
	if !h.requireStaff(c) {
		return
	}

	status, err := h.hotelBedsService.CheckStatus(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "HotelBeds API reachable", utils.WithData(status))
}

// Search godoc
// @Summary Search the provider catalog
// @Description Proxy a search against the HotelBeds content API, staff only
// @Tags hotel-beds
// @Produce json
// @Security BearerAuth
// @Param destinationCode query string false "Destination code"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Router /api/v1/hotel-beds/search [get]
func (h *HotelBedsHandler) Search(c *gin.Context) {
	if !h.requireStaff(c) {
		return
	}

	var params models.HotelBedsSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid query parameters",
			utils.WithErrors(map[string]interface{}{"query": err.Error()}))
		return
	}

	resp, err := h.hotelBedsService.SearchHotels(c.Request.Context(), &params)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Provider hotels retrieved", utils.WithData(resp))
}

// Sync godoc
// @Summary Sync the provider catalog
// @Description Pull one provider page and upsert it into the local catalog, staff only
// @Tags hotel-beds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param destinationCode query string false "Destination code"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Router /api/v1/hotel-beds/sync [post]
func (h *HotelBedsHandler) Sync(c *gin.Context) {
	if !h.requireStaff(c) {
		return
	}

	var params models.HotelBedsSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid query parameters",
			utils.WithErrors(map[string]interface{}{"query": err.Error()}))
		return
	}

	result, err := h.hotelBedsService.SyncHotels(c.Request.Context(), &params)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Sync completed", utils.WithData(result))
}

func (h *HotelBedsHandler) requireStaff(c *gin.Context) bool {
	ok, err := h.perm.CanManageHotels(currentUser(c))
	if err != nil {
		respondError(c, err)
		return false
	}
	if !ok {
		utils.Respond(c, http.StatusForbidden, "Staff role required")
		return false
	}
	return true
}
