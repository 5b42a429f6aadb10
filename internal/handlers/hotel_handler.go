package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tripnest/hotel-services-backend/internal/models"
	"github.com/tripnest/hotel-services-backend/internal/services"
	"github.com/tripnest/hotel-services-backend/internal/services/excel"
	"github.com/tripnest/hotel-services-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	hotelService *services.HotelService
	excelService *excel.Service
	perm         *services.PermissionService
}

func NewHotelHandler(hotelService *services.HotelService, excelService *excel.Service, perm *services.PermissionService) *HotelHandler {
	return &HotelHandler{
		hotelService: hotelService,
		excelService: excelService,
		perm:         perm,
	}
}

// List godoc
// @Summary List hotels
// @Description List the hotel catalog with pagination
// @Tags hotels
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} utils.Envelope
// @Router /api/v1/hotels [get]
func (h *HotelHandler) List(c *gin.Context) {
	page, limit := pageLimit(c)

	hotels, total, err := h.hotelService.List(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Hotels retrieved",
		utils.WithData(hotels),
		utils.WithPaginate(utils.NewPaginate(total, page, limit)))
}

// Search godoc
// @Summary Search hotels
// @Description Search hotels by name, city or address
// @Tags hotels
// @Produce json
// @Param q query string true "Search query"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} utils.Envelope
// @Router /api/v1/hotels/search [get]
func (h *HotelHandler) Search(c *gin.Context) {
	q := c.Query("q")
	page, limit := pageLimit(c)

	hotels, total, err := h.hotelService.Search(q, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Hotels retrieved",
		utils.WithData(hotels),
		utils.WithPaginate(utils.NewPaginate(total, page, limit)))
}

// Get godoc
// @Summary Get a hotel
// @Description Get one hotel by id
// @Tags hotels
// @Produce json
// @Param id path int true "Hotel ID"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Router /api/v1/hotels/{id} [get]
func (h *HotelHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	hotel, err := h.hotelService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Hotel retrieved", utils.WithData(hotel))
}

// Create godoc
// @Summary Create a hotel
// @Description Add a hotel to the catalog, staff only
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateHotelRequest true "Hotel payload"
// @Success 201 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Router /api/v1/hotels [post]
func (h *HotelHandler) Create(c *gin.Context) {
	if !h.requireManage(c) {
		return
	}

	var req models.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request data",
			utils.WithErrors(map[string]interface{}{"body": err.Error()}))
		return
	}

	hotel, err := h.hotelService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusCreated, "Hotel created", utils.WithData(hotel))
}

// Update godoc
// @Summary Update a hotel
// @Description Update a hotel, staff only. Provider-synced hotels accept only status and customData.
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hotel ID"
// @Param request body models.UpdateHotelRequest true "Update payload"
// @Success 200 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Router /api/v1/hotels/{id} [put]
func (h *HotelHandler) Update(c *gin.Context) {
	if !h.requireManage(c) {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request data",
			utils.WithErrors(map[string]interface{}{"body": err.Error()}))
		return
	}

	hotel, err := h.hotelService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Hotel updated", utils.WithData(hotel))
}

// Delete godoc
// @Summary Delete a hotel
// @Description Remove a hotel from the catalog, staff only
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hotel ID"
// @Success 200 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Router /api/v1/hotels/{id} [delete]
func (h *HotelHandler) Delete(c *gin.Context) {
	if !h.requireManage(c) {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.hotelService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Hotel deleted")
}

// Export godoc
// @Summary Export hotels
// @Description Download the full hotel inventory as an Excel workbook, staff only
// @Tags hotels
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 403 {object} utils.Envelope
// @Router /api/v1/hotels/export [get]
func (h *HotelHandler) Export(c *gin.Context) {
	if !h.requireManage(c) {
		return
	}

	hotels, err := h.hotelService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}

	f, err := h.excelService.ExportHotels(hotels)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("hotels_%d.xlsx", time.Now().Unix())
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		respondError(c, fmt.Errorf("failed to stream workbook: %w", err))
	}
}

func (h *HotelHandler) requireManage(c *gin.Context) bool {
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
