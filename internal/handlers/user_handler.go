package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tripnest/hotel-services-backend/internal/config"
	"github.com/tripnest/hotel-services-backend/internal/models"
	"github.com/tripnest/hotel-services-backend/internal/services"
	"github.com/tripnest/hotel-services-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxAvatarSize caps avatar uploads at 5MB
const maxAvatarSize = 5 << 20

var allowedAvatarTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type UserHandler struct {
	userService      *services.UserService
	favouriteService *services.FavouriteService
	uploadDir        string
}

func NewUserHandler(userService *services.UserService, favouriteService *services.FavouriteService) *UserHandler {
	uploadDir := config.GetEnv("UPLOAD_DIR", "uploads/avatars")
	if _, err := os.Stat(uploadDir); os.IsNotExist(err) {
		os.MkdirAll(uploadDir, 0755)
	}
	return &UserHandler{
		userService:      userService,
		favouriteService: favouriteService,
		uploadDir:        uploadDir,
	}
}

// List godoc
// @Summary List users
// @Description List all accounts with pagination, admin only
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Router /api/v1/users [get]
func (h *UserHandler) List(c *gin.Context) {
	page, limit := pageLimit(c)

	users, total, err := h.userService.List(currentUser(c), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Users retrieved",
		utils.WithData(users),
		utils.WithPaginate(utils.NewPaginate(total, page, limit)))
}

// Get godoc
// @Summary Get a user
// @Description Get one account by id, or "me" for the caller
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID or me"
// @Success 200 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Router /api/v1/users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := resolveUserIDParam(c)
	if !ok {
		return
	}

	user, err := h.userService.Get(currentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "User retrieved", utils.WithData(user))
}

// Update godoc
// @Summary Update a user
// @Description Update name or email, self-or-admin
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID or me"
// @Param request body models.UpdateUserRequest true "Update request"
// @Success 200 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Router /api/v1/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := resolveUserIDParam(c)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request data",
			utils.WithErrors(map[string]interface{}{"body": err.Error()}))
		return
	}

	user, err := h.userService.Update(currentUser(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "User updated", utils.WithData(user))
}

// Delete godoc
// @Summary Delete a user
// @Description Delete an account, self-or-admin
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID or me"
// @Success 200 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Router /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := resolveUserIDParam(c)
	if !ok {
		return
	}

	if err := h.userService.Delete(currentUser(c), id); err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "User deleted")
}

// UploadAvatar godoc
// @Summary Upload an avatar
// @Description Upload an avatar image (jpeg/png/gif/webp, max 5MB), self-or-admin
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID or me"
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Router /api/v1/users/{id}/avatar [post]
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	id, ok := resolveUserIDParam(c)
	if !ok {
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		utils.Respond(c, http.StatusBadRequest, "Avatar file is required")
		return
	}
	if file.Size > maxAvatarSize {
		utils.Respond(c, http.StatusBadRequest, "Avatar exceeds the 5MB limit")
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer src.Close()

	// Sniff the real content type; the client-supplied header is not
	// trusted.
	head := make([]byte, 512)
	n, _ := src.Read(head)
	contentType := http.DetectContentType(head[:n])

	ext, allowed := allowedAvatarTypes[contentType]
	if !allowed {
		utils.Respond(c, http.StatusBadRequest, "Unsupported image type: "+contentType)
		return
	}

	filename := uuid.New().String() + ext
	dst := filepath.Join(h.uploadDir, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		respondError(c, fmt.Errorf("failed to save avatar: %w", err))
		return
	}

	user, err := h.userService.UpdateAvatar(currentUser(c), id, dst)
	if err != nil {
		os.Remove(dst)
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Avatar updated", utils.WithData(user))
}

// ListFavourites godoc
// @Summary List favourites
// @Description List a user's favourite hotels, self-or-admin
// @Tags favourites
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID or me"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Router /api/v1/users/{id}/favourites [get]
func (h *UserHandler) ListFavourites(c *gin.Context) {
	id, ok := h.resolveFavouritesOwner(c)
	if !ok {
		return
	}
	page, limit := pageLimit(c)

	favourites, total, err := h.favouriteService.List(id, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Favourites retrieved",
		utils.WithData(favourites),
		utils.WithPaginate(utils.NewPaginate(total, page, limit)))
}

// AddFavourite godoc
// @Summary Add a favourite
// @Description Mark a hotel as favourite, self-or-admin
// @Tags favourites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID or me"
// @Param request body models.AddFavouriteRequest true "Favourite request"
// @Success 201 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Router /api/v1/users/{id}/favourites [post]
func (h *UserHandler) AddFavourite(c *gin.Context) {
	id, ok := h.resolveFavouritesOwner(c)
	if !ok {
		return
	}

	var req models.AddFavouriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request data",
			utils.WithErrors(map[string]interface{}{"body": err.Error()}))
		return
	}

	favourite, err := h.favouriteService.Add(id, req.HotelID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusCreated, "Favourite added", utils.WithData(favourite))
}

// RemoveFavourite godoc
// @Summary Remove a favourite
// @Description Remove a hotel from favourites, self-or-admin
// @Tags favourites
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID or me"
// @Param hotelId path int true "Hotel ID"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Router /api/v1/users/{id}/favourites/{hotelId} [delete]
func (h *UserHandler) RemoveFavourite(c *gin.Context) {
	id, ok := h.resolveFavouritesOwner(c)
	if !ok {
		return
	}
	hotelID, ok := parseIDParam(c, "hotelId")
	if !ok {
		return
	}

	if err := h.favouriteService.Remove(id, hotelID); err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Favourite removed")
}

// CheckFavourite godoc
// @Summary Check a favourite
// @Description Report whether a hotel is in the user's favourites, self-or-admin
// @Tags favourites
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID or me"
// @Param hotelId query int true "Hotel ID"
// @Success 200 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Router /api/v1/users/{id}/favourites/check [get]
func (h *UserHandler) CheckFavourite(c *gin.Context) {
	id, ok := h.resolveFavouritesOwner(c)
	if !ok {
		return
	}

	hotelID, err := strconv.ParseUint(c.Query("hotelId"), 10, 32)
	if err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid hotelId parameter")
		return
	}

	isFavourite, err := h.favouriteService.Check(id, uint(hotelID))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Favourite checked",
		utils.WithData(gin.H{"is_favourite": isFavourite}))
}

// resolveFavouritesOwner resolves the :id segment and enforces the
// self-or-admin gate through the user service lookup.
func (h *UserHandler) resolveFavouritesOwner(c *gin.Context) (uint, bool) {
	id, ok := resolveUserIDParam(c)
	if !ok {
		return 0, false
	}
	if _, err := h.userService.Get(currentUser(c), id); err != nil {
		respondError(c, err)
		return 0, false
	}
	return id, true
}
