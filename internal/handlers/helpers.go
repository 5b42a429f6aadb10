package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/tripnest/hotel-services-backend/internal/models"
	"github.com/tripnest/hotel-services-backend/internal/services"
	"github.com/tripnest/hotel-services-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondError maps service errors to the envelope. Sentinel categories
// carry the status; everything else is a 500 with a generic message so
// internals never leak to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		utils.Respond(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrForbidden):
		utils.Respond(c, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.Respond(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrConflict):
		utils.Respond(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidInput):
		utils.Respond(c, http.StatusBadRequest, err.Error())
	default:
		logrus.Errorf("Unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.Respond(c, http.StatusInternalServerError, "Internal server error")
	}
}

// currentUser returns the authenticated user set by the bearer middleware
func currentUser(c *gin.Context) *models.User {
	return c.MustGet("user").(*models.User)
}

// parseIDParam reads a numeric path parameter
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}

// resolveUserIDParam reads the :id segment of user-scoped routes,
// resolving the literal "me" to the caller's own id.
func resolveUserIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	if raw == "me" {
		return currentUser(c).ID, true
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid id parameter")
		return 0, false
	}
	return uint(id), true
}

// pageLimit reads page/limit query values with the shared defaults
func pageLimit(c *gin.Context) (int, int) {
	return utils.ParsePageLimit(c.Query("page"), c.Query("limit"))
}
