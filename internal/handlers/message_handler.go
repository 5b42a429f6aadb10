package handlers

import (
	"net/http"

	"github.com/tripnest/hotel-services-backend/internal/models"
	"github.com/tripnest/hotel-services-backend/internal/services"
	"github.com/tripnest/hotel-services-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Get godoc
// @Summary Get a message
// @Description Get one message for its sender, the room owner or staff
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Router /api/v1/messages/{id} [get]
func (h *MessageHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	message, err := h.messageService.Get(currentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Message retrieved", utils.WithData(message))
}

// Update godoc
// @Summary Edit a message
// @Description Edit a message's content, sender-or-staff
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Param request body models.UpdateMessageRequest true "Message payload"
// @Success 200 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Router /api/v1/messages/{id} [put]
func (h *MessageHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request data",
			utils.WithErrors(map[string]interface{}{"body": err.Error()}))
		return
	}

	message, err := h.messageService.Update(currentUser(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Message updated", utils.WithData(message))
}

// SoftDelete godoc
// @Summary Soft delete a message
// @Description Hide a message from reads while keeping the row, sender-or-staff
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Router /api/v1/messages/{id}/soft [delete]
func (h *MessageHandler) SoftDelete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.messageService.SoftDelete(currentUser(c), id); err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Message deleted")
}

// Delete godoc
// @Summary Delete a message
// @Description Remove a message row entirely, sender-or-staff
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Router /api/v1/messages/{id} [delete]
func (h *MessageHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.messageService.Delete(currentUser(c), id); err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Message deleted")
}
