package handlers

import (
	"net/http"

	"github.com/tripnest/hotel-services-backend/internal/models"
	"github.com/tripnest/hotel-services-backend/internal/services"
	"github.com/tripnest/hotel-services-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type ChatRoomHandler struct {
	chatRoomService *services.ChatRoomService
	messageService  *services.MessageService
}

func NewChatRoomHandler(chatRoomService *services.ChatRoomService, messageService *services.MessageService) *ChatRoomHandler {
	return &ChatRoomHandler{
		chatRoomService: chatRoomService,
		messageService:  messageService,
	}
}

// List godoc
// @Summary List chat rooms
// @Description List the caller's inbox, most recent message first. Staff see every room.
// @Tags chat-rooms
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} utils.Envelope
// @Router /api/v1/chat-rooms [get]
func (h *ChatRoomHandler) List(c *gin.Context) {
	page, limit := pageLimit(c)

	rooms, total, err := h.chatRoomService.List(currentUser(c), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Chat rooms retrieved",
		utils.WithData(rooms),
		utils.WithPaginate(utils.NewPaginate(total, page, limit)))
}

// GetOrCreateByHotel godoc
// @Summary Get or create the caller's room with a hotel
// @Description Return the caller's chat room with a hotel, creating it on first contact
// @Tags chat-rooms
// @Produce json
// @Security BearerAuth
// @Param hotelId path int true "Hotel ID"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Router /api/v1/chat-rooms/by-hotel/{hotelId} [get]
func (h *ChatRoomHandler) GetOrCreateByHotel(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "hotelId")
	if !ok {
		return
	}

	room, err := h.chatRoomService.GetOrCreateByHotelAndUser(currentUser(c), hotelID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Chat room retrieved", utils.WithData(room))
}

// ListByHotel godoc
// @Summary List a hotel's chat rooms
// @Description List every room of one hotel, staff only
// @Tags chat-rooms
// @Produce json
// @Security BearerAuth
// @Param hotelId path int true "Hotel ID"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Router /api/v1/chat-rooms/hotel/{hotelId} [get]
func (h *ChatRoomHandler) ListByHotel(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "hotelId")
	if !ok {
		return
	}
	page, limit := pageLimit(c)

	rooms, total, err := h.chatRoomService.ListByHotel(currentUser(c), hotelID, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Chat rooms retrieved",
		utils.WithData(rooms),
		utils.WithPaginate(utils.NewPaginate(total, page, limit)))
}

// Get godoc
// @Summary Get a chat room
// @Description Get one room with its messages, owner-or-staff
// @Tags chat-rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Chat room ID"
// @Success 200 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Failure 404 {object} utils.Envelope
// @Router /api/v1/chat-rooms/{id} [get]
func (h *ChatRoomHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	room, err := h.chatRoomService.Get(currentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Chat room retrieved", utils.WithData(room))
}

// Create godoc
// @Summary Create a chat room
// @Description Open a room between the caller and a hotel
// @Tags chat-rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateChatRoomRequest true "Chat room payload"
// @Success 201 {object} utils.Envelope
// @Failure 400 {object} utils.Envelope
// @Router /api/v1/chat-rooms [post]
func (h *ChatRoomHandler) Create(c *gin.Context) {
	var req models.CreateChatRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request data",
			utils.WithErrors(map[string]interface{}{"body": err.Error()}))
		return
	}

	room, err := h.chatRoomService.Create(currentUser(c), req.HotelID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusCreated, "Chat room created", utils.WithData(room))
}

// Update godoc
// @Summary Update a chat room
// @Description Update room metadata, owner-or-staff
// @Tags chat-rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Chat room ID"
// @Param request body models.UpdateChatRoomRequest true "Update payload"
// @Success 200 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Router /api/v1/chat-rooms/{id} [put]
func (h *ChatRoomHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateChatRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request data",
			utils.WithErrors(map[string]interface{}{"body": err.Error()}))
		return
	}

	room, err := h.chatRoomService.Update(currentUser(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Chat room updated", utils.WithData(room))
}

// Delete godoc
// @Summary Delete a chat room
// @Description Delete a room and its messages, owner-or-staff
// @Tags chat-rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Chat room ID"
// @Success 200 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Router /api/v1/chat-rooms/{id} [delete]
func (h *ChatRoomHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.chatRoomService.Delete(currentUser(c), id); err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Chat room deleted")
}

// ListMessages godoc
// @Summary List a room's messages
// @Description List messages of a room in send order, owner-or-staff
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Chat room ID"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Router /api/v1/chat-rooms/{id}/messages [get]
func (h *ChatRoomHandler) ListMessages(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	page, limit := pageLimit(c)

	messages, total, err := h.messageService.ListByChatRoom(currentUser(c), id, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusOK, "Messages retrieved",
		utils.WithData(messages),
		utils.WithPaginate(utils.NewPaginate(total, page, limit)))
}

// PostMessage godoc
// @Summary Post a message
// @Description Post a message to a room the caller may access
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Chat room ID"
// @Param request body models.CreateMessageRequest true "Message payload"
// @Success 201 {object} utils.Envelope
// @Failure 403 {object} utils.Envelope
// @Router /api/v1/chat-rooms/{id}/messages [post]
func (h *ChatRoomHandler) PostMessage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request data",
			utils.WithErrors(map[string]interface{}{"body": err.Error()}))
		return
	}

	message, err := h.messageService.Create(currentUser(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Respond(c, http.StatusCreated, "Message sent", utils.WithData(message))
}
