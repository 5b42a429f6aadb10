package services

import (
	"fmt"
	"time"

	"github.com/tripnest/hotel-services-backend/internal/models"

	"github.com/sirupsen/logrus"
)

// MessageStore is the slice of the message repository the service needs
type MessageStore interface {
	Create(message *models.Message) error
	GetByID(id uint) (*models.Message, error)
	ListByChatRoom(chatRoomID uint, page, limit int) ([]models.Message, int64, error)
	Update(message *models.Message) error
	SoftDelete(id uint) error
	Delete(id uint) error
}

// RoomGetter resolves rooms for access checks and inbox bumps
type RoomGetter interface {
	GetByID(id uint) (*models.ChatRoom, error)
	TouchNewMessageTime(id uint, t time.Time) error
}

// ChatEventPublisher fans new-message events out to downstream
// notification workers. Optional: a nil publisher disables the fanout.
type ChatEventPublisher interface {
	PublishChatMessage(roomID, senderID uint, content string) error
}

// MessageService manages chat messages. Reading is room-gated; editing
// and deleting are sender-or-staff.
type MessageService struct {
	messages  MessageStore
	rooms     RoomGetter
	perm      *PermissionService
	publisher ChatEventPublisher
}

func NewMessageService(messages MessageStore, rooms RoomGetter, perm *PermissionService, publisher ChatEventPublisher) *MessageService {
	return &MessageService{messages: messages, rooms: rooms, perm: perm, publisher: publisher}
}

// ListByChatRoom returns a room's visible messages, owner-or-staff
// gated. Soft-deleted messages never appear.
func (s *MessageService) ListByChatRoom(caller *models.User, chatRoomID uint, page, limit int) ([]models.Message, int64, error) {
	room, err := s.rooms.GetByID(chatRoomID)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: chat room %d", ErrNotFound, chatRoomID)
	}
	ok, err := s.perm.CanAccessChatRoom(caller, room)
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return nil, 0, fmt.Errorf("%w: not your chat room", ErrForbidden)
	}
	return s.messages.ListByChatRoom(chatRoomID, page, limit)
}

// Get returns one message for its sender, the room owner or staff
func (s *MessageService) Get(caller *models.User, id uint) (*models.Message, error) {
	message, err := s.messages.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: message %d", ErrNotFound, id)
	}

	if message.SenderID == caller.ID {
		return message, nil
	}
	room, err := s.rooms.GetByID(message.ChatRoomID)
	if err != nil {
		return nil, fmt.Errorf("%w: chat room %d", ErrNotFound, message.ChatRoomID)
	}
	ok, err := s.perm.CanAccessChatRoom(caller, room)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: not your message", ErrForbidden)
	}
	return message, nil
}

// Create posts a message to a room the caller may access and bumps the
// room's inbox timestamp. The event fanout is best-effort.
func (s *MessageService) Create(caller *models.User, chatRoomID uint, req *models.CreateMessageRequest) (*models.Message, error) {
	room, err := s.rooms.GetByID(chatRoomID)
	if err != nil {
		return nil, fmt.Errorf("%w: chat room %d", ErrNotFound, chatRoomID)
	}
	ok, err := s.perm.CanAccessChatRoom(caller, room)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: not your chat room", ErrForbidden)
	}

	message := &models.Message{
		ChatRoomID: chatRoomID,
		SenderID:   caller.ID,
		Content:    req.Content,
	}
	if err := s.messages.Create(message); err != nil {
		return nil, err
	}

	if err := s.rooms.TouchNewMessageTime(chatRoomID, time.Now()); err != nil {
		logrus.Warnf("Failed to bump chat room %d inbox time: %v", chatRoomID, err)
	}
	if s.publisher != nil {
		if err := s.publisher.PublishChatMessage(chatRoomID, caller.ID, req.Content); err != nil {
			logrus.Warnf("Failed to publish chat event for room %d: %v", chatRoomID, err)
		}
	}

	return message, nil
}

// Update edits a message, sender-or-staff gated
func (s *MessageService) Update(caller *models.User, id uint, req *models.UpdateMessageRequest) (*models.Message, error) {
	message, err := s.messages.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: message %d", ErrNotFound, id)
	}
	if err := s.requireModify(caller, message); err != nil {
		return nil, err
	}

	message.Content = req.Content
	if err := s.messages.Update(message); err != nil {
		return nil, err
	}
	return message, nil
}

// SoftDelete hides a message from reads while keeping the row
func (s *MessageService) SoftDelete(caller *models.User, id uint) error {
	message, err := s.messages.GetByID(id)
	if err != nil {
		return fmt.Errorf("%w: message %d", ErrNotFound, id)
	}
	if err := s.requireModify(caller, message); err != nil {
		return err
	}
	return s.messages.SoftDelete(id)
}

// Delete removes a message row entirely
func (s *MessageService) Delete(caller *models.User, id uint) error {
	message, err := s.messages.GetByID(id)
	if err != nil {
		return fmt.Errorf("%w: message %d", ErrNotFound, id)
	}
	if err := s.requireModify(caller, message); err != nil {
		return err
	}
	return s.messages.Delete(id)
}

func (s *MessageService) requireModify(caller *models.User, message *models.Message) error {
	ok, err := s.perm.CanModifyMessage(caller, message)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: not your message", ErrForbidden)
	}
	return nil
}
