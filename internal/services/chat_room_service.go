package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/tripnest/hotel-services-backend/internal/models"

	"gorm.io/gorm"
)

// ChatRoomStore is the slice of the chat room repository the service needs
type ChatRoomStore interface {
	Create(room *models.ChatRoom) error
	GetByID(id uint) (*models.ChatRoom, error)
	GetByUserAndHotel(userID, hotelID uint) (*models.ChatRoom, error)
	List(userID uint, staff bool, page, limit int) ([]models.ChatRoom, int64, error)
	ListByHotel(hotelID uint, page, limit int) ([]models.ChatRoom, int64, error)
	Update(room *models.ChatRoom) error
	TouchNewMessageTime(id uint, t time.Time) error
	Delete(id uint) error
}

// HotelGetter is the existence check the chat service needs from the
// hotel store
type HotelGetter interface {
	GetByID(id uint) (*models.Hotel, error)
}

// ChatRoomService manages guest↔hotel conversations. Access is
// owner-or-staff across read, update, delete and posting.
type ChatRoomService struct {
	rooms  ChatRoomStore
	hotels HotelGetter
	perm   *PermissionService
}

func NewChatRoomService(rooms ChatRoomStore, hotels HotelGetter, perm *PermissionService) *ChatRoomService {
	return &ChatRoomService{rooms: rooms, hotels: hotels, perm: perm}
}

// List returns the caller's inbox: staff see every room, guests their
// own, most recent message first.
func (s *ChatRoomService) List(caller *models.User, page, limit int) ([]models.ChatRoom, int64, error) {
	staff, err := s.perm.IsStaff(caller)
	if err != nil {
		return nil, 0, err
	}
	return s.rooms.List(caller.ID, staff, page, limit)
}

// ListByHotel returns the rooms of one hotel, staff only
func (s *ChatRoomService) ListByHotel(caller *models.User, hotelID uint, page, limit int) ([]models.ChatRoom, int64, error) {
	staff, err := s.perm.IsStaff(caller)
	if err != nil {
		return nil, 0, err
	}
	if !staff {
		return nil, 0, fmt.Errorf("%w: staff role required", ErrForbidden)
	}
	return s.rooms.ListByHotel(hotelID, page, limit)
}

// Get returns one room, owner-or-staff gated
func (s *ChatRoomService) Get(caller *models.User, id uint) (*models.ChatRoom, error) {
	room, err := s.rooms.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: chat room %d", ErrNotFound, id)
	}
	if err := s.requireRoomAccess(caller, room); err != nil {
		return nil, err
	}
	return room, nil
}

// Create opens a room between the caller and a hotel. At most one room
// exists per (user, hotel) pair.
func (s *ChatRoomService) Create(caller *models.User, hotelID uint) (*models.ChatRoom, error) {
	if _, err := s.hotels.GetByID(hotelID); err != nil {
		return nil, fmt.Errorf("%w: hotel %d", ErrNotFound, hotelID)
	}
	if _, err := s.rooms.GetByUserAndHotel(caller.ID, hotelID); err == nil {
		return nil, fmt.Errorf("%w: chat room already exists for this hotel", ErrConflict)
	}

	room := &models.ChatRoom{
		UserID:         caller.ID,
		HotelID:        hotelID,
		NewMessageTime: time.Now(),
	}
	if err := s.rooms.Create(room); err != nil {
		return nil, err
	}
	// Re-read so the caller gets the hydrated associations regardless of
	// the creation path.
	return s.rooms.GetByID(room.ID)
}

// GetOrCreateByHotelAndUser returns the caller's room with a hotel,
// creating it lazily on first contact. Idempotent: repeated calls return
// the same room.
func (s *ChatRoomService) GetOrCreateByHotelAndUser(caller *models.User, hotelID uint) (*models.ChatRoom, error) {
	room, err := s.rooms.GetByUserAndHotel(caller.ID, hotelID)
	if err == nil {
		return room, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.hotels.GetByID(hotelID); err != nil {
		return nil, fmt.Errorf("%w: hotel %d", ErrNotFound, hotelID)
	}

	newRoom := &models.ChatRoom{
		UserID:         caller.ID,
		HotelID:        hotelID,
		NewMessageTime: time.Now(),
	}
	if err := s.rooms.Create(newRoom); err != nil {
		// A concurrent first contact may have won the unique index race.
		if existing, lookupErr := s.rooms.GetByUserAndHotel(caller.ID, hotelID); lookupErr == nil {
			return existing, nil
		}
		return nil, err
	}

	return s.rooms.GetByUserAndHotel(caller.ID, hotelID)
}

// Update edits a room, owner-or-staff gated
func (s *ChatRoomService) Update(caller *models.User, id uint, req *models.UpdateChatRoomRequest) (*models.ChatRoom, error) {
	room, err := s.rooms.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: chat room %d", ErrNotFound, id)
	}
	if err := s.requireRoomAccess(caller, room); err != nil {
		return nil, err
	}

	if req.NewMessageTime != nil {
		room.NewMessageTime = *req.NewMessageTime
	}
	if err := s.rooms.Update(room); err != nil {
		return nil, err
	}
	return room, nil
}

// Delete removes a room, owner-or-staff gated
func (s *ChatRoomService) Delete(caller *models.User, id uint) error {
	room, err := s.rooms.GetByID(id)
	if err != nil {
		return fmt.Errorf("%w: chat room %d", ErrNotFound, id)
	}
	if err := s.requireRoomAccess(caller, room); err != nil {
		return err
	}
	return s.rooms.Delete(id)
}

func (s *ChatRoomService) requireRoomAccess(caller *models.User, room *models.ChatRoom) error {
	ok, err := s.perm.CanAccessChatRoom(caller, room)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: not your chat room", ErrForbidden)
	}
	return nil
}
