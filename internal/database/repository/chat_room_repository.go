package repository

import (
	"time"

	"github.com/tripnest/hotel-services-backend/internal/models"
	"github.com/tripnest/hotel-services-backend/internal/utils"

	"gorm.io/gorm"
)

type ChatRoomRepository struct {
	db *gorm.DB
}

func NewChatRoomRepository(db *gorm.DB) *ChatRoomRepository {
	return &ChatRoomRepository{db: db}
}

// Create creates a new chat room
func (r *ChatRoomRepository) Create(room *models.ChatRoom) error {
	return r.db.Create(room).Error
}

// GetByID retrieves a chat room with user, hotel and visible messages
// preloaded
func (r *ChatRoomRepository) GetByID(id uint) (*models.ChatRoom, error) {
	var room models.ChatRoom
	err := r.db.Preload("User").Preload("Hotel").
		Preload("Messages", "is_deleted = ?", false).
		First(&room, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// GetByUserAndHotel retrieves the room for a (user, hotel) pair, fully
// hydrated
func (r *ChatRoomRepository) GetByUserAndHotel(userID, hotelID uint) (*models.ChatRoom, error) {
	var room models.ChatRoom
	err := r.db.Preload("User").Preload("Hotel").
		Preload("Messages", "is_deleted = ?", false).
		Where("user_id = ? AND hotel_id = ?", userID, hotelID).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// List returns chat rooms in inbox order (most recent message first).
// Staff callers see every room; others only their own.
func (r *ChatRoomRepository) List(userID uint, staff bool, page, limit int) ([]models.ChatRoom, int64, error) {
	var rooms []models.ChatRoom
	var total int64

	query := r.db.Model(&models.ChatRoom{})
	if !staff {
		query = query.Where("user_id = ?", userID)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Preload("User").Preload("Hotel").
		Offset(utils.CalculateOffset(page, limit)).
		Limit(limit).
		Order("new_message_time DESC").
		Find(&rooms).Error
	if err != nil {
		return nil, 0, err
	}
	return rooms, total, nil
}

// ListByHotel returns the rooms of one hotel in inbox order
func (r *ChatRoomRepository) ListByHotel(hotelID uint, page, limit int) ([]models.ChatRoom, int64, error) {
	var rooms []models.ChatRoom
	var total int64

	query := r.db.Model(&models.ChatRoom{}).Where("hotel_id = ?", hotelID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Preload("User").
		Offset(utils.CalculateOffset(page, limit)).
		Limit(limit).
		Order("new_message_time DESC").
		Find(&rooms).Error
	if err != nil {
		return nil, 0, err
	}
	return rooms, total, nil
}

// Update updates a chat room
func (r *ChatRoomRepository) Update(room *models.ChatRoom) error {
	return r.db.Save(room).Error
}

// TouchNewMessageTime bumps the room's inbox timestamp
func (r *ChatRoomRepository) TouchNewMessageTime(id uint, t time.Time) error {
	return r.db.Model(&models.ChatRoom{}).Where("id = ?", id).Update("new_message_time", t).Error
}

// Delete deletes a chat room
func (r *ChatRoomRepository) Delete(id uint) error {
	return r.db.Delete(&models.ChatRoom{}, "id = ?", id).Error
}
