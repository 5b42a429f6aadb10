package repository

import (
	"github.com/tripnest/hotel-services-backend/internal/models"
	"github.com/tripnest/hotel-services-backend/internal/utils"

	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create creates a new message
func (r *MessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// GetByID retrieves a message by ID. Soft-deleted messages are not
// returned.
func (r *MessageRepository) GetByID(id uint) (*models.Message, error) {
	var message models.Message
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&message).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// ListByChatRoom returns the visible messages of a room, oldest first
func (r *MessageRepository) ListByChatRoom(chatRoomID uint, page, limit int) ([]models.Message, int64, error) {
	var messages []models.Message
	var total int64

	query := r.db.Model(&models.Message{}).
		Where("chat_room_id = ? AND is_deleted = ?", chatRoomID, false)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Preload("Sender").
		Offset(utils.CalculateOffset(page, limit)).
		Limit(limit).
		Order("created_at").
		Find(&messages).Error
	if err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// Update updates a message
func (r *MessageRepository) Update(message *models.Message) error {
	return r.db.Save(message).Error
}

// SoftDelete hides a message from reads while keeping the row
func (r *MessageRepository) SoftDelete(id uint) error {
	return r.db.Model(&models.Message{}).Where("id = ?", id).Update("is_deleted", true).Error
}

// Delete removes a message row entirely
func (r *MessageRepository) Delete(id uint) error {
	return r.db.Delete(&models.Message{}, "id = ?", id).Error
}
