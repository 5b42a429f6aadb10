package models

import (
	"time"
)

// Message is one chat message. Soft-deleted rows stay in storage but are
// excluded from every read path.
type Message struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	ChatRoomID uint      `json:"chat_room_id" gorm:"not null;index"`
	SenderID   uint      `json:"sender_id" gorm:"not null;index"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	IsDeleted  bool      `json:"is_deleted" gorm:"default:false;index"`
	// Relationships
	ChatRoom ChatRoom `json:"chat_room,omitempty" gorm:"foreignKey:ChatRoomID;references:ID;constraint:OnDelete:CASCADE"`
	Sender   User     `json:"sender,omitempty" gorm:"foreignKey:SenderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Message model
func (Message) TableName() string {
	return "messages"
}

// CreateMessageRequest represents the payload for posting a message
type CreateMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// UpdateMessageRequest represents the payload for editing a message
type UpdateMessageRequest struct {
	Content string `json:"content" binding:"required"`
}
