package models

import (
	"time"
)

// ChatRoom is the single conversation between one guest and one hotel,
// created lazily on first contact. NewMessageTime drives inbox ordering.
type ChatRoom struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	UserID         uint      `json:"user_id" gorm:"not null;index;uniqueIndex:idx_chat_rooms_user_hotel"`
	HotelID        uint      `json:"hotel_id" gorm:"not null;index;uniqueIndex:idx_chat_rooms_user_hotel"`
	NewMessageTime time.Time `json:"new_message_time" gorm:"index"`
	// Relationships
	User     User      `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Hotel    Hotel     `json:"hotel,omitempty" gorm:"foreignKey:HotelID;references:ID;constraint:OnDelete:CASCADE"`
	Messages []Message `json:"messages,omitempty" gorm:"foreignKey:ChatRoomID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the ChatRoom model
func (ChatRoom) TableName() string {
	return "chat_rooms"
}

// CreateChatRoomRequest represents the payload for creating a chat room
type CreateChatRoomRequest struct {
	HotelID uint `json:"hotel_id" binding:"required"`
}

// UpdateChatRoomRequest represents the payload for updating a chat room
type UpdateChatRoomRequest struct {
	NewMessageTime *time.Time `json:"new_message_time,omitempty"`
}
