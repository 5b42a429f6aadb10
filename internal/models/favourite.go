package models

import (
	"time"
)

// UsersHotelsFavourite marks a hotel as a favourite of a user, at most
// once per (user, hotel) pair.
type UsersHotelsFavourite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uint      `json:"user_id" gorm:"not null;index;uniqueIndex:idx_favourites_user_hotel"`
	HotelID   uint      `json:"hotel_id" gorm:"not null;index;uniqueIndex:idx_favourites_user_hotel"`
	// Relationships
	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Hotel Hotel `json:"hotel,omitempty" gorm:"foreignKey:HotelID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the favourites join model
func (UsersHotelsFavourite) TableName() string {
	return "users_hotels_favourites"
}

// AddFavouriteRequest represents the payload for adding a favourite
type AddFavouriteRequest struct {
	HotelID uint `json:"hotel_id" binding:"required"`
}
