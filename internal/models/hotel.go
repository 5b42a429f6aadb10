package models

import (
	"time"
)

// Hotel status values
const (
	HotelStatusPending  = "pending"
	HotelStatusActive   = "active"
	HotelStatusInactive = "inactive"
)

// Hotel represents a bookable property. Rows synced from the HotelBeds
// catalog carry a non-nil HotelBedsID; their provider-owned fields are
// refreshed by sync and locked against manual edits.
type Hotel struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	HotelBedsID     *int       `json:"hotel_beds_id" gorm:"uniqueIndex"`
	Name            string     `json:"name" gorm:"type:varchar(255);not null"`
	Description     string     `json:"description" gorm:"type:text"`
	Address         string     `json:"address" gorm:"type:text"`
	PostalCode      string     `json:"postal_code" gorm:"type:varchar(20)"`
	Email           string     `json:"email" gorm:"type:varchar(255);not null"`
	Phones          PhoneList  `json:"phones" gorm:"type:jsonb"`
	City            string     `json:"city" gorm:"type:varchar(255)"`
	CountryCode     string     `json:"country_code" gorm:"type:varchar(10)"`
	StateCode       string     `json:"state_code" gorm:"type:varchar(10)"`
	DestinationCode string     `json:"destination_code" gorm:"type:varchar(10);index"`
	ZoneCode        string     `json:"zone_code" gorm:"type:varchar(10)"`
	Latitude        float64    `json:"latitude"`
	Longitude       float64    `json:"longitude"`
	Category        string     `json:"category" gorm:"type:varchar(20)"`
	Images          StringList `json:"images" gorm:"type:jsonb"`
	Status          string     `json:"status" gorm:"type:varchar(20);not null;default:pending;index"`
	CustomData      JSONMap    `json:"custom_data" gorm:"type:jsonb"`
	LastUpdated     time.Time  `json:"last_updated"`
	// Relationships
	ChatRooms  []ChatRoom             `json:"chat_rooms,omitempty" gorm:"foreignKey:HotelID;references:ID;constraint:OnDelete:CASCADE"`
	Favourites []UsersHotelsFavourite `json:"favourites,omitempty" gorm:"foreignKey:HotelID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Hotel model
func (Hotel) TableName() string {
	return "hotels"
}

// IsProviderSynced reports whether the hotel row is owned by the
// external catalog.
func (h *Hotel) IsProviderSynced() bool {
	return h.HotelBedsID != nil
}

// CreateHotelRequest represents the payload for creating a hotel
type CreateHotelRequest struct {
	HotelBedsID     *int       `json:"hotel_beds_id,omitempty"`
	Name            string     `json:"name" binding:"required"`
	Description     string     `json:"description,omitempty"`
	Address         string     `json:"address,omitempty"`
	PostalCode      string     `json:"postal_code,omitempty"`
	Email           string     `json:"email" binding:"required,email"`
	Phones          PhoneList  `json:"phones,omitempty"`
	City            string     `json:"city,omitempty"`
	CountryCode     string     `json:"country_code,omitempty"`
	StateCode       string     `json:"state_code,omitempty"`
	DestinationCode string     `json:"destination_code,omitempty"`
	ZoneCode        string     `json:"zone_code,omitempty"`
	Latitude        float64    `json:"latitude,omitempty"`
	Longitude       float64    `json:"longitude,omitempty"`
	Category        string     `json:"category,omitempty"`
	Images          StringList `json:"images,omitempty"`
	Status          string     `json:"status,omitempty"`
	CustomData      JSONMap    `json:"custom_data,omitempty"`
}

// UpdateHotelRequest represents the payload for updating a hotel. For
// provider-synced hotels only Status and CustomData are honored.
type UpdateHotelRequest struct {
	Name            string     `json:"name,omitempty"`
	Description     string     `json:"description,omitempty"`
	Address         string     `json:"address,omitempty"`
	PostalCode      string     `json:"postal_code,omitempty"`
	Email           string     `json:"email,omitempty" binding:"omitempty,email"`
	Phones          PhoneList  `json:"phones,omitempty"`
	City            string     `json:"city,omitempty"`
	CountryCode     string     `json:"country_code,omitempty"`
	StateCode       string     `json:"state_code,omitempty"`
	DestinationCode string     `json:"destination_code,omitempty"`
	ZoneCode        string     `json:"zone_code,omitempty"`
	Latitude        *float64   `json:"latitude,omitempty"`
	Longitude       *float64   `json:"longitude,omitempty"`
	Category        string     `json:"category,omitempty"`
	Images          StringList `json:"images,omitempty"`
	Status          string     `json:"status,omitempty"`
	CustomData      JSONMap    `json:"custom_data,omitempty"`
}
