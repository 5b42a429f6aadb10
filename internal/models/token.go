package models

import (
	"time"
)

// Token is one authenticated session: an opaque access/refresh pair
// stored as a single row. Values are 64-hex-character random strings
// looked up by exact match, never decoded.
type Token struct {
	ID                    uint      `json:"id" gorm:"primaryKey"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
	UserID                uint      `json:"user_id" gorm:"not null;index"`
	AccessToken           string    `json:"-" gorm:"type:varchar(128);not null;uniqueIndex"`
	RefreshToken          string    `json:"-" gorm:"type:varchar(128);not null;uniqueIndex"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at" gorm:"not null"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at" gorm:"not null;index"`
	// Relationships
	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Token model
func (Token) TableName() string {
	return "tokens"
}
