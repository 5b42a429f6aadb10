package models

import (
	"time"
)

// SignUpCode is a single-use operator invitation: 8 uppercase hex
// characters, valid for 24 hours, deleted on redemption.
type SignUpCode struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Code      string    `json:"code" gorm:"type:varchar(16);not null;uniqueIndex"`
	RoleID    uint      `json:"role_id" gorm:"not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null;index"`
	CreatedBy uint      `json:"created_by" gorm:"not null"`
	// Relationships
	Role    Role `json:"role,omitempty" gorm:"foreignKey:RoleID;references:ID"`
	Creator User `json:"creator,omitempty" gorm:"foreignKey:CreatedBy;references:ID"`
}

// TableName specifies the table name for the SignUpCode model
func (SignUpCode) TableName() string {
	return "sign_up_codes"
}

// ValidateSignUpCodeRequest carries a code to check without consuming it
type ValidateSignUpCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
