package models

import (
	"time"
)

// System role names. These rows are seeded at startup and cannot be
// deleted through the role endpoints.
const (
	RoleAdmin      = "admin"
	RoleOperator   = "travel_agency_operator"
	RoleNormalUser = "normal_user"
)

// Role represents a named role grantable to users
type Role struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null;unique;index" example:"travel_agency_operator"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	// Relationships
	Users []User `json:"users,omitempty" gorm:"many2many:users_roles;"`
}

// TableName specifies the table name for the Role model
func (Role) TableName() string {
	return "roles"
}

// IsSystemRole reports whether a role name belongs to the protected set.
func IsSystemRole(name string) bool {
	return name == RoleAdmin || name == RoleOperator
}

// CreateRoleRequest represents the payload for creating a role
type CreateRoleRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description,omitempty"`
}

// UpdateRoleRequest represents the payload for updating a role
type UpdateRoleRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// UserRoleRequest carries the user a role is assigned to or removed from
type UserRoleRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}
