package repository

import (
	"github.com/tripnest/hotel-services-backend/internal/models"

	"gorm.io/gorm"
)

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// Create creates a new role
func (r *RoleRepository) Create(role *models.Role) error {
	return r.db.Create(role).Error
}

// GetByID retrieves a role by ID
func (r *RoleRepository) GetByID(id uint) (*models.Role, error) {
	var role models.Role
	err := r.db.First(&role, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// GetByName retrieves a role by name
func (r *RoleRepository) GetByName(name string) (*models.Role, error) {
	var role models.Role
	err := r.db.Where("name = ?", name).First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// GetAll returns all roles
func (r *RoleRepository) GetAll() ([]models.Role, error) {
	var roles []models.Role
	err := r.db.Order("id").Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

// Update updates a role
func (r *RoleRepository) Update(role *models.Role) error {
	return r.db.Save(role).Error
}

// Delete deletes a role
func (r *RoleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Role{}, "id = ?", id).Error
}

// CheckNameExists checks if a role name already exists
func (r *RoleRepository) CheckNameExists(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Role{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// AssignRoleToUser assigns a role to a user. Idempotent: an existing
// assignment is left in place.
func (r *RoleRepository) AssignRoleToUser(userID, roleID uint) error {
	var count int64
	err := r.db.Table("users_roles").
		Where("user_id = ? AND role_id = ?", userID, roleID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return r.db.Exec("INSERT INTO users_roles (user_id, role_id) VALUES (?, ?)", userID, roleID).Error
}

// RemoveRoleFromUser removes a role from a user
func (r *RoleRepository) RemoveRoleFromUser(userID, roleID uint) error {
	return r.db.Exec("DELETE FROM users_roles WHERE user_id = ? AND role_id = ?", userID, roleID).Error
}

// GetUserRoles retrieves all roles for a user
func (r *RoleRepository) GetUserRoles(userID uint) ([]models.Role, error) {
	var user models.User
	err := r.db.Preload("Roles").First(&user, "id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return user.Roles, nil
}

// UserHasRole checks if a user holds a specific role
func (r *RoleRepository) UserHasRole(userID uint, roleName string) (bool, error) {
	var count int64
	err := r.db.Table("users_roles").
		Joins("JOIN roles ON users_roles.role_id = roles.id").
		Where("users_roles.user_id = ? AND roles.name = ?", userID, roleName).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UserHasAnyRole checks if a user holds at least one of the given roles
func (r *RoleRepository) UserHasAnyRole(userID uint, roleNames ...string) (bool, error) {
	var count int64
	err := r.db.Table("users_roles").
		Joins("JOIN roles ON users_roles.role_id = roles.id").
		Where("users_roles.user_id = ? AND roles.name IN ?", userID, roleNames).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
