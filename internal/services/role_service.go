package services

import (
	"fmt"

	"github.com/tripnest/hotel-services-backend/internal/models"
)

// RoleStore is the slice of the role repository the role service needs
type RoleStore interface {
	Create(role *models.Role) error
	GetByID(id uint) (*models.Role, error)
	GetByName(name string) (*models.Role, error)
	GetAll() ([]models.Role, error)
	Update(role *models.Role) error
	Delete(id uint) error
	CheckNameExists(name string) (bool, error)
	AssignRoleToUser(userID, roleID uint) error
	RemoveRoleFromUser(userID, roleID uint) error
}

// RoleService manages role records and user↔role assignments. All
// operations are admin-only; the handler enforces that gate.
type RoleService struct {
	roles RoleStore
}

func NewRoleService(roles RoleStore) *RoleService {
	return &RoleService{roles: roles}
}

// List returns all roles
func (s *RoleService) List() ([]models.Role, error) {
	return s.roles.GetAll()
}

// Get returns one role
func (s *RoleService) Get(id uint) (*models.Role, error) {
	role, err := s.roles.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: role %d", ErrNotFound, id)
	}
	return role, nil
}

// Create adds a role with a unique non-empty name
func (s *RoleService) Create(req *models.CreateRoleRequest) (*models.Role, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: role name is required", ErrInvalidInput)
	}
	exists, err := s.roles.CheckNameExists(req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: role name already exists", ErrConflict)
	}

	role := &models.Role{Name: req.Name, Description: req.Description}
	if err := s.roles.Create(role); err != nil {
		return nil, err
	}
	return role, nil
}

// Update renames or redescribes a role. System roles keep their name.
func (s *RoleService) Update(id uint, req *models.UpdateRoleRequest) (*models.Role, error) {
	role, err := s.roles.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: role %d", ErrNotFound, id)
	}

	if req.Name != "" && req.Name != role.Name {
		if models.IsSystemRole(role.Name) {
			return nil, fmt.Errorf("%w: system role cannot be renamed", ErrInvalidInput)
		}
		exists, err := s.roles.CheckNameExists(req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: role name already exists", ErrConflict)
		}
		role.Name = req.Name
	}
	if req.Description != "" {
		role.Description = req.Description
	}

	if err := s.roles.Update(role); err != nil {
		return nil, err
	}
	return role, nil
}

// Delete removes a role. The system roles are never deletable.
func (s *RoleService) Delete(id uint) error {
	role, err := s.roles.GetByID(id)
	if err != nil {
		return fmt.Errorf("%w: role %d", ErrNotFound, id)
	}
	if models.IsSystemRole(role.Name) {
		return fmt.Errorf("%w: system role cannot be deleted", ErrInvalidInput)
	}
	return s.roles.Delete(id)
}

// Assign grants a role to a user, idempotently
func (s *RoleService) Assign(roleID, userID uint) error {
	if _, err := s.roles.GetByID(roleID); err != nil {
		return fmt.Errorf("%w: role %d", ErrNotFound, roleID)
	}
	return s.roles.AssignRoleToUser(userID, roleID)
}

// Remove revokes a role from a user
func (s *RoleService) Remove(roleID, userID uint) error {
	if _, err := s.roles.GetByID(roleID); err != nil {
		return fmt.Errorf("%w: role %d", ErrNotFound, roleID)
	}
	return s.roles.RemoveRoleFromUser(userID, roleID)
}
