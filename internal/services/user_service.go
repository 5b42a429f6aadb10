package services

import (
	"fmt"

	"github.com/tripnest/hotel-services-backend/internal/models"
)

// UserStore is the slice of the user repository the user service needs
type UserStore interface {
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	CheckEmailExists(email string) (bool, error)
	List(page, limit int) ([]models.User, int64, error)
	Update(user *models.User) error
	UpdateAvatar(id uint, avatar string) error
	Delete(id uint) error
}

// UserService manages account profiles. Every operation takes the
// caller and enforces the self-or-admin rule before touching the store.
type UserService struct {
	users UserStore
	perm  *PermissionService
}

func NewUserService(users UserStore, perm *PermissionService) *UserService {
	return &UserService{users: users, perm: perm}
}

// List returns all users, admin only
func (s *UserService) List(caller *models.User, page, limit int) ([]models.User, int64, error) {
	ok, err := s.perm.IsAdmin(caller)
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return nil, 0, fmt.Errorf("%w: admin role required", ErrForbidden)
	}
	return s.users.List(page, limit)
}

// Get returns one user, self-or-admin gated
func (s *UserService) Get(caller *models.User, id uint) (*models.User, error) {
	if err := s.requireSelfOrAdmin(caller, id); err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
	}
	return user, nil
}

// Update changes name/email, self-or-admin gated. Email moves are
// rejected when the target address is taken.
func (s *UserService) Update(caller *models.User, id uint, req *models.UpdateUserRequest) (*models.User, error) {
	if err := s.requireSelfOrAdmin(caller, id); err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
	}

	if req.Email != "" && req.Email != user.Email {
		taken, err := s.users.CheckEmailExists(req.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		user.Email = req.Email
	}
	if req.Name != "" {
		user.Name = req.Name
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateAvatar records the stored avatar path, self-or-admin gated
func (s *UserService) UpdateAvatar(caller *models.User, id uint, avatar string) (*models.User, error) {
	if err := s.requireSelfOrAdmin(caller, id); err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(id); err != nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
	}
	if err := s.users.UpdateAvatar(id, avatar); err != nil {
		return nil, err
	}
	return s.users.GetByID(id)
}

// Delete removes an account, self-or-admin gated
func (s *UserService) Delete(caller *models.User, id uint) error {
	if err := s.requireSelfOrAdmin(caller, id); err != nil {
		return err
	}
	if _, err := s.users.GetByID(id); err != nil {
		return fmt.Errorf("%w: user %d", ErrNotFound, id)
	}
	return s.users.Delete(id)
}

func (s *UserService) requireSelfOrAdmin(caller *models.User, targetID uint) error {
	ok, err := s.perm.CanAccessOwnResource(caller, targetID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: not your resource", ErrForbidden)
	}
	return nil
}
