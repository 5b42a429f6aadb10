package services

import (
	"github.com/tripnest/hotel-services-backend/internal/models"
)

// RoleChecker answers role-membership questions from the role store
type RoleChecker interface {
	UserHasRole(userID uint, roleName string) (bool, error)
	UserHasAnyRole(userID uint, roleNames ...string) (bool, error)
}

// PermissionService derives yes/no authorization decisions from the
// caller's identity and the target resource. All checks are pure reads;
// a false answer maps to Forbidden, never Unauthorized.
type PermissionService struct {
	roles RoleChecker
}

func NewPermissionService(roles RoleChecker) *PermissionService {
	return &PermissionService{roles: roles}
}

// IsAdmin reports whether the user holds the admin role
func (s *PermissionService) IsAdmin(user *models.User) (bool, error) {
	return s.roles.UserHasRole(user.ID, models.RoleAdmin)
}

// IsStaff reports whether the user holds admin or operator
func (s *PermissionService) IsStaff(user *models.User) (bool, error) {
	return s.roles.UserHasAnyRole(user.ID, models.RoleAdmin, models.RoleOperator)
}

// CanManageHotels gates hotel writes and the catalog proxy
func (s *PermissionService) CanManageHotels(user *models.User) (bool, error) {
	return s.IsStaff(user)
}

// CanAddUser gates user administration
func (s *PermissionService) CanAddUser(user *models.User) (bool, error) {
	return s.IsAdmin(user)
}

// CanAccessOwnResource allows access to a user-scoped resource for its
// owner or an admin. Callers resolve the "me" path segment before this
// check runs.
func (s *PermissionService) CanAccessOwnResource(user *models.User, targetUserID uint) (bool, error) {
	if user.ID == targetUserID {
		return true, nil
	}
	return s.IsAdmin(user)
}

// CanAccessChatRoom allows the room owner and staff, uniformly for
// read, update, delete and message posting
func (s *PermissionService) CanAccessChatRoom(user *models.User, room *models.ChatRoom) (bool, error) {
	if user.ID == room.UserID {
		return true, nil
	}
	return s.IsStaff(user)
}

// CanModifyMessage allows the sender and staff
func (s *PermissionService) CanModifyMessage(user *models.User, message *models.Message) (bool, error) {
	if user.ID == message.SenderID {
		return true, nil
	}
	return s.IsStaff(user)
}
