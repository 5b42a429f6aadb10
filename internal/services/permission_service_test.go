package services

import (
	"testing"

	"github.com/tripnest/hotel-services-backend/internal/models"
)

type fakeRoleChecker struct {
	grants map[uint][]string
}

func (f *fakeRoleChecker) UserHasRole(userID uint, roleName string) (bool, error) {
	for _, name := range f.grants[userID] {
		if name == roleName {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRoleChecker) UserHasAnyRole(userID uint, roleNames ...string) (bool, error) {
	for _, name := range roleNames {
		ok, _ := f.UserHasRole(userID, name)
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func newTestPermissions() *PermissionService {
	return NewPermissionService(&fakeRoleChecker{grants: map[uint][]string{
		1: {models.RoleAdmin},
		2: {models.RoleOperator},
		3: {models.RoleNormalUser},
	}})
}

func TestRolePredicates(t *testing.T) {
	perm := newTestPermissions()

	tests := []struct {
		name      string
		userID    uint
		wantAdmin bool
		wantStaff bool
	}{
		{"admin", 1, true, true},
		{"operator", 2, false, true},
		{"normal user", 3, false, false},
		{"no roles", 4, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &models.User{ID: tt.userID}

			admin, err := perm.IsAdmin(user)
			if err != nil {
				t.Fatalf("IsAdmin() error = %v", err)
			}
			if admin != tt.wantAdmin {
				t.Errorf("IsAdmin() = %v, want %v", admin, tt.wantAdmin)
			}

			staff, err := perm.IsStaff(user)
			if err != nil {
				t.Fatalf("IsStaff() error = %v", err)
			}
			if staff != tt.wantStaff {
				t.Errorf("IsStaff() = %v, want %v", staff, tt.wantStaff)
			}

			manage, _ := perm.CanManageHotels(user)
			if manage != tt.wantStaff {
				t.Errorf("CanManageHotels() = %v, want %v", manage, tt.wantStaff)
			}

			addUser, _ := perm.CanAddUser(user)
			if addUser != tt.wantAdmin {
				t.Errorf("CanAddUser() = %v, want %v", addUser, tt.wantAdmin)
			}
		})
	}
}

func TestCanAccessOwnResource(t *testing.T) {
	perm := newTestPermissions()

	tests := []struct {
		name     string
		userID   uint
		targetID uint
		want     bool
	}{
		{"owner", 3, 3, true},
		{"admin on other", 1, 3, true},
		{"operator on other", 2, 3, false},
		{"stranger", 4, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := perm.CanAccessOwnResource(&models.User{ID: tt.userID}, tt.targetID)
			if err != nil {
				t.Fatalf("CanAccessOwnResource() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("CanAccessOwnResource() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanAccessChatRoom(t *testing.T) {
	perm := newTestPermissions()
	room := &models.ChatRoom{ID: 10, UserID: 3}

	tests := []struct {
		name   string
		userID uint
		want   bool
	}{
		{"room owner", 3, true},
		{"admin", 1, true},
		{"operator", 2, true},
		{"other guest", 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := perm.CanAccessChatRoom(&models.User{ID: tt.userID}, room)
			if err != nil {
				t.Fatalf("CanAccessChatRoom() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("CanAccessChatRoom() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanModifyMessage(t *testing.T) {
	perm := newTestPermissions()
	message := &models.Message{ID: 5, SenderID: 3}

	tests := []struct {
		name   string
		userID uint
		want   bool
	}{
		{"sender", 3, true},
		{"admin", 1, true},
		{"operator", 2, true},
		{"other guest", 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := perm.CanModifyMessage(&models.User{ID: tt.userID}, message)
			if err != nil {
				t.Fatalf("CanModifyMessage() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("CanModifyMessage() = %v, want %v", got, tt.want)
			}
		})
	}
}
