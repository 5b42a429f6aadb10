package services

import (
	"errors"
	"testing"

	"github.com/tripnest/hotel-services-backend/internal/models"

	"gorm.io/gorm"
)

type fakeUserStore struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	s := &fakeUserStore{users: map[uint]*models.User{}, nextID: 1}
	for _, user := range users {
		user.ID = s.nextID
		s.nextID++
		s.users[user.ID] = user
	}
	return s
}

func (s *fakeUserStore) GetByID(id uint) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *fakeUserStore) GetByEmail(email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeUserStore) CheckEmailExists(email string) (bool, error) {
	_, err := s.GetByEmail(email)
	return err == nil, nil
}

func (s *fakeUserStore) List(page, limit int) ([]models.User, int64, error) {
	var out []models.User
	for _, user := range s.users {
		out = append(out, *user)
	}
	return out, int64(len(out)), nil
}

func (s *fakeUserStore) Update(user *models.User) error {
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *fakeUserStore) UpdateAvatar(id uint, avatar string) error {
	user, ok := s.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.Avatar = avatar
	return nil
}

func (s *fakeUserStore) Delete(id uint) error {
	delete(s.users, id)
	return nil
}

func newTestUserService() (*UserService, *fakeUserStore) {
	// IDs line up with the role grants of newTestPermissions: 1 admin,
	// 2 operator, 3 normal user.
	store := newFakeUserStore(
		&models.User{Name: "Admin", Email: "admin@x.test"},
		&models.User{Name: "Operator", Email: "op@x.test"},
		&models.User{Name: "Guest", Email: "guest@x.test"},
	)
	return NewUserService(store, newTestPermissions()), store
}

func TestUserListAdminOnly(t *testing.T) {
	svc, _ := newTestUserService()

	users, total, err := svc.List(&models.User{ID: 1}, 1, 10)
	if err != nil {
		t.Fatalf("List() admin error = %v", err)
	}
	if total != 3 || len(users) != 3 {
		t.Errorf("List() = %d users total %d, want 3/3", len(users), total)
	}

	if _, _, err := svc.List(&models.User{ID: 2}, 1, 10); !errors.Is(err, ErrForbidden) {
		t.Errorf("List() operator error = %v, want ErrForbidden", err)
	}
	if _, _, err := svc.List(&models.User{ID: 3}, 1, 10); !errors.Is(err, ErrForbidden) {
		t.Errorf("List() guest error = %v, want ErrForbidden", err)
	}
}

func TestUserGetSelfOrAdmin(t *testing.T) {
	svc, _ := newTestUserService()

	tests := []struct {
		name     string
		callerID uint
		targetID uint
		wantErr  error
	}{
		{"self", 3, 3, nil},
		{"admin on other", 1, 3, nil},
		{"operator on other", 2, 3, ErrForbidden},
		{"guest on other", 3, 2, ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Get(&models.User{ID: tt.callerID}, tt.targetID)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Get() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Get() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUserUpdateEmailConflict(t *testing.T) {
	svc, _ := newTestUserService()
	caller := &models.User{ID: 3}

	if _, err := svc.Update(caller, 3, &models.UpdateUserRequest{Email: "admin@x.test"}); !errors.Is(err, ErrConflict) {
		t.Errorf("Update() taken email error = %v, want ErrConflict", err)
	}

	updated, err := svc.Update(caller, 3, &models.UpdateUserRequest{Name: "Renamed", Email: "new@x.test"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Name != "Renamed" || updated.Email != "new@x.test" {
		t.Errorf("Update() = %q/%q, want Renamed/new@x.test", updated.Name, updated.Email)
	}
}

func TestUserUpdateAvatar(t *testing.T) {
	svc, store := newTestUserService()

	updated, err := svc.UpdateAvatar(&models.User{ID: 3}, 3, "uploads/avatars/abc.png")
	if err != nil {
		t.Fatalf("UpdateAvatar() error = %v", err)
	}
	if updated.Avatar != "uploads/avatars/abc.png" {
		t.Errorf("UpdateAvatar() avatar = %q", updated.Avatar)
	}

	if _, err := svc.UpdateAvatar(&models.User{ID: 2}, 3, "x.png"); !errors.Is(err, ErrForbidden) {
		t.Errorf("UpdateAvatar() operator on other error = %v, want ErrForbidden", err)
	}
	if store.users[3].Avatar != "uploads/avatars/abc.png" {
		t.Error("UpdateAvatar() forbidden call must not change the stored avatar")
	}
}

func TestUserDelete(t *testing.T) {
	svc, store := newTestUserService()

	if err := svc.Delete(&models.User{ID: 3}, 2); !errors.Is(err, ErrForbidden) {
		t.Errorf("Delete() guest on other error = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(&models.User{ID: 1}, 3); err != nil {
		t.Fatalf("Delete() admin error = %v", err)
	}
	if _, ok := store.users[3]; ok {
		t.Error("Delete() should remove the account")
	}
}
