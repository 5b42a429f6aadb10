package services

import (
	"errors"
	"testing"

	"github.com/tripnest/hotel-services-backend/internal/models"

	"gorm.io/gorm"
)

type fakeRoleStore struct {
	roles       map[uint]*models.Role
	assignments map[uint]map[uint]bool
	nextID      uint
}

func newFakeRoleStore(names ...string) *fakeRoleStore {
	s := &fakeRoleStore{roles: map[uint]*models.Role{}, assignments: map[uint]map[uint]bool{}, nextID: 1}
	for _, name := range names {
		s.Create(&models.Role{Name: name})
	}
	return s
}

func (s *fakeRoleStore) Create(role *models.Role) error {
	role.ID = s.nextID
	s.nextID++
	copied := *role
	s.roles[role.ID] = &copied
	return nil
}

func (s *fakeRoleStore) GetByID(id uint) (*models.Role, error) {
	role, ok := s.roles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *role
	return &copied, nil
}

func (s *fakeRoleStore) GetByName(name string) (*models.Role, error) {
	for _, role := range s.roles {
		if role.Name == name {
			copied := *role
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeRoleStore) GetAll() ([]models.Role, error) {
	var out []models.Role
	for _, role := range s.roles {
		out = append(out, *role)
	}
	return out, nil
}

func (s *fakeRoleStore) Update(role *models.Role) error {
	copied := *role
	s.roles[role.ID] = &copied
	return nil
}

func (s *fakeRoleStore) Delete(id uint) error {
	delete(s.roles, id)
	return nil
}

func (s *fakeRoleStore) CheckNameExists(name string) (bool, error) {
	_, err := s.GetByName(name)
	return err == nil, nil
}

func (s *fakeRoleStore) AssignRoleToUser(userID, roleID uint) error {
	if s.assignments[userID] == nil {
		s.assignments[userID] = map[uint]bool{}
	}
	s.assignments[userID][roleID] = true
	return nil
}

func (s *fakeRoleStore) RemoveRoleFromUser(userID, roleID uint) error {
	delete(s.assignments[userID], roleID)
	return nil
}

func newTestRoleService() (*RoleService, *fakeRoleStore) {
	store := newFakeRoleStore(models.RoleAdmin, models.RoleOperator, models.RoleNormalUser)
	return NewRoleService(store), store
}

func TestRoleCreate(t *testing.T) {
	svc, _ := newTestRoleService()

	role, err := svc.Create(&models.CreateRoleRequest{Name: "concierge"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if role.ID == 0 {
		t.Error("Create() should assign an id")
	}

	if _, err := svc.Create(&models.CreateRoleRequest{Name: "concierge"}); !errors.Is(err, ErrConflict) {
		t.Errorf("Create() duplicate name error = %v, want ErrConflict", err)
	}
	if _, err := svc.Create(&models.CreateRoleRequest{Name: ""}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Create() empty name error = %v, want ErrInvalidInput", err)
	}
}

func TestRoleUpdateProtectsSystemNames(t *testing.T) {
	svc, store := newTestRoleService()

	adminRole, _ := store.GetByName(models.RoleAdmin)
	if _, err := svc.Update(adminRole.ID, &models.UpdateRoleRequest{Name: "super"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Update() rename system role error = %v, want ErrInvalidInput", err)
	}

	// Redescribing a system role is allowed.
	updated, err := svc.Update(adminRole.ID, &models.UpdateRoleRequest{Description: "full access"})
	if err != nil {
		t.Fatalf("Update() description error = %v", err)
	}
	if updated.Description != "full access" {
		t.Errorf("Update() description = %q", updated.Description)
	}
}

func TestRoleDeleteProtectsSystemRoles(t *testing.T) {
	svc, store := newTestRoleService()

	for _, name := range []string{models.RoleAdmin, models.RoleOperator} {
		role, _ := store.GetByName(name)
		if err := svc.Delete(role.ID); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Delete(%s) error = %v, want ErrInvalidInput", name, err)
		}
	}

	custom, _ := svc.Create(&models.CreateRoleRequest{Name: "concierge"})
	if err := svc.Delete(custom.ID); err != nil {
		t.Errorf("Delete() custom role error = %v", err)
	}
}

func TestRoleAssignAndRemove(t *testing.T) {
	svc, store := newTestRoleService()

	operatorRole, _ := store.GetByName(models.RoleOperator)

	if err := svc.Assign(operatorRole.ID, 7); err != nil {
		t.Fatalf("Assign() error = %v", err)
	}
	if !store.assignments[7][operatorRole.ID] {
		t.Error("Assign() should record the grant")
	}

	if err := svc.Remove(operatorRole.ID, 7); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if store.assignments[7][operatorRole.ID] {
		t.Error("Remove() should revoke the grant")
	}

	if err := svc.Assign(999, 7); !errors.Is(err, ErrNotFound) {
		t.Errorf("Assign() missing role error = %v, want ErrNotFound", err)
	}
}
