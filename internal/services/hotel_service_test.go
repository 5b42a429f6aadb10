package services

import (
	"errors"
	"testing"

	"github.com/tripnest/hotel-services-backend/internal/models"
)

type fakeHotelStore struct {
	hotels map[uint]*models.Hotel
	nextID uint
}

func newFakeHotelStore() *fakeHotelStore {
	return &fakeHotelStore{hotels: map[uint]*models.Hotel{}, nextID: 1}
}

func (s *fakeHotelStore) Create(hotel *models.Hotel) error {
	hotel.ID = s.nextID
	s.nextID++
	copied := *hotel
	s.hotels[hotel.ID] = &copied
	return nil
}

func (s *fakeHotelStore) GetByID(id uint) (*models.Hotel, error) {
	hotel, ok := s.hotels[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	copied := *hotel
	return &copied, nil
}

func (s *fakeHotelStore) GetByHotelBedsID(hotelBedsID int) (*models.Hotel, error) {
	for _, hotel := range s.hotels {
		if hotel.HotelBedsID != nil && *hotel.HotelBedsID == hotelBedsID {
			copied := *hotel
			return &copied, nil
		}
	}
	return nil, errors.New("record not found")
}

func (s *fakeHotelStore) List(page, limit int) ([]models.Hotel, int64, error) {
	var out []models.Hotel
	for _, hotel := range s.hotels {
		out = append(out, *hotel)
	}
	return out, int64(len(s.hotels)), nil
}

func (s *fakeHotelStore) Search(q string, page, limit int) ([]models.Hotel, int64, error) {
	return s.List(page, limit)
}

func (s *fakeHotelStore) GetAll() ([]models.Hotel, error) {
	out, _, _ := s.List(1, 100)
	return out, nil
}

func (s *fakeHotelStore) Update(hotel *models.Hotel) error {
	copied := *hotel
	s.hotels[hotel.ID] = &copied
	return nil
}

func (s *fakeHotelStore) UpdateFields(id uint, fields map[string]interface{}) error {
	hotel, ok := s.hotels[id]
	if !ok {
		return errors.New("record not found")
	}
	for key, value := range fields {
		switch key {
		case "status":
			hotel.Status = value.(string)
		case "custom_data":
			hotel.CustomData = value.(models.JSONMap)
		case "name":
			hotel.Name = value.(string)
		}
	}
	return nil
}

func (s *fakeHotelStore) Delete(id uint) error {
	delete(s.hotels, id)
	return nil
}

func TestHotelCreate(t *testing.T) {
	store := newFakeHotelStore()
	svc := NewHotelService(store)

	hotel, err := svc.Create(&models.CreateHotelRequest{Name: "Seaside", Email: "stay@seaside.test"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if hotel.Status != models.HotelStatusPending {
		t.Errorf("Create() status = %q, want pending default", hotel.Status)
	}

	if _, err := svc.Create(&models.CreateHotelRequest{Name: "", Email: "x@y.test"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Create() without name error = %v, want ErrInvalidInput", err)
	}
}

func TestHotelCreateDuplicateProviderID(t *testing.T) {
	store := newFakeHotelStore()
	svc := NewHotelService(store)

	providerID := 777
	if _, err := svc.Create(&models.CreateHotelRequest{Name: "A", Email: "a@x.test", HotelBedsID: &providerID}); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}
	if _, err := svc.Create(&models.CreateHotelRequest{Name: "B", Email: "b@x.test", HotelBedsID: &providerID}); !errors.Is(err, ErrConflict) {
		t.Errorf("Create() duplicate provider id error = %v, want ErrConflict", err)
	}
}

func TestHotelUpdateManual(t *testing.T) {
	store := newFakeHotelStore()
	svc := NewHotelService(store)

	created, _ := svc.Create(&models.CreateHotelRequest{Name: "Seaside", Email: "stay@seaside.test", City: "Palma"})

	updated, err := svc.Update(created.ID, &models.UpdateHotelRequest{Name: "Seaside Grand", City: "Alcudia"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Name != "Seaside Grand" || updated.City != "Alcudia" {
		t.Errorf("Update() = %q/%q, want full-field edit on a manual hotel", updated.Name, updated.City)
	}
}

func TestHotelUpdateProviderSyncedLocksFields(t *testing.T) {
	store := newFakeHotelStore()
	svc := NewHotelService(store)

	providerID := 42
	created, _ := svc.Create(&models.CreateHotelRequest{
		Name:        "Provider Palace",
		Email:       "p@x.test",
		HotelBedsID: &providerID,
		CustomData:  models.JSONMap{"tier": "gold", "notes": "keep"},
	})

	updated, err := svc.Update(created.ID, &models.UpdateHotelRequest{
		Name:       "Hacked Name",
		Status:     models.HotelStatusActive,
		CustomData: models.JSONMap{"tier": "platinum"},
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.Name != "Provider Palace" {
		t.Errorf("Update() name = %q, provider-owned fields must not change", updated.Name)
	}
	if updated.Status != models.HotelStatusActive {
		t.Errorf("Update() status = %q, want active", updated.Status)
	}
	// customData merges instead of replacing.
	if updated.CustomData["tier"] != "platinum" {
		t.Errorf("Update() customData tier = %v, want platinum", updated.CustomData["tier"])
	}
	if updated.CustomData["notes"] != "keep" {
		t.Errorf("Update() customData notes = %v, merge must keep untouched keys", updated.CustomData["notes"])
	}
}

func TestHotelDelete(t *testing.T) {
	store := newFakeHotelStore()
	svc := NewHotelService(store)

	created, _ := svc.Create(&models.CreateHotelRequest{Name: "Seaside", Email: "s@x.test"})
	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := svc.Delete(created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() missing hotel error = %v, want ErrNotFound", err)
	}
}
