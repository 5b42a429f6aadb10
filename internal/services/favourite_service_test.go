package services

import (
	"errors"
	"testing"

	"github.com/tripnest/hotel-services-backend/internal/models"
)

type fakeFavouriteStore struct {
	rows   map[uint]*models.UsersHotelsFavourite
	nextID uint
}

func newFakeFavouriteStore() *fakeFavouriteStore {
	return &fakeFavouriteStore{rows: map[uint]*models.UsersHotelsFavourite{}, nextID: 1}
}

func (s *fakeFavouriteStore) Create(favourite *models.UsersHotelsFavourite) error {
	favourite.ID = s.nextID
	s.nextID++
	copied := *favourite
	s.rows[favourite.ID] = &copied
	return nil
}

func (s *fakeFavouriteStore) ListByUser(userID uint, page, limit int) ([]models.UsersHotelsFavourite, int64, error) {
	var out []models.UsersHotelsFavourite
	for _, row := range s.rows {
		if row.UserID == userID {
			out = append(out, *row)
		}
	}
	return out, int64(len(out)), nil
}

func (s *fakeFavouriteStore) Exists(userID, hotelID uint) (bool, error) {
	for _, row := range s.rows {
		if row.UserID == userID && row.HotelID == hotelID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeFavouriteStore) Delete(userID, hotelID uint) error {
	for id, row := range s.rows {
		if row.UserID == userID && row.HotelID == hotelID {
			delete(s.rows, id)
		}
	}
	return nil
}

func newTestFavouriteService() *FavouriteService {
	hotels := &fakeHotelGetter{ids: map[uint]bool{100: true, 200: true}}
	return NewFavouriteService(newFakeFavouriteStore(), hotels)
}

func TestFavouriteAdd(t *testing.T) {
	svc := newTestFavouriteService()

	favourite, err := svc.Add(3, 100)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if favourite.UserID != 3 || favourite.HotelID != 100 {
		t.Errorf("Add() = %d/%d, want 3/100", favourite.UserID, favourite.HotelID)
	}

	if _, err := svc.Add(3, 100); !errors.Is(err, ErrConflict) {
		t.Errorf("Add() duplicate error = %v, want ErrConflict", err)
	}
	if _, err := svc.Add(3, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Add() missing hotel error = %v, want ErrNotFound", err)
	}
}

func TestFavouriteRemove(t *testing.T) {
	svc := newTestFavouriteService()

	svc.Add(3, 100)
	if err := svc.Remove(3, 100); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := svc.Remove(3, 100); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove() absent favourite error = %v, want ErrNotFound", err)
	}
}

func TestFavouriteCheckAndList(t *testing.T) {
	svc := newTestFavouriteService()

	svc.Add(3, 100)
	svc.Add(3, 200)
	svc.Add(4, 100)

	isFavourite, err := svc.Check(3, 100)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if !isFavourite {
		t.Error("Check() = false, want true")
	}

	isFavourite, _ = svc.Check(4, 200)
	if isFavourite {
		t.Error("Check() = true for a pair never added")
	}

	list, total, err := svc.List(3, 1, 10)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 2 || len(list) != 2 {
		t.Errorf("List() = %d rows total %d, want 2/2", len(list), total)
	}
}
