package services

import (
	"fmt"

	"github.com/tripnest/hotel-services-backend/internal/models"
)

// FavouriteStore is the slice of the favourites repository the service
// needs
type FavouriteStore interface {
	Create(favourite *models.UsersHotelsFavourite) error
	ListByUser(userID uint, page, limit int) ([]models.UsersHotelsFavourite, int64, error)
	Exists(userID, hotelID uint) (bool, error)
	Delete(userID, hotelID uint) error
}

// FavouriteService manages a user's favourite hotels. The handler gates
// the routes self-or-admin; the service enforces pair uniqueness.
type FavouriteService struct {
	favourites FavouriteStore
	hotels     HotelGetter
}

func NewFavouriteService(favourites FavouriteStore, hotels HotelGetter) *FavouriteService {
	return &FavouriteService{favourites: favourites, hotels: hotels}
}

// List returns a user's favourites with hotels attached
func (s *FavouriteService) List(userID uint, page, limit int) ([]models.UsersHotelsFavourite, int64, error) {
	return s.favourites.ListByUser(userID, page, limit)
}

// Add marks a hotel as favourite, once per (user, hotel) pair
func (s *FavouriteService) Add(userID, hotelID uint) (*models.UsersHotelsFavourite, error) {
	if _, err := s.hotels.GetByID(hotelID); err != nil {
		return nil, fmt.Errorf("%w: hotel %d", ErrNotFound, hotelID)
	}

	exists, err := s.favourites.Exists(userID, hotelID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: hotel already in favourites", ErrConflict)
	}

	favourite := &models.UsersHotelsFavourite{UserID: userID, HotelID: hotelID}
	if err := s.favourites.Create(favourite); err != nil {
		return nil, err
	}
	return favourite, nil
}

// Remove deletes a favourite
func (s *FavouriteService) Remove(userID, hotelID uint) error {
	exists, err := s.favourites.Exists(userID, hotelID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: favourite", ErrNotFound)
	}
	return s.favourites.Delete(userID, hotelID)
}

// Check reports whether a hotel is in the user's favourites
func (s *FavouriteService) Check(userID, hotelID uint) (bool, error) {
	return s.favourites.Exists(userID, hotelID)
}
