package services

import (
	"fmt"
	"time"

	"github.com/tripnest/hotel-services-backend/internal/models"
)

// HotelStore is the slice of the hotel repository the hotel service needs
type HotelStore interface {
	Create(hotel *models.Hotel) error
	GetByID(id uint) (*models.Hotel, error)
	GetByHotelBedsID(hotelBedsID int) (*models.Hotel, error)
	List(page, limit int) ([]models.Hotel, int64, error)
	Search(q string, page, limit int) ([]models.Hotel, int64, error)
	GetAll() ([]models.Hotel, error)
	Update(hotel *models.Hotel) error
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) error
}

// HotelService manages the hotel catalog. Reads are public; the handler
// gates writes behind CanManageHotels.
type HotelService struct {
	hotels HotelStore
}

func NewHotelService(hotels HotelStore) *HotelService {
	return &HotelService{hotels: hotels}
}

// List returns hotels with pagination
func (s *HotelService) List(page, limit int) ([]models.Hotel, int64, error) {
	return s.hotels.List(page, limit)
}

// Search finds hotels by free-text query
func (s *HotelService) Search(q string, page, limit int) ([]models.Hotel, int64, error) {
	return s.hotels.Search(q, page, limit)
}

// Get returns one hotel
func (s *HotelService) Get(id uint) (*models.Hotel, error) {
	hotel, err := s.hotels.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: hotel %d", ErrNotFound, id)
	}
	return hotel, nil
}

// GetAll returns the full inventory for export
func (s *HotelService) GetAll() ([]models.Hotel, error) {
	return s.hotels.GetAll()
}

// Create adds a hotel. A duplicate external catalog id is rejected.
func (s *HotelService) Create(req *models.CreateHotelRequest) (*models.Hotel, error) {
	if req.Name == "" || req.Email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrInvalidInput)
	}

	if req.HotelBedsID != nil {
		if _, err := s.hotels.GetByHotelBedsID(*req.HotelBedsID); err == nil {
			return nil, fmt.Errorf("%w: hotel with this HotelBeds id already exists", ErrConflict)
		}
	}

	status := req.Status
	if status == "" {
		status = models.HotelStatusPending
	}

	hotel := &models.Hotel{
		HotelBedsID:     req.HotelBedsID,
		Name:            req.Name,
		Description:     req.Description,
		Address:         req.Address,
		PostalCode:      req.PostalCode,
		Email:           req.Email,
		Phones:          req.Phones,
		City:            req.City,
		CountryCode:     req.CountryCode,
		StateCode:       req.StateCode,
		DestinationCode: req.DestinationCode,
		ZoneCode:        req.ZoneCode,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		Category:        req.Category,
		Images:          req.Images,
		Status:          status,
		CustomData:      req.CustomData,
		LastUpdated:     time.Now(),
	}
	if err := s.hotels.Create(hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

// Update edits a hotel. Hotels without an external catalog id accept
// every field; provider-synced hotels accept only status and customData,
// with customData merged into the existing blob rather than replaced.
func (s *HotelService) Update(id uint, req *models.UpdateHotelRequest) (*models.Hotel, error) {
	hotel, err := s.hotels.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: hotel %d", ErrNotFound, id)
	}

	if hotel.IsProviderSynced() {
		fields := map[string]interface{}{}
		if req.Status != "" {
			fields["status"] = req.Status
		}
		if req.CustomData != nil {
			fields["custom_data"] = hotel.CustomData.Merge(req.CustomData)
		}
		if len(fields) > 0 {
			if err := s.hotels.UpdateFields(id, fields); err != nil {
				return nil, err
			}
		}
		return s.hotels.GetByID(id)
	}

	applyHotelUpdate(hotel, req)
	if err := s.hotels.Update(hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

// Delete removes a hotel
func (s *HotelService) Delete(id uint) error {
	if _, err := s.hotels.GetByID(id); err != nil {
		return fmt.Errorf("%w: hotel %d", ErrNotFound, id)
	}
	return s.hotels.Delete(id)
}

func applyHotelUpdate(hotel *models.Hotel, req *models.UpdateHotelRequest) {
	if req.Name != "" {
		hotel.Name = req.Name
	}
	if req.Description != "" {
		hotel.Description = req.Description
	}
	if req.Address != "" {
		hotel.Address = req.Address
	}
	if req.PostalCode != "" {
		hotel.PostalCode = req.PostalCode
	}
	if req.Email != "" {
		hotel.Email = req.Email
	}
	if req.Phones != nil {
		hotel.Phones = req.Phones
	}
	if req.City != "" {
		hotel.City = req.City
	}
	if req.CountryCode != "" {
		hotel.CountryCode = req.CountryCode
	}
	if req.StateCode != "" {
		hotel.StateCode = req.StateCode
	}
	if req.DestinationCode != "" {
		hotel.DestinationCode = req.DestinationCode
	}
	if req.ZoneCode != "" {
		hotel.ZoneCode = req.ZoneCode
	}
	if req.Latitude != nil {
		hotel.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		hotel.Longitude = *req.Longitude
	}
	if req.Category != "" {
		hotel.Category = req.Category
	}
	if req.Images != nil {
		hotel.Images = req.Images
	}
	if req.Status != "" {
		hotel.Status = req.Status
	}
	if req.CustomData != nil {
		hotel.CustomData = hotel.CustomData.Merge(req.CustomData)
	}
}
