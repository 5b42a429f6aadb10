package repository

import (
	"github.com/tripnest/hotel-services-backend/internal/models"
	"github.com/tripnest/hotel-services-backend/internal/utils"

	"gorm.io/gorm"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

// Create creates a new hotel
func (r *HotelRepository) Create(hotel *models.Hotel) error {
	return r.db.Create(hotel).Error
}

// GetByID retrieves a hotel by ID
func (r *HotelRepository) GetByID(id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	err := r.db.First(&hotel, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

// GetByHotelBedsID retrieves a hotel by its external catalog id
func (r *HotelRepository) GetByHotelBedsID(hotelBedsID int) (*models.Hotel, error) {
	var hotel models.Hotel
	err := r.db.Where("hotel_beds_id = ?", hotelBedsID).First(&hotel).Error
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

// List returns hotels with pagination
func (r *HotelRepository) List(page, limit int) ([]models.Hotel, int64, error) {
	var hotels []models.Hotel
	var total int64

	query := r.db.Model(&models.Hotel{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Offset(utils.CalculateOffset(page, limit)).
		Limit(limit).
		Order("id").
		Find(&hotels).Error
	if err != nil {
		return nil, 0, err
	}
	return hotels, total, nil
}

// Search finds hotels whose name, city or address matches the query
func (r *HotelRepository) Search(q string, page, limit int) ([]models.Hotel, int64, error) {
	var hotels []models.Hotel
	var total int64

	pattern := "%" + q + "%"
	query := r.db.Model(&models.Hotel{}).
		Where("name ILIKE ? OR city ILIKE ? OR address ILIKE ?", pattern, pattern, pattern)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Offset(utils.CalculateOffset(page, limit)).
		Limit(limit).
		Order("id").
		Find(&hotels).Error
	if err != nil {
		return nil, 0, err
	}
	return hotels, total, nil
}

// GetAll returns every hotel, used by the inventory export
func (r *HotelRepository) GetAll() ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := r.db.Order("id").Find(&hotels).Error
	if err != nil {
		return nil, err
	}
	return hotels, nil
}

// Update saves a full hotel record
func (r *HotelRepository) Update(hotel *models.Hotel) error {
	return r.db.Save(hotel).Error
}

// UpdateFields applies a partial column update to a hotel
func (r *HotelRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Hotel{}).Where("id = ?", id).Updates(fields).Error
}

// Delete deletes a hotel
func (r *HotelRepository) Delete(id uint) error {
	return r.db.Delete(&models.Hotel{}, "id = ?", id).Error
}
