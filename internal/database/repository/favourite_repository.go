package repository

import (
	"github.com/tripnest/hotel-services-backend/internal/models"
	"github.com/tripnest/hotel-services-backend/internal/utils"

	"gorm.io/gorm"
)

type FavouriteRepository struct {
	db *gorm.DB
}

func NewFavouriteRepository(db *gorm.DB) *FavouriteRepository {
	return &FavouriteRepository{db: db}
}

// Create adds a favourite
func (r *FavouriteRepository) Create(favourite *models.UsersHotelsFavourite) error {
	return r.db.Create(favourite).Error
}

// ListByUser returns a user's favourites with hotels preloaded
func (r *FavouriteRepository) ListByUser(userID uint, page, limit int) ([]models.UsersHotelsFavourite, int64, error) {
	var favourites []models.UsersHotelsFavourite
	var total int64

	query := r.db.Model(&models.UsersHotelsFavourite{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Preload("Hotel").
		Offset(utils.CalculateOffset(page, limit)).
		Limit(limit).
		Order("id").
		Find(&favourites).Error
	if err != nil {
		return nil, 0, err
	}
	return favourites, total, nil
}

// Exists checks whether a (user, hotel) favourite is present
func (r *FavouriteRepository) Exists(userID, hotelID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.UsersHotelsFavourite{}).
		Where("user_id = ? AND hotel_id = ?", userID, hotelID).
		Count(&count).Error
	return count > 0, err
}

// Delete removes a (user, hotel) favourite
func (r *FavouriteRepository) Delete(userID, hotelID uint) error {
	return r.db.Where("user_id = ? AND hotel_id = ?", userID, hotelID).
		Delete(&models.UsersHotelsFavourite{}).Error
}
