package repository

import (
	"github.com/tripnest/hotel-services-backend/internal/models"

	"gorm.io/gorm"
)

type SignUpCodeRepository struct {
	db *gorm.DB
}

func NewSignUpCodeRepository(db *gorm.DB) *SignUpCodeRepository {
	return &SignUpCodeRepository{db: db}
}

// Create creates a new sign-up code
func (r *SignUpCodeRepository) Create(code *models.SignUpCode) error {
	return r.db.Create(code).Error
}

// GetByCode retrieves a sign-up code by exact code value
func (r *SignUpCodeRepository) GetByCode(code string) (*models.SignUpCode, error) {
	var signUpCode models.SignUpCode
	err := r.db.Preload("Role").Where("code = ?", code).First(&signUpCode).Error
	if err != nil {
		return nil, err
	}
	return &signUpCode, nil
}

// CodeExists checks whether a code value is already taken
func (r *SignUpCodeRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.SignUpCode{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

// GetAll returns all sign-up codes with role and creator preloaded
func (r *SignUpCodeRepository) GetAll() ([]models.SignUpCode, error) {
	var codes []models.SignUpCode
	err := r.db.Preload("Role").Preload("Creator").Order("id").Find(&codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}

// Delete removes a sign-up code by id
func (r *SignUpCodeRepository) Delete(id uint) error {
	return r.db.Delete(&models.SignUpCode{}, "id = ?", id).Error
}
