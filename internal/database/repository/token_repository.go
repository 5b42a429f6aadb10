package repository

import (
	"time"

	"github.com/tripnest/hotel-services-backend/internal/models"

	"gorm.io/gorm"
)

type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// Create creates a new token pair row
func (r *TokenRepository) Create(token *models.Token) error {
	return r.db.Create(token).Error
}

// GetByAccessToken retrieves a token row by access token value
func (r *TokenRepository) GetByAccessToken(accessToken string) (*models.Token, error) {
	var token models.Token
	err := r.db.Where("access_token = ?", accessToken).First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// GetByRefreshToken retrieves a token row by refresh token value
func (r *TokenRepository) GetByRefreshToken(refreshToken string) (*models.Token, error) {
	var token models.Token
	err := r.db.Where("refresh_token = ?", refreshToken).First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// Rotate replaces both token values and expiries on the row currently
// holding oldRefreshToken. The WHERE clause on the old value makes the
// rotation a compare-and-swap: of two concurrent callers presenting the
// same stale refresh token, exactly one matches a row. Returns the number
// of rows updated.
func (r *TokenRepository) Rotate(oldRefreshToken string, accessToken, refreshToken string, accessExpiresAt, refreshExpiresAt time.Time) (int64, error) {
	result := r.db.Model(&models.Token{}).
		Where("refresh_token = ?", oldRefreshToken).
		Updates(map[string]interface{}{
			"access_token":             accessToken,
			"refresh_token":            refreshToken,
			"access_token_expires_at":  accessExpiresAt,
			"refresh_token_expires_at": refreshExpiresAt,
		})
	return result.RowsAffected, result.Error
}

// Delete removes a single token row
func (r *TokenRepository) Delete(id uint) error {
	return r.db.Delete(&models.Token{}, "id = ?", id).Error
}

// DeleteAllForUser removes every token row of a user, invalidating all
// of their sessions
func (r *TokenRepository) DeleteAllForUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Token{}).Error
}

// DeleteExpired removes rows whose refresh expiry has passed. Rows with
// only the access token expired are kept: the refresh token can still
// mint a new pair.
func (r *TokenRepository) DeleteExpired() error {
	return r.db.Where("refresh_token_expires_at < ?", time.Now()).Delete(&models.Token{}).Error
}
