package auth

import (
	"time"

	"github.com/tripnest/hotel-services-backend/internal/database/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// TokenCleanupService periodically deletes session rows whose refresh
// expiry has passed. Access-only expiry is handled lazily at request
// time; this sweep is just storage hygiene.
type TokenCleanupService struct {
	tokenRepo *repository.TokenRepository
	interval  time.Duration
	stopChan  chan bool
}

func NewTokenCleanupService(db *gorm.DB) *TokenCleanupService {
	return &TokenCleanupService{
		tokenRepo: repository.NewTokenRepository(db),
		interval:  24 * time.Hour,
		stopChan:  make(chan bool),
	}
}

// Start starts the cleanup loop
func (s *TokenCleanupService) Start() {
	go s.run()
	logrus.Info("Token cleanup service started")
}

// Stop stops the cleanup loop
func (s *TokenCleanupService) Stop() {
	s.stopChan <- true
	logrus.Info("Token cleanup service stopped")
}

func (s *TokenCleanupService) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopChan:
			return
		}
	}
}

func (s *TokenCleanupService) cleanup() {
	logrus.Info("Starting token cleanup...")
	if err := s.tokenRepo.DeleteExpired(); err != nil {
		logrus.Errorf("Failed to cleanup tokens: %v", err)
		return
	}
	logrus.Info("Token cleanup completed")
}
