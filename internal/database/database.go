package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tripnest/hotel-services-backend/internal/config"
	"github.com/tripnest/hotel-services-backend/internal/models"
)

// InitDB initializes the database connection, runs migrations and seeds
// the system roles.
func InitDB() (*gorm.DB, error) {
	host := config.GetEnv("DB_HOST", "")
	port := config.GetEnv("DB_PORT", "")
	user := config.GetEnv("DB_USER", "")
	password := config.GetEnv("DB_PASSWORD", "")
	dbname := config.GetEnv("DB_NAME", "")
	sslmode := config.GetEnv("DB_SSLMODE", "disable")

	if host == "" || port == "" || user == "" || password == "" || dbname == "" {
		return nil, fmt.Errorf("missing required database environment variables. Please check your .env file")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)

	gormLogger := logger.New(
		logrus.New(),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Error,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	err = db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Token{},
		&models.SignUpCode{},
		&models.Hotel{},
		&models.ChatRoom{},
		&models.Message{},
		&models.UsersHotelsFavourite{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := seedRoles(db); err != nil {
		return nil, fmt.Errorf("failed to seed roles: %w", err)
	}

	logrus.Info("Database connection established and migrations completed")
	return db, nil
}

// seedRoles creates the system roles if they don't exist
func seedRoles(db *gorm.DB) error {
	defaultRoles := []struct {
		name        string
		description string
	}{
		{models.RoleAdmin, "Full access to every resource"},
		{models.RoleOperator, "Manages hotels and guest conversations"},
		{models.RoleNormalUser, "Regular guest account"},
	}

	for _, roleData := range defaultRoles {
		var count int64
		if err := db.Model(&models.Role{}).Where("name = ?", roleData.name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		logrus.Infof("Creating default role '%s'...", roleData.name)
		role := &models.Role{
			Name:        roleData.name,
			Description: roleData.description,
		}
		if err := db.Create(role).Error; err != nil {
			return err
		}
	}

	return nil
}
