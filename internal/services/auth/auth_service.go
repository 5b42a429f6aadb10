package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/tripnest/hotel-services-backend/internal/config"
	"github.com/tripnest/hotel-services-backend/internal/database/repository"
	"github.com/tripnest/hotel-services-backend/internal/models"
	"github.com/tripnest/hotel-services-backend/internal/services"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserStore is the slice of the user repository the auth flow needs
type UserStore interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	CheckEmailExists(email string) (bool, error)
}

// TokenStore persists opaque access/refresh pairs
type TokenStore interface {
	Create(token *models.Token) error
	GetByAccessToken(accessToken string) (*models.Token, error)
	GetByRefreshToken(refreshToken string) (*models.Token, error)
	Rotate(oldRefreshToken string, accessToken, refreshToken string, accessExpiresAt, refreshExpiresAt time.Time) (int64, error)
	Delete(id uint) error
	DeleteAllForUser(userID uint) error
	DeleteExpired() error
}

// RoleStore resolves and assigns roles during registration
type RoleStore interface {
	GetByName(name string) (*models.Role, error)
	AssignRoleToUser(userID, roleID uint) error
}

// CodeStore persists sign-up invitation codes
type CodeStore interface {
	Create(code *models.SignUpCode) error
	GetByCode(code string) (*models.SignUpCode, error)
	CodeExists(code string) (bool, error)
	GetAll() ([]models.SignUpCode, error)
	Delete(id uint) error
}

// AuthService proves identity from credentials and mints, rotates and
// revokes opaque bearer tokens. Tokens are random values compared by
// exact lookup, never decoded.
type AuthService struct {
	userStore       UserStore
	tokenStore      TokenStore
	roleStore       RoleStore
	codeStore       CodeStore
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
	signUpCodeTTL   time.Duration
}

// NewAuthService creates an auth service wired to the database
func NewAuthService(db *gorm.DB) *AuthService {
	accessTokenTTL := config.GetEnvAsDuration("ACCESS_TOKEN_TTL", time.Hour)
	refreshTokenTTL := config.GetEnvAsDuration("REFRESH_TOKEN_TTL", 30*24*time.Hour)

	logrus.Infof("Access token TTL: %s", accessTokenTTL)
	logrus.Infof("Refresh token TTL: %s", refreshTokenTTL)

	return &AuthService{
		userStore:       repository.NewUserRepository(db),
		tokenStore:      repository.NewTokenRepository(db),
		roleStore:       repository.NewRoleRepository(db),
		codeStore:       repository.NewSignUpCodeRepository(db),
		accessTokenTTL:  accessTokenTTL,
		refreshTokenTTL: refreshTokenTTL,
		signUpCodeTTL:   24 * time.Hour,
	}
}

// Register creates a new account, optionally redeeming a sign-up code,
// and issues a first token pair.
func (s *AuthService) Register(req *models.RegisterRequest) (*models.User, *models.TokenPair, error) {
	exists, err := s.userStore.CheckEmailExists(req.Email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, nil, fmt.Errorf("%w: email already registered", services.ErrConflict)
	}

	// Validate the code before creating the user so a bad code fails the
	// whole registration.
	var code *models.SignUpCode
	if req.SignUpCode != "" {
		code, err = s.ValidateSignUpCode(req.SignUpCode)
		if err != nil {
			return nil, nil, err
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
	}
	if err := s.userStore.Create(user); err != nil {
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	if code != nil {
		if err := s.roleStore.AssignRoleToUser(user.ID, code.RoleID); err != nil {
			return nil, nil, fmt.Errorf("failed to assign role from sign-up code: %w", err)
		}
		// Single use: the code is gone the moment it grants a role.
		if err := s.codeStore.Delete(code.ID); err != nil {
			logrus.Warnf("Failed to delete redeemed sign-up code %d: %v", code.ID, err)
		}
	}

	tokens, err := s.IssueTokens(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Login verifies credentials and issues a fresh token pair. The same
// error covers unknown email and wrong password.
func (s *AuthService) Login(req *models.LoginRequest) (*models.User, *models.TokenPair, error) {
	user, err := s.userStore.GetByEmail(req.Email)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid credentials", services.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, nil, fmt.Errorf("%w: invalid credentials", services.ErrUnauthorized)
	}

	tokens, err := s.IssueTokens(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// IssueTokens generates an opaque access/refresh pair and persists it as
// one session row.
func (s *AuthService) IssueTokens(userID uint) (*models.TokenPair, error) {
	accessToken, err := generateOpaqueToken()
	if err != nil {
		return nil, err
	}
	refreshToken, err := generateOpaqueToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	token := &models.Token{
		UserID:                userID,
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		AccessTokenExpiresAt:  now.Add(s.accessTokenTTL),
		RefreshTokenExpiresAt: now.Add(s.refreshTokenTTL),
	}
	if err := s.tokenStore.Create(token); err != nil {
		return nil, fmt.Errorf("failed to store token pair: %w", err)
	}

	return &models.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh rotates a session's token pair. The rotation is a conditional
// update keyed on the presented refresh value, so of two concurrent
// callers holding the same stale token only one succeeds.
func (s *AuthService) Refresh(refreshToken string) (*models.TokenPair, error) {
	token, err := s.tokenStore.GetByRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid refresh token", services.ErrUnauthorized)
	}
	if !token.RefreshTokenExpiresAt.After(time.Now()) {
		return nil, fmt.Errorf("%w: refresh token expired", services.ErrUnauthorized)
	}

	newAccessToken, err := generateOpaqueToken()
	if err != nil {
		return nil, err
	}
	newRefreshToken, err := generateOpaqueToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rows, err := s.tokenStore.Rotate(refreshToken, newAccessToken, newRefreshToken,
		now.Add(s.accessTokenTTL), now.Add(s.refreshTokenTTL))
	if err != nil {
		return nil, fmt.Errorf("failed to rotate tokens: %w", err)
	}
	if rows == 0 {
		// Lost the race: another caller rotated this value first.
		return nil, fmt.Errorf("%w: refresh token already used", services.ErrUnauthorized)
	}

	return &models.TokenPair{AccessToken: newAccessToken, RefreshToken: newRefreshToken}, nil
}

// Revoke deletes every session of a user
func (s *AuthService) Revoke(userID uint) error {
	if err := s.tokenStore.DeleteAllForUser(userID); err != nil {
		return fmt.Errorf("failed to revoke tokens: %w", err)
	}
	return nil
}

// AuthenticateBearer resolves an access token to its user. Expired
// access tokens are purged on first use after expiry.
func (s *AuthService) AuthenticateBearer(accessToken string) (*models.User, error) {
	token, err := s.tokenStore.GetByAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid token", services.ErrUnauthorized)
	}
	if !token.AccessTokenExpiresAt.After(time.Now()) {
		if err := s.tokenStore.Delete(token.ID); err != nil {
			logrus.Warnf("Failed to purge expired token %d: %v", token.ID, err)
		}
		return nil, fmt.Errorf("%w: token has expired", services.ErrUnauthorized)
	}

	user, err := s.userStore.GetByID(token.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: user not found", services.ErrUnauthorized)
	}
	return user, nil
}

// CreateSignUpCode mints an operator invitation code valid for 24 hours.
// A missing operator role is a hard failure, never substituted with a
// guessed id.
func (s *AuthService) CreateSignUpCode(creator *models.User) (*models.SignUpCode, error) {
	role, err := s.roleStore.GetByName(models.RoleOperator)
	if err != nil {
		return nil, fmt.Errorf("operator role lookup failed: %w", err)
	}

	code, err := s.generateUniqueCode()
	if err != nil {
		return nil, err
	}

	signUpCode := &models.SignUpCode{
		Code:      code,
		RoleID:    role.ID,
		ExpiresAt: time.Now().Add(s.signUpCodeTTL),
		CreatedBy: creator.ID,
	}
	if err := s.codeStore.Create(signUpCode); err != nil {
		return nil, fmt.Errorf("failed to store sign-up code: %w", err)
	}
	return signUpCode, nil
}

// ValidateSignUpCode looks a code up without consuming it. An expired
// code is deleted as a side effect of the failed validation.
func (s *AuthService) ValidateSignUpCode(code string) (*models.SignUpCode, error) {
	signUpCode, err := s.codeStore.GetByCode(code)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid sign-up code", services.ErrInvalidInput)
	}
	if !signUpCode.ExpiresAt.After(time.Now()) {
		if err := s.codeStore.Delete(signUpCode.ID); err != nil {
			logrus.Warnf("Failed to delete expired sign-up code %d: %v", signUpCode.ID, err)
		}
		return nil, fmt.Errorf("%w: sign-up code expired", services.ErrInvalidInput)
	}
	return signUpCode, nil
}

// ListSignUpCodes returns all codes with role and creator information
func (s *AuthService) ListSignUpCodes() ([]models.SignUpCode, error) {
	return s.codeStore.GetAll()
}

// DeleteSignUpCode removes a code by id
func (s *AuthService) DeleteSignUpCode(id uint) error {
	return s.codeStore.Delete(id)
}

// generateUniqueCode produces an 8-hex-character uppercase code,
// retrying until no stored code collides.
func (s *AuthService) generateUniqueCode() (string, error) {
	for {
		buf := make([]byte, 4)
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to generate code: %w", err)
		}
		code := strings.ToUpper(hex.EncodeToString(buf))

		exists, err := s.codeStore.CodeExists(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
}

// generateOpaqueToken returns 256 bits from a secure random source,
// hex-encoded.
func generateOpaqueToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
