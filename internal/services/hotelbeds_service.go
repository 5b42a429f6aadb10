package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tripnest/hotel-services-backend/internal/config"
	"github.com/tripnest/hotel-services-backend/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	hotelBedsContentPath = "/hotel-content-api/1.0/hotels"
	hotelBedsStatusPath  = "/hotel-api/1.0/status"

	// Provider responses change rarely; a short cache keeps repeated
	// searches off the metered API.
	hotelBedsCacheTTL = 5 * time.Minute
)

// HotelUpserter is the slice of the hotel repository the sync path needs
type HotelUpserter interface {
	Create(hotel *models.Hotel) error
	GetByHotelBedsID(hotelBedsID int) (*models.Hotel, error)
	UpdateFields(id uint, fields map[string]interface{}) error
}

// HotelBedsService proxies the HotelBeds catalog API. Every instance
// carries its own HTTP client; credentials come from config, never from
// process globals.
type HotelBedsService struct {
	cfg        *config.HotelBedsConfig
	httpClient *http.Client
	cache      *redis.Client
	hotels     HotelUpserter
}

// NewHotelBedsService builds a provider client. A nil redis client
// disables response caching.
func NewHotelBedsService(cfg *config.HotelBedsConfig, cache *redis.Client, hotels HotelUpserter) *HotelBedsService {
	return &HotelBedsService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cache:      cache,
		hotels:     hotels,
	}
}

// CheckStatus pings the provider's status endpoint and reports whether
// the API is reachable with the configured credentials.
func (s *HotelBedsService) CheckStatus(ctx context.Context) (map[string]interface{}, error) {
	body, err := s.get(ctx, s.cfg.BaseURL+hotelBedsStatusPath)
	if err != nil {
		return nil, err
	}

	var status map[string]interface{}
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, fmt.Errorf("failed to decode HotelBeds status response: %w", err)
	}
	return status, nil
}

// SearchHotels queries the provider's content API. Page/limit are
// translated to the provider's 1-based from/to window. Responses are
// cached briefly when redis is available.
func (s *HotelBedsService) SearchHotels(ctx context.Context, params *models.HotelBedsSearchParams) (*models.HotelBedsSearchResponse, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}

	cacheKey := s.searchCacheKey(params)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey).Bytes()
		if err == nil {
			var resp models.HotelBedsSearchResponse
			if err := json.Unmarshal(cached, &resp); err == nil {
				return &resp, nil
			}
		} else if err != redis.Nil {
			logrus.Warnf("HotelBeds cache read failed: %v", err)
		}
	}

	body, err := s.get(ctx, s.searchURL(params))
	if err != nil {
		return nil, err
	}

	var resp models.HotelBedsSearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode HotelBeds search response: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, body, hotelBedsCacheTTL).Err(); err != nil {
			logrus.Warnf("HotelBeds cache write failed: %v", err)
		}
	}

	return &resp, nil
}

// SyncHotels pulls one provider page and upserts it into the local
// catalog. New hotels land as pending; existing rows get their
// provider-owned fields refreshed while status and customData survive.
func (s *HotelBedsService) SyncHotels(ctx context.Context, params *models.HotelBedsSearchParams) (*models.SyncResult, error) {
	resp, err := s.SearchHotels(ctx, params)
	if err != nil {
		return nil, err
	}

	result := &models.SyncResult{BatchID: uuid.New().String()}
	for i := range resp.Hotels {
		if err := s.upsertHotel(&resp.Hotels[i]); err != nil {
			logrus.Errorf("Sync batch %s: hotel %d failed: %v", result.BatchID, resp.Hotels[i].Code, err)
			result.Errors++
			continue
		}
		result.Synced++
	}

	logrus.Infof("HotelBeds sync batch %s: %d synced, %d errors", result.BatchID, result.Synced, result.Errors)
	return result, nil
}

func (s *HotelBedsService) upsertHotel(content *models.HotelBedsContent) error {
	existing, err := s.hotels.GetByHotelBedsID(content.Code)
	if err != nil {
		code := content.Code
		hotel := &models.Hotel{
			HotelBedsID:     &code,
			Name:            content.Name.Content,
			Description:     content.Description.Content,
			Address:         content.Address.Content,
			PostalCode:      content.PostalCode,
			Email:           content.Email,
			Phones:          content.Phones,
			City:            content.City.Content,
			CountryCode:     content.CountryCode,
			StateCode:       content.StateCode,
			DestinationCode: content.Destination,
			ZoneCode:        strconv.Itoa(content.ZoneCode),
			Latitude:        content.Coordinates.Latitude,
			Longitude:       content.Coordinates.Longitude,
			Category:        content.Category,
			Images:          imagePaths(content.Images),
			Status:          models.HotelStatusPending,
			LastUpdated:     time.Now(),
		}
		return s.hotels.Create(hotel)
	}

	fields := map[string]interface{}{
		"name":             content.Name.Content,
		"description":      content.Description.Content,
		"address":          content.Address.Content,
		"postal_code":      content.PostalCode,
		"email":            content.Email,
		"phones":           content.Phones,
		"city":             content.City.Content,
		"country_code":     content.CountryCode,
		"state_code":       content.StateCode,
		"destination_code": content.Destination,
		"zone_code":        strconv.Itoa(content.ZoneCode),
		"latitude":         content.Coordinates.Latitude,
		"longitude":        content.Coordinates.Longitude,
		"category":         content.Category,
		"images":           imagePaths(content.Images),
		"last_updated":     time.Now(),
	}
	return s.hotels.UpdateFields(existing.ID, fields)
}

func (s *HotelBedsService) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Api-key", s.cfg.APIKey)
	req.Header.Set("X-Signature", s.signature(time.Now()))
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HotelBeds request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HotelBeds returned status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// signature is the provider's request auth: the hex sha256 of
// apiKey + secret + current unix seconds.
func (s *HotelBedsService) signature(now time.Time) string {
	sum := sha256.Sum256([]byte(s.cfg.APIKey + s.cfg.Secret + strconv.FormatInt(now.Unix(), 10)))
	return hex.EncodeToString(sum[:])
}

// searchURL maps page/limit to the provider's inclusive from/to window
func (s *HotelBedsService) searchURL(params *models.HotelBedsSearchParams) string {
	from := (params.Page-1)*params.Limit + 1
	to := params.Page * params.Limit

	q := url.Values{}
	q.Set("fields", "all")
	q.Set("language", "ENG")
	q.Set("useSecondaryLanguage", "false")
	q.Set("from", strconv.Itoa(from))
	q.Set("to", strconv.Itoa(to))
	if params.DestinationCode != "" {
		q.Set("destinationCode", params.DestinationCode)
	}
	return s.cfg.BaseURL + hotelBedsContentPath + "?" + q.Encode()
}

func (s *HotelBedsService) searchCacheKey(params *models.HotelBedsSearchParams) string {
	return fmt.Sprintf("hotelbeds:search:%s:%d:%d", params.DestinationCode, params.Page, params.Limit)
}

func imagePaths(images []models.HotelBedsImage) models.StringList {
	paths := make(models.StringList, 0, len(images))
	for _, img := range images {
		paths = append(paths, img.Path)
	}
	return paths
}
