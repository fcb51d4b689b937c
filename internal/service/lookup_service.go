package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"nutritional-planner/config"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

// ErrLookupUnavailable is returned whenever the external nutrition data
// source cannot produce results: missing key, timeout, transport failure or
// a non-success status. Callers degrade to a placeholder, never fail hard.
var ErrLookupUnavailable = errors.New("nutrition data unavailable")

// FoodRecord is one food item from the USDA FoodData Central list endpoint.
type FoodRecord struct {
	FDCID       int64  `json:"fdcId"`
	Description string `json:"description"`
	DataType    string `json:"dataType,omitempty"`
}

// LookupService fetches real-time nutrition records from FoodData Central.
// Results are memoized in-process with a TTL so repeated form submissions
// do not hammer the upstream API.
type LookupService interface {
	FetchFoods(ctx context.Context) ([]FoodRecord, error)
}

type lookupService struct {
	cfg    config.LookupConfig
	log    *logrus.Logger
	client *http.Client
	cache  *gocache.Cache
}

const (
	lookupCacheKey = "fdc.foods"
	lookupPageSize = 5
)

func NewLookupService(cfg config.LookupConfig, log *logrus.Logger) LookupService {
	return &lookupService{
		cfg: cfg,
		log: log,
		// Per-request deadlines come from the caller's context; the client
		// timeout is a backstop.
		client: &http.Client{Timeout: cfg.Timeout},
		cache:  gocache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
	}
}

// FetchFoods returns the first few food records from the upstream list
// endpoint. The call is bounded by ctx plus the configured timeout; any
// failure surfaces as ErrLookupUnavailable.
func (s *lookupService) FetchFoods(ctx context.Context) ([]FoodRecord, error) {
	if s.cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: no API key configured", ErrLookupUnavailable)
	}

	if cached, found := s.cache.Get(lookupCacheKey); found {
		return cached.([]FoodRecord), nil
	}

	endpoint := fmt.Sprintf("%s/foods/list?api_key=%s&pageSize=%d",
		s.cfg.BaseURL, url.QueryEscape(s.cfg.APIKey), lookupPageSize)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		s.log.Warnf("Failed to build lookup request: %+v", err)
		return nil, fmt.Errorf("%w: %v", ErrLookupUnavailable, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warnf("Nutrition lookup failed: %+v", err)
		return nil, fmt.Errorf("%w: %v", ErrLookupUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.log.Warnf("Nutrition lookup returned status %d", resp.StatusCode)
		return nil, fmt.Errorf("%w: upstream status %d", ErrLookupUnavailable, resp.StatusCode)
	}

	var foods []FoodRecord
	if err := json.NewDecoder(resp.Body).Decode(&foods); err != nil {
		s.log.Warnf("Failed to decode lookup response: %+v", err)
		return nil, fmt.Errorf("%w: %v", ErrLookupUnavailable, err)
	}

	if len(foods) > lookupPageSize {
		foods = foods[:lookupPageSize]
	}

	s.cache.Set(lookupCacheKey, foods, gocache.DefaultExpiration)
	return foods, nil
}
