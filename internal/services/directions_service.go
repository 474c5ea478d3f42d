package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"yeohaeng/internal/models/request_models"
	"yeohaeng/internal/models/response_models"
	"yeohaeng/pkg/utils"
)

// --------- In-memory cache per (origin, destination) pair ---------

type pairKey struct {
	Origin      string
	Destination string
}

type directionsCacheEntry struct {
	Summary   response_models.DirectionsSummary
	ExpiresAt time.Time
}

type DirectionsPairCache interface {
	Get(k pairKey) (response_models.DirectionsSummary, bool)
	Set(k pairKey, v response_models.DirectionsSummary, ttl time.Duration)
}

type inMemoryPairCache struct {
	mu    sync.RWMutex
	store map[pairKey]directionsCacheEntry
}

func NewInMemoryPairCache() DirectionsPairCache {
	return &inMemoryPairCache{store: make(map[pairKey]directionsCacheEntry)}
}

func (c *inMemoryPairCache) Get(k pairKey) (response_models.DirectionsSummary, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.store[k]
	if !ok || time.Now().After(it.ExpiresAt) {
		return response_models.DirectionsSummary{}, false
	}
	return it.Summary, true
}

func (c *inMemoryPairCache) Set(k pairKey, v response_models.DirectionsSummary, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[k] = directionsCacheEntry{Summary: v, ExpiresAt: time.Now().Add(ttl)}
}

// -------------- Kakao Mobility directions client ---------------

type DirectionsServiceInterface interface {
	GetDirections(ctx context.Context, origin, destination request_models.Coordinate) (*response_models.DirectionsSummary, error)
}

type KakaoDirectionsClient struct {
	HTTP       *http.Client
	APIKey     string
	BaseURL    string
	Cache      DirectionsPairCache
	DefaultTTL time.Duration
}

func NewKakaoDirectionsClient(apiKey string, cache DirectionsPairCache, ttl time.Duration) *KakaoDirectionsClient {
	return &KakaoDirectionsClient{
		HTTP:       &http.Client{Timeout: 15 * time.Second},
		APIKey:     apiKey,
		BaseURL:    "https://apis-navi.kakaomobility.com/v1/directions",
		Cache:      cache,
		DefaultTTL: ttl,
	}
}

func coordParam(c request_models.Coordinate) string {
	// Kakao expects "lng,lat"
	return fmt.Sprintf("%f,%f", c.Lng, c.Lat)
}

func (c *KakaoDirectionsClient) GetDirections(ctx context.Context, origin, destination request_models.Coordinate) (*response_models.DirectionsSummary, error) {
	if c.APIKey == "" {
		return nil, utils.ErrDirectionsNotConfigured
	}

	k := pairKey{Origin: coordParam(origin), Destination: coordParam(destination)}
	if c.Cache != nil {
		if v, ok := c.Cache.Get(k); ok {
			return &v, nil
		}
	}

	q := url.Values{}
	q.Set("origin", k.Origin)
	q.Set("destination", k.Destination)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "KakaoAK "+c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDirectionsUpstream, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("%w: bad status %s", utils.ErrDirectionsUpstream, resp.Status)
	}

	var payload struct {
		Routes []struct {
			Summary struct {
				Distance float64 `json:"distance"` // meters
				Duration float64 `json:"duration"` // seconds
			} `json:"summary"`
		} `json:"routes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", utils.ErrDirectionsUpstream, err)
	}

	if len(payload.Routes) == 0 {
		return nil, utils.ErrNoRouteFound
	}

	summary := payload.Routes[0].Summary
	out := response_models.DirectionsSummary{
		Distance: fmt.Sprintf("%.1f km", summary.Distance/1000),
		Duration: fmt.Sprintf("%d 분", int(summary.Duration)/60),
	}

	if c.Cache != nil {
		c.Cache.Set(k, out, c.DefaultTTL)
	}
	return &out, nil
}
