package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"yeohaeng/pkg/utils"
)

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Viewport struct {
	Southwest LatLng `json:"southwest"`
	Northeast LatLng `json:"northeast"`
}

// Contains reports whether p falls inside the box. Viewports straddling the
// antimeridian are not handled; neither did the upstream behavior.
func (v Viewport) Contains(p LatLng) bool {
	return p.Lat >= v.Southwest.Lat && p.Lat <= v.Northeast.Lat &&
		p.Lng >= v.Southwest.Lng && p.Lng <= v.Northeast.Lng
}

// GeocodeResult is the slice of the provider response the validator needs.
// Transient, never persisted.
type GeocodeResult struct {
	Location    LatLng
	Viewport    *Viewport
	CountryCode string
}

type GeocodeServiceInterface interface {
	Geocode(ctx context.Context, address string) (*GeocodeResult, error)
}

// GoogleGeocodeClient resolves addresses through the Google Maps Geocoding
// API with a plain HTTP client.
type GoogleGeocodeClient struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
}

func NewGoogleGeocodeClient(apiKey string) *GoogleGeocodeClient {
	return &GoogleGeocodeClient{
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		APIKey:  apiKey,
		BaseURL: "https://maps.googleapis.com/maps/api/geocode/json",
	}
}

func (c *GoogleGeocodeClient) Geocode(ctx context.Context, address string) (*GeocodeResult, error) {
	q := url.Values{}
	q.Set("address", address)
	q.Set("key", c.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGeocodeUpstream, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("%w: bad status %s", utils.ErrGeocodeUpstream, resp.Status)
	}

	var payload struct {
		Status  string `json:"status"`
		Results []struct {
			Geometry struct {
				Location LatLng    `json:"location"`
				Viewport *Viewport `json:"viewport"`
			} `json:"geometry"`
			AddressComponents []struct {
				Types     []string `json:"types"`
				ShortName string   `json:"short_name"`
			} `json:"address_components"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", utils.ErrGeocodeUpstream, err)
	}

	if payload.Status != "OK" || len(payload.Results) == 0 {
		return nil, fmt.Errorf("no geocode result for %q (status %s)", address, payload.Status)
	}

	first := payload.Results[0]
	result := &GeocodeResult{
		Location: first.Geometry.Location,
		Viewport: first.Geometry.Viewport,
	}
	for _, component := range first.AddressComponents {
		for _, t := range component.Types {
			if t == "country" {
				result.CountryCode = component.ShortName
			}
		}
	}

	return result, nil
}
