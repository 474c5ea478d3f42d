package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"yeohaeng/internal/models/request_models"
	"yeohaeng/internal/models/response_models"
	"yeohaeng/pkg/utils"
)

func kakaoTestServer(t *testing.T, status int, body string, hits *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			*hits++
		}
		if got := r.Header.Get("Authorization"); got != "KakaoAK test-key" {
			t.Errorf("wrong Authorization header: %q", got)
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func testCoords() (request_models.Coordinate, request_models.Coordinate) {
	return request_models.Coordinate{Lat: 37.5665, Lng: 126.9780},
		request_models.Coordinate{Lat: 37.5512, Lng: 126.9882}
}

func TestGetDirectionsFormatsSummary(t *testing.T) {
	srv := kakaoTestServer(t, http.StatusOK,
		`{"routes":[{"summary":{"distance":12345,"duration":1530}}]}`, nil)
	defer srv.Close()

	c := NewKakaoDirectionsClient("test-key", nil, time.Minute)
	c.BaseURL = srv.URL

	origin, dest := testCoords()
	got, err := c.GetDirections(context.Background(), origin, dest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Distance != "12.3 km" {
		t.Errorf("distance: got %q, want %q", got.Distance, "12.3 km")
	}
	if got.Duration != "25 분" {
		t.Errorf("duration: got %q, want %q", got.Duration, "25 분")
	}
}

func TestGetDirectionsCacheHit(t *testing.T) {
	hits := 0
	srv := kakaoTestServer(t, http.StatusOK,
		`{"routes":[{"summary":{"distance":5000,"duration":600}}]}`, &hits)
	defer srv.Close()

	c := NewKakaoDirectionsClient("test-key", NewInMemoryPairCache(), time.Minute)
	c.BaseURL = srv.URL

	origin, dest := testCoords()
	if _, err := c.GetDirections(context.Background(), origin, dest); err != nil {
		t.Fatalf("first call: %v", err)
	}
	got, err := c.GetDirections(context.Background(), origin, dest)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if hits != 1 {
		t.Fatalf("expected one upstream request, got %d", hits)
	}
	if got.Distance != "5.0 km" || got.Duration != "10 분" {
		t.Fatalf("wrong cached summary: %+v", got)
	}
}

func TestGetDirectionsNoRoute(t *testing.T) {
	srv := kakaoTestServer(t, http.StatusOK, `{"routes":[]}`, nil)
	defer srv.Close()

	c := NewKakaoDirectionsClient("test-key", nil, time.Minute)
	c.BaseURL = srv.URL

	origin, dest := testCoords()
	if _, err := c.GetDirections(context.Background(), origin, dest); !errors.Is(err, utils.ErrNoRouteFound) {
		t.Fatalf("expected ErrNoRouteFound, got %v", err)
	}
}

func TestGetDirectionsUpstreamError(t *testing.T) {
	srv := kakaoTestServer(t, http.StatusInternalServerError, `{}`, nil)
	defer srv.Close()

	c := NewKakaoDirectionsClient("test-key", nil, time.Minute)
	c.BaseURL = srv.URL

	origin, dest := testCoords()
	if _, err := c.GetDirections(context.Background(), origin, dest); !errors.Is(err, utils.ErrDirectionsUpstream) {
		t.Fatalf("expected ErrDirectionsUpstream, got %v", err)
	}
}

func TestGetDirectionsWithoutAPIKey(t *testing.T) {
	c := NewKakaoDirectionsClient("", nil, time.Minute)

	origin, dest := testCoords()
	if _, err := c.GetDirections(context.Background(), origin, dest); !errors.Is(err, utils.ErrDirectionsNotConfigured) {
		t.Fatalf("expected ErrDirectionsNotConfigured, got %v", err)
	}
}

func TestPairCacheExpiry(t *testing.T) {
	cache := NewInMemoryPairCache()
	k := pairKey{Origin: "a", Destination: "b"}

	summary := response_models.DirectionsSummary{Distance: "1.0 km", Duration: "1 분"}

	cache.Set(k, summary, -time.Second)
	if _, ok := cache.Get(k); ok {
		t.Fatalf("expired entry must not be served")
	}

	cache.Set(k, summary, time.Minute)
	if _, ok := cache.Get(k); !ok {
		t.Fatalf("fresh entry must be served")
	}
}
