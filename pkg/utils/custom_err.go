package utils

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Retryable within the generation loop.
	ErrNoJSONFound   = errors.New("no JSON found in model output")
	ErrMalformedJSON = errors.New("model output is not valid JSON")
	ErrPlanStructure = errors.New("plan structure is invalid")

	// Terminal: the loop ran out of attempts.
	ErrGenerationExhausted = errors.New("itinerary generation attempts exhausted")

	ErrPlanNotFound    = errors.New("plan not found")
	ErrNoRouteFound    = errors.New("no route found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrDatabaseError   = errors.New("database error")
	ErrQueueFull       = errors.New("generation queue is full")
	ErrGeocodeUpstream = errors.New("geocoding provider error")

	ErrDirectionsUpstream      = errors.New("directions provider error")
	ErrDirectionsNotConfigured = errors.New("kakao api key is not configured")
	ErrGeneratorNotInitialized = errors.New("ai model is not initialized")
	ErrStoreNotInitialized     = errors.New("database is not initialized")
)

// GeographicError reports plan activities that could not be placed inside
// the destination's bounding region. The place names feed the corrective
// prompt on the next generation attempt.
type GeographicError struct {
	Places []string
}

func (e *GeographicError) Error() string {
	return fmt.Sprintf("places outside destination: %s", strings.Join(e.Places, ", "))
}
