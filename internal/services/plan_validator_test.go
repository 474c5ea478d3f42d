package services

import (
	"context"
	"errors"
	"testing"

	"yeohaeng/internal/models/response_models"
	"yeohaeng/pkg/utils"
)

// fakeGeocoder answers from a fixed table and counts calls.
type fakeGeocoder struct {
	results map[string]*GeocodeResult
	calls   int
}

func (f *fakeGeocoder) Geocode(ctx context.Context, address string) (*GeocodeResult, error) {
	f.calls++
	if r, ok := f.results[address]; ok {
		return r, nil
	}
	return nil, errors.New("no result")
}

func validPlan(days int) *response_models.ItineraryPlan {
	plan := &response_models.ItineraryPlan{Title: "Trip"}
	for d := 1; d <= days; d++ {
		day := response_models.DayPlan{Day: d, Theme: "Day"}
		for i := 0; i < 3; i++ {
			day.Activities = append(day.Activities, response_models.Activity{
				PlaceName:    "Place",
				ActivityType: response_models.ActivitySightseeing,
			})
		}
		plan.Days = append(plan.Days, day)
	}
	return plan
}

func TestValidateStructureNoDays(t *testing.T) {
	v := NewPlanValidator(nil)
	err := v.ValidateStructure(&response_models.ItineraryPlan{Title: "Empty"})
	if !errors.Is(err, utils.ErrPlanStructure) {
		t.Fatalf("expected ErrPlanStructure, got %v", err)
	}
}

func TestValidateStructureTooFewActivities(t *testing.T) {
	plan := validPlan(2)
	plan.Days[1].Activities = plan.Days[1].Activities[:2]

	v := NewPlanValidator(nil)
	if err := v.ValidateStructure(plan); !errors.Is(err, utils.ErrPlanStructure) {
		t.Fatalf("expected ErrPlanStructure, got %v", err)
	}
}

func TestValidateStructureNonAscendingDays(t *testing.T) {
	plan := validPlan(3)
	plan.Days[2].Day = 2

	v := NewPlanValidator(nil)
	if err := v.ValidateStructure(plan); !errors.Is(err, utils.ErrPlanStructure) {
		t.Fatalf("expected ErrPlanStructure, got %v", err)
	}
}

func TestValidateSkipsGeographyWithoutViewport(t *testing.T) {
	geo := &fakeGeocoder{}
	v := NewPlanValidator(geo)

	if err := v.Validate(context.Background(), validPlan(2), "Seoul", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if geo.calls != 0 {
		t.Fatalf("geocoder should not be called without a viewport, got %d calls", geo.calls)
	}
}

func TestValidateGeographyOutsideViewport(t *testing.T) {
	viewport := &Viewport{
		Southwest: LatLng{Lat: 37.0, Lng: 126.0},
		Northeast: LatLng{Lat: 38.0, Lng: 128.0},
	}
	geo := &fakeGeocoder{results: map[string]*GeocodeResult{
		"Gyeongbokgung, Seoul": {Location: LatLng{Lat: 37.58, Lng: 126.98}},
		"Eiffel Tower, Seoul":  {Location: LatLng{Lat: 48.86, Lng: 2.29}},
	}}

	plan := validPlan(1)
	plan.Days[0].Activities[0].PlaceName = "Gyeongbokgung"
	plan.Days[0].Activities[1].PlaceName = "Eiffel Tower"
	plan.Days[0].Activities[2].PlaceName = "Gyeongbokgung"

	v := NewPlanValidator(geo)
	err := v.Validate(context.Background(), plan, "Seoul", viewport)

	var geoErr *utils.GeographicError
	if !errors.As(err, &geoErr) {
		t.Fatalf("expected GeographicError, got %v", err)
	}
	if len(geoErr.Places) != 1 || geoErr.Places[0] != "Eiffel Tower" {
		t.Fatalf("wrong offending places: %v", geoErr.Places)
	}
	if geo.calls != 2 {
		t.Fatalf("duplicate places should geocode once, got %d calls", geo.calls)
	}
}

func TestValidateGeographyFailedGeocodeCountsInvalid(t *testing.T) {
	viewport := &Viewport{
		Southwest: LatLng{Lat: 37.0, Lng: 126.0},
		Northeast: LatLng{Lat: 38.0, Lng: 128.0},
	}
	geo := &fakeGeocoder{results: map[string]*GeocodeResult{}}

	plan := validPlan(1)
	plan.Days[0].Activities[0].PlaceName = "Nonexistent Palace"
	plan.Days[0].Activities[1].PlaceName = "Nonexistent Palace"
	plan.Days[0].Activities[2].PlaceName = "Nonexistent Palace"

	v := NewPlanValidator(geo)
	err := v.Validate(context.Background(), plan, "Seoul", viewport)

	var geoErr *utils.GeographicError
	if !errors.As(err, &geoErr) {
		t.Fatalf("expected GeographicError, got %v", err)
	}
	if len(geoErr.Places) != 1 || geoErr.Places[0] != "Nonexistent Palace" {
		t.Fatalf("wrong offending places: %v", geoErr.Places)
	}
}
