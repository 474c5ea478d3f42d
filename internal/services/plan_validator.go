package services

import (
	"context"
	"fmt"

	"yeohaeng/internal/models/response_models"
	"yeohaeng/pkg/utils"
)

const minActivitiesPerDay = 3

// PlanValidator checks a parsed candidate plan: structure first, then,
// when a destination viewport is known, geographic containment of every
// activity. Both failure modes are retryable by the generation loop.
type PlanValidator struct {
	geocoder GeocodeServiceInterface
}

func NewPlanValidator(geocoder GeocodeServiceInterface) *PlanValidator {
	return &PlanValidator{geocoder: geocoder}
}

func (v *PlanValidator) Validate(ctx context.Context, plan *response_models.ItineraryPlan, destination string, viewport *Viewport) error {
	if err := v.ValidateStructure(plan); err != nil {
		return err
	}
	if viewport == nil || v.geocoder == nil {
		return nil
	}
	return v.ValidateGeography(ctx, plan, destination, viewport)
}

func (v *PlanValidator) ValidateStructure(plan *response_models.ItineraryPlan) error {
	if plan == nil || len(plan.Days) == 0 {
		return fmt.Errorf("%w: plan has no days", utils.ErrPlanStructure)
	}

	lastDay := 0
	for i, day := range plan.Days {
		if day.Day <= lastDay {
			return fmt.Errorf("%w: day numbers must be positive and ascending, got %d after %d", utils.ErrPlanStructure, day.Day, lastDay)
		}
		lastDay = day.Day

		if len(day.Activities) < minActivitiesPerDay {
			return fmt.Errorf("%w: day %d has %d activities, need at least %d", utils.ErrPlanStructure, i+1, len(day.Activities), minActivitiesPerDay)
		}
	}

	return nil
}

// ValidateGeography geocodes every activity place scoped to the destination
// and collects the ones that resolve outside the viewport. A place that
// fails to geocode counts as invalid rather than inconclusive.
func (v *PlanValidator) ValidateGeography(ctx context.Context, plan *response_models.ItineraryPlan, destination string, viewport *Viewport) error {
	var invalid []string
	seen := make(map[string]bool)

	for _, day := range plan.Days {
		for _, activity := range day.Activities {
			if activity.PlaceName == "" || seen[activity.PlaceName] {
				continue
			}
			seen[activity.PlaceName] = true

			result, err := v.geocoder.Geocode(ctx, activity.PlaceName+", "+destination)
			if err != nil || result == nil {
				invalid = append(invalid, activity.PlaceName)
				continue
			}
			if !viewport.Contains(result.Location) {
				invalid = append(invalid, activity.PlaceName)
			}
		}
	}

	if len(invalid) > 0 {
		return &utils.GeographicError{Places: invalid}
	}
	return nil
}
