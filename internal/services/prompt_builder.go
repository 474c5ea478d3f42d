package services

import (
	"fmt"
	"strings"

	"yeohaeng/internal/models/request_models"
	"yeohaeng/internal/models/response_models"
)

// ActivityTypeList is the enumeration exactly as it appears in the prompt.
func ActivityTypeList() string {
	parts := make([]string, 0, len(response_models.ActivityTypes))
	for _, t := range response_models.ActivityTypes {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ", ")
}

// BuildItineraryPrompt turns a travel request into the model instruction.
// Pure function of the request; malformed fields pass through as-is, the
// model is expected to cope.
func BuildItineraryPrompt(req request_models.TravelRequest) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Create a detailed %d-day travel itinerary for %s.\n\n", req.DurationDays, req.Destination))

	prompt.WriteString("Return ONLY a JSON object in this EXACT format:\n")
	prompt.WriteString(`{
  "title": "A short title for the trip",
  "days": [
    {
      "day": 1,
      "theme": "Theme of the day",
      "activities": [
        {
          "place_name": "Name of the place",
          "local_name": "Name in the local language, if different",
          "description": "1-2 sentences on what to do there",
          "activity_type": "sightseeing"
        }
      ]
    }
  ]
}`)
	prompt.WriteString("\n\nCRITICAL REQUIREMENTS:\n")
	prompt.WriteString(fmt.Sprintf("1. Generate exactly %d days, numbered 1..%d in ascending order\n", req.DurationDays, req.DurationDays))
	prompt.WriteString(fmt.Sprintf("2. activity_type must be one of: %s\n", ActivityTypeList()))
	prompt.WriteString("3. Every day must have at least 3 activities\n")
	prompt.WriteString(fmt.Sprintf("4. All places must really exist in or around %s\n", req.Destination))
	if req.DurationDays > 1 {
		prompt.WriteString("5. Every day except the last must end with a \"lodging\" activity\n")
		prompt.WriteString("6. Each day after the first must start at the previous day's lodging place\n")
		prompt.WriteString(fmt.Sprintf("7. Full middle days need breakfast, lunch and dinner; on the first and last day schedule meals that fit arrival at %s and departure at %s\n",
			req.ArrivalTime, req.DepartureTime))
	}

	prompt.WriteString("\nTraveler brief:\n")
	prompt.WriteString(fmt.Sprintf("- Destination: %s\n", req.Destination))
	prompt.WriteString(fmt.Sprintf("- Duration: %d day(s), arriving %s, departing %s\n", req.DurationDays, req.ArrivalTime, req.DepartureTime))
	prompt.WriteString(fmt.Sprintf("- Traveling with: %s\n", req.Companions))
	prompt.WriteString(fmt.Sprintf("- Pace: %s\n", req.Pace))
	if len(req.PreferredActivities) > 0 {
		prompt.WriteString(fmt.Sprintf("- Preferred activities: %s\n", strings.Join(req.PreferredActivities, ", ")))
	}
	if req.MustVisit != "" {
		prompt.WriteString(fmt.Sprintf("- Must visit: %s\n", req.MustVisit))
	}
	if req.ToAvoid != "" {
		prompt.WriteString(fmt.Sprintf("- Avoid: %s\n", req.ToAvoid))
	}
	prompt.WriteString(fmt.Sprintf("- Transportation: %s\n", req.Transportation))
	prompt.WriteString(fmt.Sprintf("- Lodging type: %s\n", req.LodgingType))

	prompt.WriteString("\nReturn JSON only. No comments, no markdown.\n")

	return prompt.String()
}
