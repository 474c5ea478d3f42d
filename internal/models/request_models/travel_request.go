package request_models

// TravelRequest is the user's travel brief. It is used verbatim in the
// prompt and stored alongside the final plan, never mutated.
type TravelRequest struct {
	Destination         string   `json:"destination"`
	DurationDays        int      `json:"duration_days"`
	Companions          string   `json:"companions"`
	Pace                string   `json:"pace"`
	PreferredActivities []string `json:"preferred_activities"`
	MustVisit           string   `json:"must_visit,omitempty"`
	ToAvoid             string   `json:"to_avoid,omitempty"`
	Transportation      string   `json:"transportation"`
	LodgingType         string   `json:"lodging_type"`
	ArrivalTime         string   `json:"arrival_time"`
	DepartureTime       string   `json:"departure_time"`
}
