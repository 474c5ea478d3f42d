package response_models

type ActivityType string

const (
	ActivityMeal        ActivityType = "meal"
	ActivitySightseeing ActivityType = "sightseeing"
	ActivityCafe        ActivityType = "cafe"
	ActivityShopping    ActivityType = "shopping"
	ActivityGeneral     ActivityType = "activity"
	ActivityLodging     ActivityType = "lodging"
)

// ActivityTypes lists every valid activity type, in the order the prompt
// enumerates them.
var ActivityTypes = []ActivityType{
	ActivityMeal,
	ActivitySightseeing,
	ActivityCafe,
	ActivityShopping,
	ActivityGeneral,
	ActivityLodging,
}

type Activity struct {
	PlaceName    string       `json:"place_name"`
	LocalName    string       `json:"local_name,omitempty"`
	Description  string       `json:"description"`
	ActivityType ActivityType `json:"activity_type"`
}

type DayPlan struct {
	Day        int        `json:"day"`
	Theme      string     `json:"theme"`
	Activities []Activity `json:"activities"`
}

type ItineraryPlan struct {
	Title string    `json:"title"`
	Days  []DayPlan `json:"days"`
}
