package response_models

// DirectionsSummary is the reshaped first-route summary from Kakao:
// distance in km rounded to one decimal, duration in whole minutes.
type DirectionsSummary struct {
	Distance string `json:"distance"`
	Duration string `json:"duration"`
}
