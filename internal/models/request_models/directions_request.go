package request_models

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DirectionsRequest carries an origin/destination pair for the Kakao proxy.
// Pointers so that missing coordinates can be told apart from (0,0).
type DirectionsRequest struct {
	Origin      *Coordinate `json:"origin"`
	Destination *Coordinate `json:"destination"`
}
