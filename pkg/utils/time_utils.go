package utils

import "time"

// Korea time location (KST, +09:00)
var krLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Seoul"); err == nil {
		return loc
	}
	return time.FixedZone("KST", 9*3600)
}()

// Convert an epoch value in seconds to KST.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSecondsKST(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(krLoc)
}

func FormatRFC3339KST(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(krLoc).Format(time.RFC3339)
}
