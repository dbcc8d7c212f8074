package endurance

import "time"

// Activity is a single endurance activity record (a run, ride, etc.)
// imported from the tracking device or logged manually. An empty Type
// is treated as "Run" by consumers.
type Activity struct {
	ID                  int       `json:"id"`
	UserID              int64     `json:"userId"`
	Type                string    `json:"type"`
	Name                string    `json:"name"`
	StartDate           time.Time `json:"startDate"`
	DistanceMeters      float64   `json:"distanceMeters"`
	MovingTimeSeconds   int       `json:"movingTimeSeconds"`
	ElevationGainMeters float64   `json:"elevationGainMeters"`
}
