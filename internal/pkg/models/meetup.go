package models

// SafetyLevel rates how safe a public meetup spot is considered
type SafetyLevel string

const (
	SafetyLow    SafetyLevel = "low"
	SafetyMedium SafetyLevel = "medium"
	SafetyHigh   SafetyLevel = "high"
)

// MeetupSpot is a static reference point where parties can meet to complete
// an exchange
type MeetupSpot struct {
	Name        string      `json:"name"`
	Location    Location    `json:"location"`
	Geohash     string      `json:"geohash,omitempty"`
	SafetyLevel SafetyLevel `json:"safety_level"`
}

// RankedMeetupSpot is a meetup spot with its computed distance from an observer
type RankedMeetupSpot struct {
	MeetupSpot
	DistanceMeters float64 `json:"distance_meters"`
}
