package models

import "time"

// Location represents a geographical coordinate pair
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Timestamp time.Time `json:"timestamp,omitempty" db:"timestamp"`
}

// LocationShare represents a location shared by a responder during a handover
type LocationShare struct {
	RequestID string   `json:"request_id"`
	UserID    string   `json:"user_id"`
	Location  Location `json:"location"`
}
