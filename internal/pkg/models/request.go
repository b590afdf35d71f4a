package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus represents the current lifecycle state of a request
type RequestStatus string

const (
	RequestStatusOpen                 RequestStatus = "OPEN"
	RequestStatusAccepted             RequestStatus = "ACCEPTED"
	RequestStatusAwaitingVerification RequestStatus = "AWAITING_VERIFICATION"
	RequestStatusCompleted            RequestStatus = "COMPLETED"
	RequestStatusRejected             RequestStatus = "REJECTED"
	RequestStatusCancelled            RequestStatus = "CANCELLED"
)

// IsTerminal reports whether the status permits no further transitions
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusCompleted || s == RequestStatusRejected || s == RequestStatusCancelled
}

// RequestKind classifies what a requester is asking for
type RequestKind string

const (
	KindMoney   RequestKind = "money"
	KindService RequestKind = "service"
	KindGoods   RequestKind = "goods"
)

// ValidKind reports whether the kind is one of the enumerated set
func ValidKind(k RequestKind) bool {
	switch k {
	case KindMoney, KindService, KindGoods:
		return true
	}
	return false
}

// Urgency represents how quickly a request needs fulfillment
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// ValidUrgency reports whether the urgency is one of the enumerated set
func ValidUrgency(u Urgency) bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}

// Request represents a posted ask for money, a service, or goods, anchored to
// the requester's location when one is known. Immutable once raised except
// for lifecycle fields.
type Request struct {
	ID              uuid.UUID     `json:"id" db:"id"`
	Amount          float64       `json:"amount" db:"amount"`
	Kind            RequestKind   `json:"kind" db:"kind"`
	Description     string        `json:"description,omitempty" db:"description"`
	Urgency         Urgency       `json:"urgency" db:"urgency"`
	Category        string        `json:"category" db:"category"`
	RequesterID     string        `json:"requester_id" db:"requester_id"`
	RequesterRating float64       `json:"requester_rating" db:"requester_rating"`
	ResponderID     string        `json:"responder_id,omitempty" db:"responder_id"`
	Location        *Location     `json:"location,omitempty" db:"location"`
	Geohash         string        `json:"geohash,omitempty" db:"geohash"`
	Status          RequestStatus `json:"status" db:"status"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`
}

// RaiseRequestInput carries the raw form fields submitted when raising a request
type RaiseRequestInput struct {
	Amount      *float64    `json:"amount"`
	Kind        RequestKind `json:"kind"`
	Description string      `json:"description"`
	Urgency     Urgency     `json:"urgency"`
	Category    string      `json:"category"`
	Location    *Location   `json:"location"`
}

// NearbyRequest is a request decorated with the distance from the observer.
// DistanceMeters is nil when the observer location is unknown.
type NearbyRequest struct {
	Request
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
}
