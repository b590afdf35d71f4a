package models

import "time"

// TransactionStatus represents the outcome recorded for a finished request
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// TransactionRecord is the immutable record of a completed or terminated
// request exchange. Exactly one record is created per finished request.
type TransactionRecord struct {
	ID          string            `json:"id" db:"id"`
	Amount      float64           `json:"amount" db:"amount"`
	Kind        RequestKind       `json:"kind" db:"kind"`
	RequesterID string            `json:"requester_id" db:"requester_id"`
	ResponderID string            `json:"responder_id" db:"responder_id"`
	Status      TransactionStatus `json:"status" db:"status"`
	Rating      int               `json:"rating,omitempty" db:"rating"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
}
