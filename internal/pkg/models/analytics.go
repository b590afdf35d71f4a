package models

// RequestAnalytics summarizes the currently active requests for reporting.
// Always derived from a live snapshot of the request store, never cached.
type RequestAnalytics struct {
	TotalRequests int                 `json:"total_requests"`
	TotalAmount   float64             `json:"total_amount"`
	AverageAmount float64             `json:"average_amount"`
	ByKind        map[RequestKind]int `json:"by_kind"`
	ByUrgency     map[Urgency]int     `json:"by_urgency"`
}
