package models

// Bid statuses as reported by the server.
const (
	BidStatusPending  = "pending"
	BidStatusAccepted = "accepted"
	BidStatusRejected = "rejected"
)

// Bid is an offer placed against a need. NeedTitle is denormalized by the
// server for list views.
type Bid struct {
	ID          string  `json:"id"`
	NeedID      string  `json:"need_id"`
	NeedTitle   string  `json:"need_title,omitempty"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at,omitempty"`
}
