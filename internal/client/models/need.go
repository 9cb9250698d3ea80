package models

// Need statuses as reported by the server.
const (
	NeedStatusOpen      = "open"
	NeedStatusAssigned  = "assigned"
	NeedStatusCompleted = "completed"
	NeedStatusCancelled = "cancelled"
)

// Need is a posted task open for bidding.
type Need struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Location    string  `json:"location"`
	StartingBid float64 `json:"starting_bid"`
	AuctionEnd  string  `json:"auction_end"`
	Status      string  `json:"status"`
	Bids        []Bid   `json:"bids,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
}
