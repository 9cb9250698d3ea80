package api

import (
	"context"
	"net/url"

	"github.com/dkrastins/needmarket/internal/client/models"
)

// NeedRequest is the payload for creating or updating a need.
type NeedRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Location    string  `json:"location"`
	StartingBid float64 `json:"starting_bid"`
	AuctionEnd  string  `json:"auction_end"`
}

// ListNeeds returns every need currently open for browsing.
func (c *Client) ListNeeds(ctx context.Context) ([]models.Need, error) {
	var out []models.Need
	if err := c.get(ctx, "/needs", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetNeed returns a single need with its bids.
func (c *Client) GetNeed(ctx context.Context, id string) (*models.Need, error) {
	var out models.Need
	if err := c.get(ctx, "/needs/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateNeed posts a new need owned by the current user.
func (c *Client) CreateNeed(ctx context.Context, r NeedRequest) (*models.Need, error) {
	var out models.Need
	if err := c.post(ctx, "/needs", r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateNeed replaces an existing need's fields.
func (c *Client) UpdateNeed(ctx context.Context, id string, r NeedRequest) (*models.Need, error) {
	var out models.Need
	if err := c.put(ctx, "/needs/"+url.PathEscape(id), r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteNeed removes a need owned by the current user.
func (c *Client) DeleteNeed(ctx context.Context, id string) error {
	return c.delete(ctx, "/needs/"+url.PathEscape(id))
}

// MyNeeds returns the needs posted by the current user.
func (c *Client) MyNeeds(ctx context.Context) ([]models.Need, error) {
	var out []models.Need
	if err := c.get(ctx, "/users/me/needs", &out); err != nil {
		return nil, err
	}
	return out, nil
}
