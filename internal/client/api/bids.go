package api

import (
	"context"
	"net/url"

	"github.com/dkrastins/needmarket/internal/client/models"
)

// BidRequest is the payload for placing a bid on a need.
type BidRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// NeedBids returns the bids placed against a need.
func (c *Client) NeedBids(ctx context.Context, needID string) ([]models.Bid, error) {
	var out []models.Bid
	if err := c.get(ctx, "/needs/"+url.PathEscape(needID)+"/bids", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PlaceBid submits an offer for a need.
func (c *Client) PlaceBid(ctx context.Context, needID string, r BidRequest) (*models.Bid, error) {
	var out models.Bid
	if err := c.post(ctx, "/needs/"+url.PathEscape(needID)+"/bids", r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyBids returns the bids the current user has placed.
func (c *Client) MyBids(ctx context.Context) ([]models.Bid, error) {
	var out []models.Bid
	if err := c.get(ctx, "/users/me/bids", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// WithdrawBid removes one of the current user's pending bids.
func (c *Client) WithdrawBid(ctx context.Context, bidID string) error {
	return c.delete(ctx, "/bids/"+url.PathEscape(bidID))
}
