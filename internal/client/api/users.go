package api

import (
	"context"
	"net/url"

	"github.com/dkrastins/needmarket/internal/client/models"
)

// ProfileUpdate is the payload for editing one's own profile. The zero
// value of a field leaves it untouched server-side.
type ProfileUpdate struct {
	FullName   string `json:"full_name,omitempty"`
	Location   string `json:"location,omitempty"`
	Bio        string `json:"bio,omitempty"`
	ProfilePic string `json:"profile_pic,omitempty"`
}

// GetUser returns a user's public profile.
func (c *Client) GetUser(ctx context.Context, id string) (*models.User, error) {
	var out models.User
	if err := c.get(ctx, "/users/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile edits the current user's profile and returns the updated
// record. The token is unaffected; callers pass the result to the session
// store's SetUser.
func (c *Client) UpdateProfile(ctx context.Context, id string, r ProfileUpdate) (*models.User, error) {
	var out models.User
	if err := c.put(ctx, "/users/"+url.PathEscape(id), r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CompletedNeeds returns the finished tasks shown on a user's profile.
func (c *Client) CompletedNeeds(ctx context.Context, id string) ([]models.CompletedNeed, error) {
	var out []models.CompletedNeed
	if err := c.get(ctx, "/users/"+url.PathEscape(id)+"/completed-needs", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserRating returns a user's aggregate reputation.
func (c *Client) UserRating(ctx context.Context, id string) (*models.UserRating, error) {
	var out models.UserRating
	if err := c.get(ctx, "/ratings/user/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
