package api

import (
	"context"

	"github.com/dkrastins/needmarket/internal/client/models"
	"github.com/dkrastins/needmarket/internal/common"
)

// Credentials is the POST /login payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the POST /register payload. Callers are expected to have
// validated the fields (email shape, password length, confirmation match)
// before the request is issued.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// authResponse is shared by login and register; registration implicitly
// authenticates, so both return the user together with a token.
type authResponse struct {
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	TokenType string       `json:"token_type,omitempty"`
}

// Login exchanges credentials for the authenticated user and a bearer token.
// A 2xx response missing either field is rejected as
// common.ErrMalformedResponse, never returned as a partial result.
func (c *Client) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	var out authResponse
	if err := c.post(ctx, "/login", Credentials{Username: username, Password: password}, &out); err != nil {
		return nil, "", err
	}
	if out.User == nil || out.Token == "" {
		return nil, "", common.ErrMalformedResponse
	}
	return out.User, out.Token, nil
}

// Register creates an account. The server authenticates the new user in the
// same round trip; there is no separate login step.
func (c *Client) Register(ctx context.Context, r Registration) (*models.User, string, error) {
	var out authResponse
	if err := c.post(ctx, "/register", r, &out); err != nil {
		return nil, "", err
	}
	if out.User == nil || out.Token == "" {
		return nil, "", common.ErrMalformedResponse
	}
	return out.User, out.Token, nil
}
