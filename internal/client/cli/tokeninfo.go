package cli

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpiry decodes the token without verifying its signature and returns
// the exp claim when present. The client never has the signing key; this is
// display-only and the server remains the authority on validity.
func tokenExpiry(token string) (time.Time, bool) {
	parser := jwt.NewParser()
	t, _, err := parser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := t.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
