package api

import (
	"net/http"

	"github.com/dkrastins/needmarket/internal/client/storage"
	"github.com/dkrastins/needmarket/internal/common"
	"github.com/dkrastins/needmarket/internal/logging"
	"github.com/google/uuid"
)

// TokenSource yields the credential to attach to outbound requests.
// The session store implements it.
type TokenSource interface {
	Token() (string, bool)
}

// Navigator is invoked when a response invalidates the session; the UI
// reacts by presenting its login surface. Implementations must be callable
// outside any user-interaction context.
type Navigator interface {
	ToLogin()
}

// requestIDTransport stamps every request with a fresh X-Request-Id.
type requestIDTransport struct {
	next http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	return t.next.RoundTrip(req)
}

// bearerTransport attaches the current token as a bearer credential. When
// the source yields nothing the request goes out unauthenticated and the
// server decides whether to reject it.
type bearerTransport struct {
	next   http.RoundTripper
	tokens func() (string, bool)
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if tok, ok := t.tokens(); ok {
		req = req.Clone(req.Context())
		req.Header.Set(common.AuthHeaderName, common.BearerPrefix+tok)
	}
	return t.next.RoundTrip(req)
}

// unauthorizedTransport inspects every response. An HTTP 401 is a terminal
// session invalidation: the persisted token and user records are removed and
// the navigator is pointed at the login surface, exactly once per failure.
// No retry, no refresh. Every other status passes through untouched.
type unauthorizedTransport struct {
	next     http.RoundTripper
	storage  storage.Repository
	navigate func() Navigator
	log      logging.Logger
}

func (t *unauthorizedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		ctx := req.Context()
		if t.storage != nil {
			if err := t.storage.Delete(ctx, storage.KeyToken); err != nil {
				t.log.Warn(ctx, "failed to remove persisted token", "error", err)
			}
			if err := t.storage.Delete(ctx, storage.KeyUser); err != nil {
				t.log.Warn(ctx, "failed to remove persisted user", "error", err)
			}
		}
		if nav := t.navigate(); nav != nil {
			nav.ToLogin()
		}
	}

	return resp, nil
}
