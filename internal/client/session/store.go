// Package session holds the authoritative answer to "who is logged in" and
// the credential that proves it. Every change to that fact goes through the
// Store, which writes through to the persisted mirror on each mutation so a
// restart restores the session without a network round trip.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/dkrastins/needmarket/internal/client/api"
	"github.com/dkrastins/needmarket/internal/client/models"
	"github.com/dkrastins/needmarket/internal/client/storage"
	"github.com/dkrastins/needmarket/internal/common"
	"github.com/dkrastins/needmarket/internal/logging"
)

// Fallback messages shown when a failure carries no server detail.
const (
	loginFallback    = "Login failed"
	registerFallback = "Registration failed"
)

// API is the slice of the HTTP client the store needs.
type API interface {
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	Register(ctx context.Context, r api.Registration) (*models.User, string, error)
}

// Store is the single source of truth for the current session.
//
// user and token are always set and cleared together; no caller can observe
// one populated without the other. Overlapping Login/Register calls are not
// serialized: whichever response lands last wins, which matches the UI
// contract (forms disable their submit control while a call is in flight).
type Store struct {
	api     API
	storage storage.Repository
	log     logging.Logger

	mu        sync.Mutex
	user      *models.User
	token     string
	loading   bool
	lastError string
}

// NewStore builds a Store bound to the given API client and persisted
// mirror, restoring any previously saved session. A partially persisted
// session (one key without the other) is discarded rather than restored.
func NewStore(ctx context.Context, a API, repo storage.Repository, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop{}
	}
	s := &Store{api: a, storage: repo, log: log}
	s.restore(ctx)
	return s
}

func (s *Store) restore(ctx context.Context) {
	rawToken, err := s.storage.Get(ctx, storage.KeyToken)
	if err != nil {
		s.log.Warn(ctx, "failed to read persisted token, starting logged out", "error", err)
		return
	}
	rawUser, err := s.storage.Get(ctx, storage.KeyUser)
	if err != nil {
		s.log.Warn(ctx, "failed to read persisted user, starting logged out", "error", err)
		return
	}

	if rawToken == nil && rawUser == nil {
		return
	}

	// One key without the other would restore a half-authenticated session;
	// drop both instead.
	if rawToken == nil || rawUser == nil {
		s.log.Warn(ctx, "partial persisted session discarded")
		_ = s.storage.Delete(ctx, storage.KeyToken)
		_ = s.storage.Delete(ctx, storage.KeyUser)
		return
	}

	var user models.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		s.log.Warn(ctx, "corrupt persisted user discarded", "error", err)
		_ = s.storage.Delete(ctx, storage.KeyToken)
		_ = s.storage.Delete(ctx, storage.KeyUser)
		return
	}

	s.user = &user
	s.token = string(rawToken)
	s.log.Info(ctx, "session restored", "user", user.Username)
}

// Login exchanges credentials for a session. The secret is capped at the
// credential hash's 72-byte input limit before transmission. On failure the
// error message is captured for the UI and the error is returned to the
// caller; the store never ends up partially authenticated and the loading
// flag is always cleared.
func (s *Store) Login(ctx context.Context, identifier, secret string) error {
	s.begin()

	user, token, err := s.api.Login(ctx, identifier, truncateSecret(secret))
	if err != nil {
		s.fail(ctx, loginFallback, err)
		return err
	}
	if err := s.persist(ctx, user, token); err != nil {
		s.fail(ctx, loginFallback, err)
		return err
	}

	s.commit(user, token)
	return nil
}

// Register creates an account and authenticates in the same round trip.
// Field validation (email shape, secret length, confirmation match) is the
// caller's responsibility and is not repeated here.
func (s *Store) Register(ctx context.Context, r api.Registration) error {
	s.begin()

	r.Password = truncateSecret(r.Password)
	user, token, err := s.api.Register(ctx, r)
	if err != nil {
		s.fail(ctx, registerFallback, err)
		return err
	}
	if err := s.persist(ctx, user, token); err != nil {
		s.fail(ctx, registerFallback, err)
		return err
	}

	s.commit(user, token)
	return nil
}

// Logout clears the persisted keys and resets the in-memory session. It is
// idempotent; logging out while logged out is a no-op. No network call is
// made — the token simply stops being presented.
func (s *Store) Logout(ctx context.Context) error {
	errToken := s.storage.Delete(ctx, storage.KeyToken)
	errUser := s.storage.Delete(ctx, storage.KeyUser)

	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	if errToken != nil {
		return errToken
	}
	return errUser
}

// SetUser replaces the user record after a profile edit and re-persists it.
// The token is left untouched.
func (s *Store) SetUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	if user == nil {
		return nil
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.storage.Set(ctx, storage.KeyUser, raw)
}

// SetToken replaces the credential: a non-empty token is persisted, an empty
// one removes the persisted key. Used by lower-level recovery flows.
func (s *Store) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if token == "" {
		return s.storage.Delete(ctx, storage.KeyToken)
	}
	return s.storage.Set(ctx, storage.KeyToken, []byte(token))
}

// ClearError discards the last captured failure message; the UI calls this
// before retrying.
func (s *Store) ClearError() {
	s.mu.Lock()
	s.lastError = ""
	s.mu.Unlock()
}

// IsAuthenticated reports whether both a user and a token are currently
// present. Evaluated fresh on every call; this is the guard protected
// surfaces use to decide whether to show the login route.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.token != ""
}

// Token implements api.TokenSource; the request pipeline consults it on
// every outbound call.
func (s *Store) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

// User returns a copy of the current user record, or nil when logged out.
func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// LastError returns the captured message of the most recent login/register
// failure, or an empty string.
func (s *Store) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// IsLoading reports whether a login/register call is in flight.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Store) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastError = ""
	s.mu.Unlock()
}

func (s *Store) fail(ctx context.Context, fallback string, err error) {
	s.mu.Lock()
	s.loading = false
	s.lastError = errorMessage(err, fallback)
	s.mu.Unlock()
	s.log.Warn(ctx, "auth call failed", "error", err)
}

func (s *Store) commit(user *models.User, token string) {
	s.mu.Lock()
	s.user = user
	s.token = token
	s.loading = false
	s.mu.Unlock()
}

// persist writes both keys to the mirror. If the second write fails the
// first is rolled back so the mirror never holds a token without a user.
func (s *Store) persist(ctx context.Context, user *models.User, token string) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.storage.Set(ctx, storage.KeyToken, []byte(token)); err != nil {
		return err
	}
	if err := s.storage.Set(ctx, storage.KeyUser, raw); err != nil {
		_ = s.storage.Delete(ctx, storage.KeyToken)
		return err
	}
	return nil
}

// errorMessage extracts the server's detail message from an API failure,
// falling back to a generic message for transport and decoding errors.
func errorMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	if errors.Is(err, common.ErrMalformedResponse) {
		return fallback + ": " + common.ErrMalformedResponse.Error()
	}
	return fallback
}
