package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dkrastins/needmarket/internal/client/storage"
	"github.com/dkrastins/needmarket/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	var gotBody Credentials
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"user":{"id":"1","username":"alice","email":"a@example.org","is_active":true},"token":"abc123"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, storage.NewMemoryRepository())

	user, token, err := c.Login(context.Background(), "alice", "correct-pw")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
	assert.Equal(t, "1", user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, Credentials{Username: "alice", Password: "correct-pw"}, gotBody)
}

func TestLogin_CredentialRejection_CarriesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Invalid credentials"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, storage.NewMemoryRepository())

	user, token, err := c.Login(context.Background(), "alice", "wrong-pw")
	require.Error(t, err)
	assert.Nil(t, user)
	assert.Empty(t, token)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid credentials", apiErr.Detail)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestLogin_ResponseMissingToken_IsMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user":{"id":"1","username":"alice"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, storage.NewMemoryRepository())

	user, token, err := c.Login(context.Background(), "alice", "pw")
	assert.ErrorIs(t, err, common.ErrMalformedResponse)
	assert.Nil(t, user)
	assert.Empty(t, token)
}

func TestLogin_ResponseMissingUser_IsMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"abc123"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, storage.NewMemoryRepository())

	_, _, err := c.Login(context.Background(), "alice", "pw")
	assert.ErrorIs(t, err, common.ErrMalformedResponse)
}

func TestRegister_Success_ReturnsTokenWithoutSeparateLogin(t *testing.T) {
	var gotBody Registration
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/register", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"token":"xyz","token_type":"bearer","user":{"id":"2","username":"bob","email":"b@example.org","is_active":true}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, storage.NewMemoryRepository())

	user, token, err := c.Register(context.Background(), Registration{
		Username: "bob",
		Email:    "b@example.org",
		Password: "long-enough",
		FullName: "Bob B",
	})
	require.NoError(t, err)
	assert.Equal(t, "xyz", token)
	assert.Equal(t, "2", user.ID)
	assert.Equal(t, "Bob B", gotBody.FullName)
}

func TestRegister_ResponseMissingToken_IsMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user":{"id":"2","username":"bob"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, storage.NewMemoryRepository())

	user, token, err := c.Register(context.Background(), Registration{Username: "bob"})
	assert.ErrorIs(t, err, common.ErrMalformedResponse)
	assert.Nil(t, user)
	assert.Empty(t, token)
}
