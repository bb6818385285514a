package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhdirfanpn/panadol-platform-client/pkg/apierror"
)

func newTestClient(t *testing.T, baseURL, userID string) *Client {
	t.Helper()
	c, err := New(Config{BaseURL: baseURL}, userID, zerolog.Nop())
	require.NoError(t, err)
	return c
}

func TestNewRejectsInvalidIdentity(t *testing.T) {
	for _, id := range []string{"", "0", "-1", "abc"} {
		_, err := New(Config{BaseURL: "http://localhost:8080"}, id, zerolog.Nop())
		assert.Error(t, err, "identity %q should be rejected", id)
	}
}

func TestNewRejectsRelativeBaseURL(t *testing.T) {
	_, err := New(Config{BaseURL: "/api/super-admin"}, "1", zerolog.Nop())
	assert.Error(t, err)
}

func TestDoInjectsIdentityAndRequestID(t *testing.T) {
	var gotUserID, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = r.Header.Get("X-User-Id")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "7")
	var out map[string]bool
	require.NoError(t, c.Do(context.Background(), http.MethodGet, "/ping", nil, nil, &out))

	assert.Equal(t, "7", gotUserID)
	assert.NotEmpty(t, gotRequestID)
	assert.True(t, out["ok"])
}

func TestDoNormalizesErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"timestamp": "2026-01-02T03:04:05Z",
			"status":    404,
			"error":     "Not Found",
			"message":   "User not found with id: 42",
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "1")
	err := c.Do(context.Background(), http.MethodGet, "/users/42", nil, nil, nil)
	require.Error(t, err)

	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.KindNotFound, apiErr.Kind)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "User not found with id: 42", apiErr.Message)
	assert.True(t, apierror.IsNotFound(err))
}

func TestDoMissingErrorMessageFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "1")
	err := c.Do(context.Background(), http.MethodGet, "/users", nil, nil, nil)
	require.Error(t, err)
	assert.Equal(t, "Failed to load users", apierror.UserMessage(err, "Failed to load users"))
}

func TestDoNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := newTestClient(t, url, "1")
	err := c.Do(context.Background(), http.MethodGet, "/users", nil, nil, nil)
	require.Error(t, err)

	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.KindNetwork, apiErr.Kind)
	// a network failure carries no server message to surface verbatim
	assert.Equal(t, "fallback", apierror.UserMessage(err, "fallback"))
}

func TestDoNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "1")
	var out map[string]string
	assert.NoError(t, c.Do(context.Background(), http.MethodDelete, "/users/1", nil, nil, &out))
	assert.Nil(t, out)
}

func TestDoSendsQueryParams(t *testing.T) {
	var gotQuery string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "1")
	q := map[string][]string{"status": {"SUSPENDED"}}
	require.NoError(t, c.Do(context.Background(), http.MethodPatch, "/users/1/status", q, nil, nil))
	assert.Equal(t, "status=SUSPENDED", gotQuery)
	assert.Empty(t, gotBody)
}
