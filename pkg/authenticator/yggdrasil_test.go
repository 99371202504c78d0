package authenticator

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYggdrasilAuthenticateSuccess(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/authenticate", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "user@example.com", req["username"])
		assert.Equal(t, "hunter2", req["password"])

		agent := req["agent"].(map[string]any)
		assert.Equal(t, "Minecraft", agent["name"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"accessToken": "token-abc", "selectedProfile": {"name": "Steve", "id": "uuid-123"}}`))
	})
	mux.HandleFunc("/profile", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"xuid": "2535411111111111"}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	auth := &YggdrasilAuthenticator{
		AuthURL:    server.URL + "/authenticate",
		ProfileURL: server.URL + "/profile",
	}

	session, err := auth.Authenticate("user@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "Steve", session.UserName)
	assert.Equal(t, "uuid-123", session.UserUUID)
	assert.Equal(t, "token-abc", session.Token)
	assert.Equal(t, "2535411111111111", session.XUID)
}

func TestYggdrasilAuthenticateRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": "ForbiddenOperationException", "error_description": "Invalid credentials"}`))
	}))
	defer server.Close()

	auth := &YggdrasilAuthenticator{AuthURL: server.URL, ProfileURL: server.URL}

	_, err := auth.Authenticate("user@example.com", "wrong")
	require.Error(t, err)

	var authErr *AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Contains(t, authErr.Error(), "Invalid credentials")
}

func TestYggdrasilAuthenticateIncompleteResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	auth := &YggdrasilAuthenticator{AuthURL: server.URL, ProfileURL: server.URL}

	_, err := auth.Authenticate("user@example.com", "hunter2")
	require.Error(t, err)

	var authErr *AuthenticationError
	assert.ErrorAs(t, err, &authErr)
}
