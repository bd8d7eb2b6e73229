package insights

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/generate" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("expected bearer auth, got: %s", got)
		}

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gemini-3-flash-preview", req.Model)
		assert.Equal(t, 0.7, req.Temperature)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(generateResponse{OK: true, Text: "generated summary"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "gemini-3-flash-preview")
	text, err := client.Generate(context.Background(), "some prompt", 0.7)
	require.NoError(t, err)
	assert.Equal(t, "generated summary", text)
}

func TestClient_Generate_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"ok":false}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "m")
	_, err := client.Generate(context.Background(), "p", 0.5)
	assert.Error(t, err)
}

func TestClient_Generate_Unreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "", "m")
	_, err := client.Generate(context.Background(), "p", 0.5)
	assert.Error(t, err)
}

func TestClient_Generate_NotConfigured(t *testing.T) {
	client := NewClient("", "", "m")
	_, err := client.Generate(context.Background(), "p", 0.5)
	assert.Error(t, err)
}
