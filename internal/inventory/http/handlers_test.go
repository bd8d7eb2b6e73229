package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estatenexus/estate-backend/internal/inventory/repository"
)

// newDegradedRouter wires the handler with no backing store, the mode
// the service runs in when credentials are missing at startup.
func newDegradedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := New(
		repository.NewProjectRepo(nil),
		repository.NewSiteRepo(nil),
		repository.NewPaymentRepo(nil),
		repository.NewSettingsRepo(nil),
		nil,
	)
	h.Register(r.Group("/api/v1"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListProjectsDegradesToEmptyList(t *testing.T) {
	r := newDegradedRouter()

	w := doJSON(t, r, http.MethodGet, "/api/v1/projects", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK       bool              `json:"ok"`
		Projects []json.RawMessage `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Empty(t, resp.Projects)
}

func TestWritesReportConfigurationMissing(t *testing.T) {
	r := newDegradedRouter()

	cases := []struct {
		method, path, body string
	}{
		{http.MethodPost, "/api/v1/projects", `{"name":"P","location":"L","launchDate":"2026-01-01"}`},
		{http.MethodPatch, "/api/v1/projects/p1", `{"name":"P","location":"L","launchDate":"2026-01-01"}`},
		{http.MethodDelete, "/api/v1/projects/p1", ""},
		{http.MethodPost, "/api/v1/projects/p1/sites", `{"number":"E-101"}`},
		{http.MethodPatch, "/api/v1/sites/s1", `{"facing":"East"}`},
		{http.MethodDelete, "/api/v1/sites/s1", ""},
		{http.MethodPost, "/api/v1/sites/s1/payments", `{"amount":1000,"date":"2026-01-01"}`},
		{http.MethodDelete, "/api/v1/payments/x1", ""},
		{http.MethodPut, "/api/v1/settings", `{"name":"ESTATENEXUS"}`},
	}

	for _, tc := range cases {
		w := doJSON(t, r, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, "%s %s", tc.method, tc.path)
		assert.Contains(t, w.Body.String(), "storage not configured")
	}
}

func TestCreateProjectValidation(t *testing.T) {
	r := newDegradedRouter()

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"location":"L","launchDate":"2026-01-01"}`},
		{"blank name", `{"name":"  ","location":"L","launchDate":"2026-01-01"}`},
		{"missing location", `{"name":"P","launchDate":"2026-01-01"}`},
		{"missing launch date", `{"name":"P","location":"L"}`},
		{"malformed body", `{`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/v1/projects", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateSiteValidation(t *testing.T) {
	r := newDegradedRouter()

	t.Run("number required", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/projects/p1/sites", `{"status":"UNSOLD"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/projects/p1/sites", `{"number":"E-1","status":"PENDING"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("status defaults to UNSOLD and reaches the store", func(t *testing.T) {
		// With validation passed, the degraded store is the next stop.
		w := doJSON(t, r, http.MethodPost, "/api/v1/projects/p1/sites", `{"number":"E-1"}`)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestUpdateSiteValidation(t *testing.T) {
	r := newDegradedRouter()

	t.Run("empty patch rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPatch, "/api/v1/sites/s1", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPatch, "/api/v1/sites/s1", `{"status":"GONE"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("dimension patch passes validation", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPatch, "/api/v1/sites/s1",
			`{"dimensions":{"north":30,"south":30,"east":40,"west":40}}`)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestCreatePaymentValidation(t *testing.T) {
	r := newDegradedRouter()

	t.Run("zero amount rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/sites/s1/payments", `{"amount":0,"date":"2026-01-01"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/sites/s1/payments", `{"amount":-5,"date":"2026-01-01"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("date required", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/sites/s1/payments", `{"amount":100}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpsertSettingsValidation(t *testing.T) {
	r := newDegradedRouter()

	w := doJSON(t, r, http.MethodPut, "/api/v1/settings", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSettingsGetDegraded(t *testing.T) {
	r := newDegradedRouter()

	w := doJSON(t, r, http.MethodGet, "/api/v1/settings", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestExportDegraded(t *testing.T) {
	r := newDegradedRouter()

	w := doJSON(t, r, http.MethodGet, "/api/v1/projects/p1/export", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
