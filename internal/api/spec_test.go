package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger_LoadsEveryRoute(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err)

	paths := []string{
		"/health",
		"/api/v1/accounts",
		"/api/v1/accounts/{accountNumber}",
		"/api/v1/accounts/{accountNumber}/deposit",
		"/api/v1/accounts/{accountNumber}/withdraw",
		"/api/v1/accounts/{accountNumber}/transactions",
		"/api/v1/transfers",
		"/api/v1/transactions",
		"/api/v1/transactions/{transactionId}",
	}
	for _, p := range paths {
		assert.NotNil(t, doc.Paths.Find(p), "missing path %s", p)
	}
}

func TestGetSwagger_ReturnsSameDocument(t *testing.T) {
	first, err := GetSwagger()
	require.NoError(t, err)
	second, err := GetSwagger()
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestDocsRoutes(t *testing.T) {
	mux := http.NewServeMux()
	RegisterDocsRoutes(mux)

	t.Run("openapi json", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/openapi", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "3.0.3", body["openapi"])
	})

	t.Run("swagger ui", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "/docs/openapi")
	})

	t.Run("root redirects", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "/docs", rec.Header().Get("Location"))
	})
}

func TestDocsRoutes_YAMLSource(t *testing.T) {
	mux := http.NewServeMux()
	RegisterDocsRoutes(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/openapi.yaml", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "title: Personal Bank API")
}
