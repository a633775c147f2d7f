package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	auth "Alucut/internal/auth"
	config "Alucut/internal/config"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, cfg *config.Config) *httptest.Server {
	t.Helper()
	r := mux.NewRouter()
	HandleList(r, cfg)
	srv := httptest.NewServer(CORS(r))
	t.Cleanup(srv.Close)
	return srv
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t, &config.Config{RateLimit: 100, RateBurst: 100})

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/api/tools/window/calc", "application/json", strings.NewReader(`{"width":"72.5","height":"48.25"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	resp, err = http.Get(srv.URL + "/api/tools/window/calc")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestPreflight(t *testing.T) {
	srv := newTestServer(t, &config.Config{RateLimit: 1, RateBurst: 1})

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/tools/window/calc", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestTokenRequiredWhenConfigured(t *testing.T) {
	key := []byte("secret")
	srv := newTestServer(t, &config.Config{RateLimit: 100, RateBurst: 100, TokenKey: key})
	body := `{"width":"36","height":"60"}`

	resp, err := http.Post(srv.URL+"/api/tools/window/calc", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token, err := (&auth.TokenAuth{Key: key}).NewToken("test", time.Minute)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/tools/window/calc", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRateLimited(t *testing.T) {
	srv := newTestServer(t, &config.Config{RateLimit: 0.001, RateBurst: 1})

	codes := []int{}
	for i := 0; i < 2; i++ {
		resp, err := http.Post(srv.URL+"/api/tools/window/calc", "application/json", strings.NewReader(`{"width":"36","height":"60"}`))
		require.NoError(t, err)
		resp.Body.Close()
		codes = append(codes, resp.StatusCode)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}
