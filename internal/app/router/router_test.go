package router

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"stockchart/internal/app/di"
	"stockchart/internal/platform/config"
)

// newTestRouter wires the real stack against a fake provider.
func newTestRouter(t *testing.T, provider http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server := httptest.NewServer(provider)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.AlphaVantage.APIKey = "test-key"
	cfg.AlphaVantage.BaseURL = server.URL
	cfg.AlphaVantage.TimeoutSec = 5
	return NewRouter(di.NewChartHandler(cfg))
}

func TestNewRouter_Routes(t *testing.T) {
	r := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected provider call: %s", r.URL.RawQuery)
	})

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/info", http.StatusFound},
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodHead, "/healthz", http.StatusOK},
		{http.MethodOptions, "/healthz", http.StatusNoContent},
		{http.MethodGet, "/missing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

// TestNewRouter_EndToEnd drives a form submission through to the embedded SVG page.
func TestNewRouter_EndToEnd(t *testing.T) {
	var (
		mu        sync.Mutex
		functions []string
	)
	called := func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), functions...)
	}
	r := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		fn := r.URL.Query().Get("function")
		mu.Lock()
		functions = append(functions, fn)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Query().Get("symbol") == "NOPE":
			_, _ = w.Write([]byte(`{}`))
		case fn == "OVERVIEW":
			_, _ = w.Write([]byte(`{"Symbol": "IBM", "Name": "International Business Machines"}`))
		default:
			_, _ = w.Write([]byte(`{"Weekly Time Series": {
				"2024-01-12": {"2. high": "162.0"},
				"2024-01-05": {"2. high": "160.5"},
				"2024-01-19": {"2. high": "171.2"}
			}}`))
		}
	})

	post := func(symbol string) *httptest.ResponseRecorder {
		form := url.Values{"symbol": {symbol}, "interval": {"TIME_SERIES_WEEKLY"}}
		req := httptest.NewRequest(http.MethodPost, "/info", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := post("IBM")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "International Business Machines (IBM)")
	assert.Contains(t, w.Body.String(), "<svg")
	assert.Contains(t, w.Body.String(), "Stock Price of International Business Machines")
	assert.Equal(t, []string{"OVERVIEW", "TIME_SERIES_WEEKLY"}, called())

	mu.Lock()
	functions = nil
	mu.Unlock()
	w = post("NOPE")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "error=Invalid+ticker+symbol")
	assert.Equal(t, []string{"OVERVIEW"}, called(), "no time series call after an invalid ticker")
}
