package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestHealth(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.Match([]string{http.MethodGet, http.MethodHead, http.MethodOptions}, "/healthz", Health)

	tests := []struct {
		method    string
		wantCode  int
		wantBody  string
		wantAllow string
	}{
		{method: http.MethodGet, wantCode: http.StatusOK, wantBody: `{"status":"ok"}`},
		{method: http.MethodHead, wantCode: http.StatusOK},
		{method: http.MethodOptions, wantCode: http.StatusNoContent, wantAllow: "GET, HEAD, OPTIONS"},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, "/healthz", nil))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
			assert.Equal(t, tt.wantAllow, w.Header().Get("Allow"))
			if tt.wantBody == "" {
				assert.Zero(t, w.Body.Len())
			} else {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestHealth_UnroutedMethod(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.GET("/healthz", Health)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/healthz", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
