package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		timeout time.Duration
		want    time.Duration
	}{
		{"configured timeout", 3 * time.Second, 3 * time.Second},
		{"zero uses default", 0, DefaultTimeout},
		{"negative uses default", -time.Second, DefaultTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewHTTPClient(tt.timeout)
			assert.Equal(t, tt.want, c.Timeout)

			tr, ok := c.Transport.(*http.Transport)
			require.True(t, ok, "transport should be *http.Transport")
			assert.Equal(t, tt.want, tr.ResponseHeaderTimeout)
			assert.NotNil(t, tr.Proxy)
		})
	}
}
