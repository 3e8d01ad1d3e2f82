package checker

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"checkconnect/internal/configuration"
	"checkconnect/internal/models"
)

func newTestChecker(timeout time.Duration) *Checker {
	return New(configuration.Config{Timeout: timeout})
}

func TestCheckWebsiteStatusCodes(t *testing.T) {
	testCases := []struct {
		name              string
		status            int
		expectedReachable bool
	}{
		{name: "200 OK", status: http.StatusOK, expectedReachable: true},
		{name: "204 No Content", status: http.StatusNoContent, expectedReachable: true},
		{name: "301 redirect counts as reachable", status: http.StatusMovedPermanently, expectedReachable: true},
		{name: "404 Not Found", status: http.StatusNotFound, expectedReachable: false},
		{name: "500 Internal Server Error", status: http.StatusInternalServerError, expectedReachable: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tc.status == http.StatusMovedPermanently {
					w.Header().Set("Location", "/elsewhere")
				}
				w.WriteHeader(tc.status)
			}))
			defer server.Close()

			result := newTestChecker(5 * time.Second).CheckWebsite(context.Background(), server.URL)

			assert.Equal(t, tc.expectedReachable, result.Reachable)
			assert.Equal(t, tc.status, result.StatusCode)
			assert.Equal(t, models.KindWebsite, result.Kind)
			assert.Equal(t, server.URL, result.Target)
		})
	}
}

func TestCheckWebsiteConnectionRefused(t *testing.T) {
	result := newTestChecker(time.Second).CheckWebsite(context.Background(), "http://localhost:9999")

	assert.False(t, result.Reachable)
	assert.NotEmpty(t, result.Error)
	assert.Zero(t, result.StatusCode)
}

func TestCheckWebsiteTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	start := time.Now()
	result := newTestChecker(100 * time.Millisecond).CheckWebsite(context.Background(), server.URL)
	elapsed := time.Since(start)

	assert.False(t, result.Reachable)
	assert.NotEmpty(t, result.Error)
	assert.Less(t, elapsed, time.Second, "probe must not block past its timeout")
}

func TestCheckWebsiteInvalidURL(t *testing.T) {
	result := newTestChecker(time.Second).CheckWebsite(context.Background(), "://not-a-url")

	assert.False(t, result.Reachable)
	assert.NotEmpty(t, result.Error)
}
