package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	return rr.Body.String()
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	m := New("test", prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/v1/posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, id := range []string{"a", "b"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/posts/"+id, nil))
		require.Equal(t, http.StatusTeapot, rr.Code)
	}

	body := scrape(t, m)
	assert.Contains(t, body, `breadit_http_requests_total{method="GET",path="/v1/posts/{id}",service="test",status="418"} 2`)
	assert.Contains(t, body, `breadit_http_requests_in_flight{service="test"} 0`)
}

func TestApplicationCounters(t *testing.T) {
	m := New("test", prometheus.NewRegistry())

	m.ObserveFeed(3)
	m.ObserveFeed(2)
	m.ObserveUsernameUpdate("conflict")

	body := scrape(t, m)
	assert.Contains(t, body, `breadit_feed_posts_served_total{service="test"} 5`)
	assert.Contains(t, body, `breadit_username_updates_total{outcome="conflict",service="test"} 1`)
}
