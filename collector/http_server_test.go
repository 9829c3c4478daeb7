package collector_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/bakery-e2e/collector"
)

func TestRequestRecorder_RecordsRequests(t *testing.T) {
	recorder := collector.NewRequestRecorder(10, collector.RequestRecorderOptions{})

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("Hello, Bakery!"))
	})

	server := httptest.NewServer(recorder.Middleware(handler))
	defer server.Close()

	resp, err := http.Get(server.URL + "/login.html?from=test")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "Hello, Bakery!", string(body))

	resp, err = http.Get(server.URL + "/missing")
	require.NoError(t, err)
	resp.Body.Close()

	requests := recorder.Last(10)
	require.Len(t, requests, 2)

	assert.Equal(t, http.MethodGet, requests[0].Method)
	assert.Equal(t, "/login.html", requests[0].Path)
	assert.Equal(t, "from=test", requests[0].Query)
	assert.Equal(t, http.StatusOK, requests[0].Status)
	assert.Equal(t, int64(len("Hello, Bakery!")), requests[0].Size)
	assert.False(t, requests[0].ID.IsNil())
	assert.False(t, requests[0].Start.IsZero())

	assert.Equal(t, "/missing", requests[1].Path)
	assert.Equal(t, http.StatusNotFound, requests[1].Status)
}

func TestRequestRecorder_SkipPaths(t *testing.T) {
	recorder := collector.NewRequestRecorder(10, collector.RequestRecorderOptions{
		SkipPaths: []string{"/healthz"},
	})
	handler := recorder.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard.html", nil))

	requests := recorder.Last(10)
	require.Len(t, requests, 1)
	assert.Equal(t, "/dashboard.html", requests[0].Path)
	assert.Equal(t, http.StatusNoContent, requests[0].Status)

	recorder.Reset()
	assert.Empty(t, recorder.Last(10))
}
