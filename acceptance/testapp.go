//go:build acceptance
// +build acceptance

package acceptance

import (
	"log/slog"
	"net/http/httptest"

	"github.com/networkteam/bakery-e2e/appserver"
	"github.com/networkteam/bakery-e2e/collector"
)

// TestApp serves the bundled bakery application on a local port and records
// the requests the browser makes.
type TestApp struct {
	Server   *httptest.Server
	URL      string
	Requests *collector.RequestRecorder
}

// NewTestApp starts the bundled application.
func NewTestApp(logger *slog.Logger) *TestApp {
	requests := collector.NewRequestRecorder(100, collector.RequestRecorderOptions{
		SkipPaths: []string{appserver.HealthPath},
	})

	server := httptest.NewServer(appserver.NewRouter(appserver.Options{
		Logger:   logger,
		Requests: requests,
	}))

	return &TestApp{
		Server:   server,
		URL:      server.URL,
		Requests: requests,
	}
}

// Close shuts down the test application.
func (app *TestApp) Close() {
	app.Server.Close()
}
