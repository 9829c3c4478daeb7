// Package report writes failure reports for browser scenarios: a screenshot
// and an HTML page with the diagnostics collected while the scenario ran.
package report

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/networkteam/bakery-e2e/collector"
)

const (
	ScreenshotFile = "screenshot.png"
	HTMLFile       = "report.html"
)

// Report is everything known about a failed scenario.
type Report struct {
	Scenario string
	Time     time.Time

	URL      string
	Console  []collector.ConsoleEntry
	Requests []collector.ServedRequest
	Logs     []slog.Record
	// DOM is the serialized page markup.
	DOM string

	Screenshot []byte
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// DirName turns a test name into a directory name.
func DirName(scenario string) string {
	name := unsafeChars.ReplaceAllString(scenario, "_")
	if name == "" || name == "." || name == ".." {
		return "scenario"
	}
	return name
}

// Write stores the report below dir/<scenario> and returns that directory.
// The screenshot is only written if one was captured.
func (r Report) Write(dir string) (string, error) {
	target := filepath.Join(dir, DirName(r.Scenario))
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}

	if len(r.Screenshot) > 0 {
		if err := os.WriteFile(filepath.Join(target, ScreenshotFile), r.Screenshot, 0o644); err != nil {
			return "", fmt.Errorf("writing screenshot: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := r.Component().Render(context.Background(), &buf); err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}
	if err := os.WriteFile(filepath.Join(target, HTMLFile), buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return target, nil
}
