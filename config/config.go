// Package config loads the suite configuration from the environment.
//
// An optional .env file in the working directory is read first; variables
// already set in the environment win.
package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Browsers accepted by BAKERY_BROWSER.
const (
	BrowserChromium = "chromium"
	BrowserFirefox  = "firefox"
	BrowserWebKit   = "webkit"
)

// Config holds the suite configuration.
type Config struct {
	// BaseURL is where the application under test lives. Empty means the
	// bundled application is served on a local port.
	BaseURL string `envconfig:"BAKERY_BASE_URL"`

	// WaitTimeout bounds every explicit wait.
	WaitTimeout time.Duration `envconfig:"BAKERY_WAIT_TIMEOUT" default:"10s"`
	// PollInterval is the delay between checks of a polled condition.
	PollInterval time.Duration `envconfig:"BAKERY_POLL_INTERVAL" default:"100ms"`

	Headless bool          `envconfig:"BAKERY_HEADLESS" default:"true"`
	Browser  string        `envconfig:"BAKERY_BROWSER" default:"chromium"`
	SlowMo   time.Duration `envconfig:"BAKERY_SLOW_MO" default:"0s"`

	// TestIDAttribute is the element attribute carrying stable identifiers.
	TestIDAttribute string `envconfig:"BAKERY_TEST_ID_ATTRIBUTE" default:"data-testid"`

	// ArtifactsDir receives failure reports. Empty disables them.
	ArtifactsDir string `envconfig:"BAKERY_ARTIFACTS_DIR"`

	LogLevel slog.Level `envconfig:"BAKERY_LOG_LEVEL" default:"info"`

	// InstallBrowsers downloads the Playwright driver and browser before the run.
	InstallBrowsers bool `envconfig:"BAKERY_INSTALL_BROWSERS" default:"true"`

	// ListenAddr is used by bakery-serve.
	ListenAddr string `envconfig:"BAKERY_LISTEN_ADDR" default:"127.0.0.1:8080"`
}

// ValidationError represents a configuration validation error with multiple issues.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("configuration validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Load reads .env (if present) and the environment, applies defaults and
// validates the result.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var problems []string

	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https" && u.Scheme != "file") || (u.Scheme != "file" && u.Host == "") {
			problems = append(problems, fmt.Sprintf("BAKERY_BASE_URL must be an absolute http(s) or file URL, got %q", c.BaseURL))
		}
	}
	if c.WaitTimeout <= 0 {
		problems = append(problems, "BAKERY_WAIT_TIMEOUT must be positive")
	}
	if c.PollInterval <= 0 {
		problems = append(problems, "BAKERY_POLL_INTERVAL must be positive")
	} else if c.PollInterval >= c.WaitTimeout {
		problems = append(problems, "BAKERY_POLL_INTERVAL must be shorter than BAKERY_WAIT_TIMEOUT")
	}
	switch c.Browser {
	case BrowserChromium, BrowserFirefox, BrowserWebKit:
	default:
		problems = append(problems, fmt.Sprintf("BAKERY_BROWSER must be one of chromium, firefox, webkit, got %q", c.Browser))
	}
	if c.SlowMo < 0 {
		problems = append(problems, "BAKERY_SLOW_MO must not be negative")
	}
	if strings.TrimSpace(c.TestIDAttribute) == "" {
		problems = append(problems, "BAKERY_TEST_ID_ATTRIBUTE must not be empty")
	}

	if len(problems) > 0 {
		return &ValidationError{Errors: problems}
	}
	return nil
}

// PageURL resolves an application page against BaseURL.
func (c Config) PageURL(page string) string {
	return strings.TrimSuffix(c.BaseURL, "/") + "/" + strings.TrimPrefix(page, "/")
}
