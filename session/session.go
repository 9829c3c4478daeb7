// Package session owns the single browser session of a suite run and the
// helpers scenarios use to locate elements and wait for application state.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/networkteam/bakery-e2e/bakery"
	"github.com/networkteam/bakery-e2e/collector"
	"github.com/networkteam/bakery-e2e/config"
)

const (
	consoleCapacity = 200

	viewportWidth  = 1920
	viewportHeight = 1080
)

// Session is one browser automation session: a Playwright driver, a browser,
// a context and a single page. Scenarios share it and reset it between runs.
type Session struct {
	cfg    config.Config
	logger *slog.Logger

	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page

	console *collector.RingBuffer[collector.ConsoleEntry]
	buffers []Resetter
}

// Resetter is a diagnostics buffer Reset clears between scenarios.
type Resetter interface {
	Reset()
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithBuffers registers diagnostics buffers, e.g. recorded app requests and
// collected logs, that belong to a single scenario.
func WithBuffers(buffers ...Resetter) Option {
	return func(s *Session) {
		s.buffers = append(s.buffers, buffers...)
	}
}

// Start launches the configured browser and opens the page all scenarios
// drive. The viewport is maximized: headed browsers start maximized without a
// fixed viewport, headless ones get a full HD viewport.
func Start(cfg config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("starting session: base URL is empty")
	}

	s := &Session{
		cfg:     cfg,
		logger:  slog.Default(),
		console: collector.NewRingBuffer[collector.ConsoleEntry](consoleCapacity),
	}
	for _, opt := range opts {
		opt(s)
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("starting playwright: %w", err)
	}
	s.pw = pw

	launchOptions := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	}
	if cfg.SlowMo > 0 {
		launchOptions.SlowMo = playwright.Float(float64(cfg.SlowMo.Milliseconds()))
	}
	contextOptions := playwright.BrowserNewContextOptions{}
	if cfg.Headless {
		contextOptions.Viewport = &playwright.Size{Width: viewportWidth, Height: viewportHeight}
	} else {
		if cfg.Browser == config.BrowserChromium {
			launchOptions.Args = []string{"--start-maximized"}
		}
		contextOptions.NoViewport = playwright.Bool(true)
	}

	browser, err := s.browserType().Launch(launchOptions)
	if err != nil {
		s.Stop()
		return nil, fmt.Errorf("launching %s: %w", cfg.Browser, err)
	}
	s.browser = browser

	browserContext, err := browser.NewContext(contextOptions)
	if err != nil {
		s.Stop()
		return nil, fmt.Errorf("creating browser context: %w", err)
	}
	browserContext.SetDefaultTimeout(s.timeoutMS())
	browserContext.SetDefaultNavigationTimeout(s.timeoutMS())
	s.context = browserContext

	page, err := browserContext.NewPage()
	if err != nil {
		s.Stop()
		return nil, fmt.Errorf("opening page: %w", err)
	}
	page.OnConsole(func(msg playwright.ConsoleMessage) {
		s.console.Add(collector.ConsoleEntry{
			Time: time.Now(),
			Type: msg.Type(),
			Text: msg.Text(),
			URL:  page.URL(),
		})
	})
	page.OnPageError(func(pageErr error) {
		s.console.Add(collector.ConsoleEntry{
			Time: time.Now(),
			Type: "pageerror",
			Text: pageErr.Error(),
			URL:  page.URL(),
		})
	})
	s.page = page

	s.logger.Info("Browser session started",
		slog.String("browser", cfg.Browser),
		slog.Bool("headless", cfg.Headless),
		slog.String("baseURL", cfg.BaseURL),
		slog.Duration("waitTimeout", cfg.WaitTimeout),
	)
	return s, nil
}

func (s *Session) browserType() playwright.BrowserType {
	switch s.cfg.Browser {
	case config.BrowserFirefox:
		return s.pw.Firefox
	case config.BrowserWebKit:
		return s.pw.WebKit
	default:
		return s.pw.Chromium
	}
}

// Stop releases page, context, browser and driver. It is safe to call on a
// nil or partially started Session and more than once. Close errors are
// logged and otherwise ignored.
func (s *Session) Stop() {
	if s == nil {
		return
	}
	logger := s.logger
	if logger == nil {
		logger = slog.Default()
	}

	if s.page != nil {
		if err := s.page.Close(); err != nil {
			logger.Debug("Closing page failed", slog.Any("error", err))
		}
		s.page = nil
	}
	if s.context != nil {
		if err := s.context.Close(); err != nil {
			logger.Debug("Closing browser context failed", slog.Any("error", err))
		}
		s.context = nil
	}
	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			logger.Debug("Closing browser failed", slog.Any("error", err))
		}
		s.browser = nil
	}
	if s.pw != nil {
		if err := s.pw.Stop(); err != nil {
			logger.Debug("Stopping playwright failed", slog.Any("error", err))
		}
		s.pw = nil
		logger.Info("Browser session stopped")
	}
}

// Reset isolates the next scenario: it opens the login page, clears local
// and session storage, reloads so no script sees the old state and clears
// the diagnostics of the previous scenario.
func (s *Session) Reset() error {
	s.console.Reset()
	for _, b := range s.buffers {
		b.Reset()
	}

	if err := s.Open(bakery.PageLogin); err != nil {
		return fmt.Errorf("resetting session: %w", err)
	}
	if err := s.ClearStorage(); err != nil {
		return fmt.Errorf("resetting session: %w", err)
	}
	if _, err := s.page.Reload(); err != nil {
		return fmt.Errorf("resetting session: reloading: %w", err)
	}
	return nil
}

// ClearStorage wipes localStorage and sessionStorage of the current origin.
func (s *Session) ClearStorage() error {
	_, err := s.page.Evaluate(`() => {
		window.localStorage.clear();
		window.sessionStorage.clear();
	}`)
	if err != nil {
		return fmt.Errorf("clearing storage: %w", err)
	}
	return nil
}

// Open navigates to an application page and waits for it to load.
func (s *Session) Open(page bakery.Page) error {
	target := s.cfg.PageURL(string(page))
	s.logger.Debug("Navigating", slog.String("url", target))

	_, err := s.page.Goto(target, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	})
	if err != nil {
		if redirectedByPage(err) {
			s.logger.Debug("Navigation replaced by the page", slog.String("url", target), slog.Any("error", err))
			return nil
		}
		return s.waitError("open", string(page), err)
	}
	return nil
}

// redirectedByPage reports whether a navigation failed only because a script
// of the page navigated elsewhere, e.g. the dashboard sending a visitor
// without a session back to the login page.
func redirectedByPage(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "interrupted by another navigation") ||
		strings.Contains(msg, "net::ERR_ABORTED") ||
		strings.Contains(msg, "NS_BINDING_ABORTED")
}

// OnPage reports whether the current URL points at page.
func (s *Session) OnPage(page bakery.Page) bool {
	u, err := url.Parse(s.page.URL())
	if err != nil {
		return false
	}
	return strings.HasSuffix(u.Path, "/"+string(page))
}

// WaitForPage waits until the browser has navigated to page.
func (s *Session) WaitForPage(page bakery.Page) error {
	err := s.poll(func() (bool, error) {
		return s.OnPage(page), nil
	})
	if err != nil {
		return s.timedOut(&TimeoutError{
			Op:      "wait for page",
			ID:      string(page),
			Timeout: s.cfg.WaitTimeout,
			Err:     fmt.Errorf("current URL %s", s.page.URL()),
		})
	}
	return nil
}

// URL is the current page URL.
func (s *Session) URL() string {
	return s.page.URL()
}

// Content returns the serialized DOM of the current page.
func (s *Session) Content() (string, error) {
	return s.page.Content()
}

// Screenshot captures the full page as PNG.
func (s *Session) Screenshot() ([]byte, error) {
	return s.page.Screenshot(playwright.PageScreenshotOptions{
		FullPage: playwright.Bool(true),
	})
}

// Console returns the console messages and page errors since the last Reset.
func (s *Session) Console() []collector.ConsoleEntry {
	return s.console.All()
}

// Config returns the configuration the session was started with.
func (s *Session) Config() config.Config {
	return s.cfg
}

// Logger returns the session logger.
func (s *Session) Logger() *slog.Logger {
	return s.logger
}

// Page exposes the underlying Playwright page for checks the helpers do not
// cover.
func (s *Session) Page() playwright.Page {
	return s.page
}

func (s *Session) timeoutMS() float64 {
	return float64(s.cfg.WaitTimeout.Milliseconds())
}

func (s *Session) poll(cond Condition) error {
	return Poll(context.Background(), s.cfg.WaitTimeout, s.cfg.PollInterval, cond)
}
