package session

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/bakery-e2e/config"
)

func testConfig() config.Config {
	return config.Config{
		BaseURL:         "http://127.0.0.1:8080",
		WaitTimeout:     2 * time.Second,
		PollInterval:    50 * time.Millisecond,
		Headless:        true,
		Browser:         config.BrowserChromium,
		TestIDAttribute: "data-testid",
	}
}

func TestStop_NilSessionIsNoop(t *testing.T) {
	var s *Session
	assert.NotPanics(t, s.Stop)
}

func TestStop_UnstartedSessionIsIdempotent(t *testing.T) {
	s := &Session{}
	assert.NotPanics(t, func() {
		s.Stop()
		s.Stop()
	})
}

func TestStart_RejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Browser = "netscape"

	s, err := Start(cfg)
	require.Error(t, err)
	assert.Nil(t, s)

	var validationErr *config.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestStart_RequiresBaseURL(t *testing.T) {
	cfg := testConfig()
	cfg.BaseURL = ""

	s, err := Start(cfg)
	require.Error(t, err)
	assert.Nil(t, s)
	assert.Contains(t, err.Error(), "base URL")
}

func TestSelector(t *testing.T) {
	s := &Session{cfg: testConfig()}

	assert.Equal(t, `[data-testid="login-submit-button"]`, s.selector("login-submit-button"))
	assert.Equal(t, `[data-testid^="cart-item-"]`, s.prefixSelector("cart-item-"))

	s.cfg.TestIDAttribute = "data-test"
	assert.Equal(t, `[data-test="cart-count"]`, s.selector("cart-count"))
}

func TestWaitError(t *testing.T) {
	var logs bytes.Buffer
	s := &Session{cfg: testConfig(), logger: slog.New(slog.NewTextHandler(&logs, nil))}

	t.Run("playwright timeout becomes TimeoutError", func(t *testing.T) {
		err := s.waitError("click", "checkout-button", playwright.ErrTimeout)

		var timeoutErr *TimeoutError
		require.ErrorAs(t, err, &timeoutErr)
		assert.Equal(t, "click", timeoutErr.Op)
		assert.Equal(t, "checkout-button", timeoutErr.ID)
		assert.Equal(t, 2*time.Second, timeoutErr.Timeout)
		assert.ErrorIs(t, err, ErrTimeout)
		assert.Contains(t, logs.String(), `msg="Wait timed out" op=click id=checkout-button wait.timeout=2s`)
	})

	t.Run("other errors keep the identifier", func(t *testing.T) {
		cause := errors.New("target closed")
		err := s.waitError("fill", "search-input", cause)

		assert.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, ErrTimeout)
		assert.Contains(t, err.Error(), `"search-input"`)
	})
}

func TestRedirectedByPage(t *testing.T) {
	assert.True(t, redirectedByPage(errors.New(`Navigation to "http://127.0.0.1/dashboard.html" is interrupted by another navigation to "http://127.0.0.1/login.html"`)))
	assert.True(t, redirectedByPage(errors.New("net::ERR_ABORTED at http://127.0.0.1/dashboard.html")))
	assert.False(t, redirectedByPage(errors.New("net::ERR_CONNECTION_REFUSED at http://127.0.0.1/login.html")))
	assert.False(t, redirectedByPage(playwright.ErrTimeout))
}
