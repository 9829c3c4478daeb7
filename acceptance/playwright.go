//go:build acceptance
// +build acceptance

package acceptance

import (
	"fmt"
	"log/slog"

	"github.com/playwright-community/playwright-go"

	"github.com/networkteam/bakery-e2e/config"
)

// installBrowsers downloads the Playwright driver and the configured browser
// if they are missing.
func installBrowsers(cfg config.Config, logger *slog.Logger) error {
	logger.Info("Installing Playwright browser", slog.String("browser", cfg.Browser))

	err := playwright.Install(&playwright.RunOptions{
		Browsers: []string{cfg.Browser},
	})
	if err != nil {
		return fmt.Errorf("installing playwright %s: %w", cfg.Browser, err)
	}
	return nil
}
