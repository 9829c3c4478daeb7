// Package logging builds the suite logger.
package logging

import (
	"io"
	"log/slog"

	slogmulti "github.com/samber/slog-multi"

	"github.com/networkteam/bakery-e2e/collector"
)

// New returns a logger writing text to w at level. When logs is not nil,
// debug records are also kept there for failure reports.
func New(w io.Writer, level slog.Level, logs *collector.LogCollector) *slog.Logger {
	text := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	if logs == nil {
		return slog.New(text)
	}

	return slog.New(
		slogmulti.Fanout(
			text,
			collector.NewSlogLogCollectorHandler(logs, collector.CollectSlogLogsOptions{
				Level: slog.LevelDebug,
			}),
		),
	)
}
