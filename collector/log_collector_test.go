package collector_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/bakery-e2e/collector"
)

func TestSlogLogCollectorHandler_LevelAndAttrs(t *testing.T) {
	logs := collector.NewLogCollector(10)
	logger := slog.New(collector.NewSlogLogCollectorHandler(logs, collector.CollectSlogLogsOptions{
		Level: slog.LevelInfo,
	}))

	logger.Debug("dropped")
	logger.With("scenario", "cart").Info("Quick add", slog.Int("ref", 1))

	records := logs.Last(10)
	require.Len(t, records, 1)
	assert.Equal(t, "Quick add", records[0].Message)

	attrs := map[string]string{}
	records[0].Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.String()
		return true
	})
	assert.Equal(t, map[string]string{"scenario": "cart", "ref": "1"}, attrs)
}

func TestSlogLogCollectorHandler_Groups(t *testing.T) {
	logs := collector.NewLogCollector(10)
	logger := slog.New(collector.NewSlogLogCollectorHandler(logs, collector.CollectSlogLogsOptions{}))

	logger.WithGroup("wait").Info("Timed out", slog.String("id", "cart-count"))

	records := logs.Last(1)
	require.Len(t, records, 1)

	var group slog.Attr
	records[0].Attrs(func(a slog.Attr) bool {
		group = a
		return false
	})
	require.Equal(t, "wait", group.Key)
	require.Equal(t, slog.KindGroup, group.Value.Kind())
	inner := group.Value.Group()
	require.Len(t, inner, 1)
	assert.Equal(t, "id", inner[0].Key)
	assert.Equal(t, "cart-count", inner[0].Value.String())

	logs.Reset()
	assert.Empty(t, logs.Last(10))
}

func TestSlogLogCollectorHandler_EmptyGroupOmitted(t *testing.T) {
	logs := collector.NewLogCollector(10)
	logger := slog.New(collector.NewSlogLogCollectorHandler(logs, collector.CollectSlogLogsOptions{}))

	logger.With("scenario", "cart").WithGroup("wait").Info("Page ready")

	records := logs.Last(1)
	require.Len(t, records, 1)

	var keys []string
	records[0].Attrs(func(a slog.Attr) bool {
		keys = append(keys, a.Key)
		return true
	})
	assert.Equal(t, []string{"scenario"}, keys)
}
