package collector

import (
	"context"
	"log/slog"
	"slices"

	"github.com/samber/lo"
)

// LogCollector keeps the most recent slog records of a suite run.
type LogCollector struct {
	buffer *RingBuffer[slog.Record]
}

func NewLogCollector(capacity uint64) *LogCollector {
	return &LogCollector{
		buffer: NewRingBuffer[slog.Record](capacity),
	}
}

func (c *LogCollector) Collect(_ context.Context, record slog.Record) {
	c.buffer.Add(record)
}

// Last returns up to n of the most recent records, oldest first.
func (c *LogCollector) Last(n uint64) []slog.Record {
	return c.buffer.Last(n)
}

func (c *LogCollector) Reset() {
	c.buffer.Reset()
}

type CollectSlogLogsOptions struct {
	// Level is the minimum level of logs to collect.
	Level slog.Level
}

// SlogLogCollectorHandler is a slog.Handler writing into a LogCollector.
type SlogLogCollectorHandler struct {
	collector *LogCollector
	options   CollectSlogLogsOptions

	attrs  []slog.Attr
	groups []string
}

func NewSlogLogCollectorHandler(collector *LogCollector, options CollectSlogLogsOptions) *SlogLogCollectorHandler {
	return &SlogLogCollectorHandler{
		collector: collector,
		options:   options,

		attrs:  []slog.Attr{},
		groups: []string{},
	}
}

func (h *SlogLogCollectorHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.options.Level <= level
}

func (h *SlogLogCollectorHandler) Handle(ctx context.Context, record slog.Record) error {
	// Handler attributes go before record attributes, so the record is rebuilt.
	newRecord := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	newRecord.AddAttrs(h.attrs...)

	attrs := []slog.Attr{}
	record.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, attr)
		return true
	})

	// Empty groups are dropped, as slog handlers must.
	for i := range h.groups {
		if len(attrs) == 0 {
			break
		}
		k := h.groups[len(h.groups)-1-i]
		attrs = []slog.Attr{
			slog.Group(k, lo.ToAnySlice(attrs)...),
		}
	}
	newRecord.AddAttrs(attrs...)

	h.collector.Collect(ctx, newRecord)

	return nil
}

func (h *SlogLogCollectorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &SlogLogCollectorHandler{
		collector: h.collector,
		options:   h.options,

		attrs:  appendAttrsToGroup(h.groups, h.attrs, attrs...),
		groups: h.groups,
	}
}

func (h *SlogLogCollectorHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	return &SlogLogCollectorHandler{
		collector: h.collector,
		options:   h.options,

		attrs:  h.attrs,
		groups: append(slices.Clone(h.groups), name),
	}
}

func appendAttrsToGroup(groups []string, actualAttrs []slog.Attr, newAttrs ...slog.Attr) []slog.Attr {
	actualAttrs = slices.Clone(actualAttrs)

	if len(groups) == 0 {
		return append(actualAttrs, newAttrs...)
	}

	for i := range actualAttrs {
		attr := actualAttrs[i]
		if attr.Key == groups[0] && attr.Value.Kind() == slog.KindGroup {
			actualAttrs[i] = slog.Group(groups[0], lo.ToAnySlice(appendAttrsToGroup(groups[1:], attr.Value.Group(), newAttrs...))...)
			return actualAttrs
		}
	}

	return append(
		actualAttrs,
		slog.Group(
			groups[0],
			lo.ToAnySlice(appendAttrsToGroup(groups[1:], []slog.Attr{}, newAttrs...))...,
		),
	)
}
