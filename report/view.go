package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/samber/lo"

	"github.com/networkteam/bakery-e2e/collector"
)

// Component renders the report as a standalone HTML page.
func (r Report) Component() templ.Component {
	sections := []templ.Component{
		head(r.Scenario),
		summary(r),
	}
	if len(r.Screenshot) > 0 {
		sections = append(sections, screenshot())
	}
	sections = append(sections,
		table(consoleTable(r.Console)),
		table(requestTable(r.Requests)),
		table(logTable(r.Logs)),
		domSection(r.DOM),
		raw(`</body></html>`),
	)
	return join(sections...)
}

// join renders components one after another.
func join(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range components {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func raw(markup string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, markup)
		return err
	})
}

func head(title string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw(`<!DOCTYPE html><html><head><meta charset="utf-8"><title>`)
		p.text(title)
		p.raw(`</title>`)
		if p.err != nil {
			return p.err
		}
		if err := chromaStyles().Render(ctx, w); err != nil {
			return err
		}
		p.raw(pageStyle)
		p.raw(`</head><body>`)
		return p.err
	})
}

func summary(r Report) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw(`<h1>`)
		p.text(r.Scenario)
		p.raw(`</h1><p class="meta">Failed at `)
		p.text(r.Time.Format(time.RFC3339))
		p.raw(` on <code>`)
		p.text(r.URL)
		p.raw(`</code></p>`)
		return p.err
	})
}

func screenshot() templ.Component {
	return raw(`<h2>Screenshot</h2><img src="` + ScreenshotFile + `" alt="Page at failure">`)
}

func domSection(markup string) templ.Component {
	return join(raw(`<h2>DOM</h2>`), highlightMarkup(markup))
}

type RowVariant string

const (
	RowVariantDefault RowVariant = ""
	RowVariantWarning RowVariant = "warn"
	RowVariantError   RowVariant = "error"
)

type TableRow struct {
	Variant RowVariant
	Cells   []string
}

type TableProps struct {
	Title   string
	Empty   string
	Headers []string
	Rows    []TableRow
}

// table renders a titled section with one row per entry, or the empty
// notice when there are none.
func table(props TableProps) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw(`<h2>`)
		p.text(props.Title)
		p.raw(`</h2>`)
		if len(props.Rows) == 0 {
			p.raw(`<p class="empty">`)
			p.text(props.Empty)
			p.raw(`</p>`)
			return p.err
		}

		p.raw(`<table><tr>`)
		for _, h := range props.Headers {
			p.raw(`<th>`)
			p.text(h)
			p.raw(`</th>`)
		}
		p.raw(`</tr>`)
		for _, row := range props.Rows {
			p.row(row)
		}
		p.raw(`</table>`)
		return p.err
	})
}

func consoleTable(entries []collector.ConsoleEntry) TableProps {
	return TableProps{
		Title:   "Browser console",
		Empty:   "No console messages",
		Headers: []string{"Time", "Type", "Message", "URL"},
		Rows: lo.Map(entries, func(entry collector.ConsoleEntry, _ int) TableRow {
			return TableRow{
				Variant: consoleRowVariant(entry),
				Cells:   []string{entry.Time.Format("15:04:05.000"), entry.Type, entry.Text, entry.URL},
			}
		}),
	}
}

func requestTable(requests []collector.ServedRequest) TableProps {
	return TableProps{
		Title:   "Requests",
		Empty:   "No requests recorded",
		Headers: []string{"Time", "Method", "Path", "Status", "Size", "Duration"},
		Rows: lo.Map(requests, func(req collector.ServedRequest, _ int) TableRow {
			path := req.Path
			if req.Query != "" {
				path += "?" + req.Query
			}
			return TableRow{
				Variant: statusRowVariant(req.Status),
				Cells: []string{req.Start.Format("15:04:05.000"), req.Method, path,
					fmt.Sprint(req.Status), fmt.Sprint(req.Size), req.Duration.String()},
			}
		}),
	}
}

func logTable(records []slog.Record) TableProps {
	return TableProps{
		Title:   "Log",
		Empty:   "No log records",
		Headers: []string{"Time", "Level", "Message", "Attributes"},
		Rows: lo.Map(records, func(record slog.Record, _ int) TableRow {
			return TableRow{
				Variant: levelRowVariant(record.Level),
				Cells: []string{record.Time.Format("15:04:05.000"), record.Level.String(),
					record.Message, formatAttrs(record)},
			}
		}),
	}
}

// printer writes markup and keeps the first error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) raw(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) text(s string) {
	p.raw(templ.EscapeString(s))
}

func (p *printer) row(row TableRow) {
	if row.Variant != RowVariantDefault {
		p.raw(`<tr class="` + string(row.Variant) + `">`)
	} else {
		p.raw(`<tr>`)
	}
	for _, cell := range row.Cells {
		p.raw(`<td>`)
		p.text(cell)
		p.raw(`</td>`)
	}
	p.raw(`</tr>`)
}

func consoleRowVariant(entry collector.ConsoleEntry) RowVariant {
	if entry.IsError() {
		return RowVariantError
	}
	return RowVariantDefault
}

func statusRowVariant(status int) RowVariant {
	if status >= 400 {
		return RowVariantError
	}
	return RowVariantDefault
}

func levelRowVariant(level slog.Level) RowVariant {
	switch {
	case level >= slog.LevelError:
		return RowVariantError
	case level >= slog.LevelWarn:
		return RowVariantWarning
	}
	return RowVariantDefault
}

// formatAttrs renders the attributes of a record as key=value pairs, groups
// flattened with dots.
func formatAttrs(record slog.Record) string {
	var pairs []string
	record.Attrs(func(attr slog.Attr) bool {
		pairs = append(pairs, flattenAttr("", attr)...)
		return true
	})
	return strings.Join(pairs, " ")
}

func flattenAttr(prefix string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	key := attr.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	if attr.Value.Kind() == slog.KindGroup {
		return lo.FlatMap(attr.Value.Group(), func(a slog.Attr, _ int) []string {
			return flattenAttr(key, a)
		})
	}
	return []string{key + "=" + attr.Value.String()}
}

const pageStyle = `<style>
body { font-family: system-ui, sans-serif; margin: 2rem; color: #222; }
h1 { font-size: 1.4rem; }
h2 { font-size: 1.1rem; margin-top: 2rem; border-bottom: 1px solid #ddd; }
.meta, .empty { color: #666; }
img { max-width: 100%; border: 1px solid #ddd; }
table { border-collapse: collapse; width: 100%; font-size: 0.85rem; }
th, td { text-align: left; padding: 0.25rem 0.5rem; border-bottom: 1px solid #eee; vertical-align: top; }
tr.error td { background: #fdecea; }
tr.warn td { background: #fff8e1; }
.chroma { padding: 1rem; overflow-x: auto; }
</style>`
