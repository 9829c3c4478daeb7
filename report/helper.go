package report

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlightMarkup renders page markup with syntax highlighting. Very large
// documents are cut at maxMarkupBytes.
func highlightMarkup(markup string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(markup) > maxMarkupBytes {
			markup = markup[:maxMarkupBytes] + "\n<!-- truncated -->"
		}

		lexer := lexers.Get("html")
		if lexer == nil {
			lexer = lexers.Fallback
		}
		lexer = chroma.Coalesce(lexer)

		formatter, style := chromaFormatterAndStyle()

		iterator, err := lexer.Tokenise(nil, markup)
		if err != nil {
			return err
		}

		return formatter.Format(w, style, iterator)
	})
}

const maxMarkupBytes = 512 * 1024

func chromaFormatterAndStyle() (*html.Formatter, *chroma.Style) {
	formatter := html.New(
		html.Standalone(false),
		html.WithClasses(true),
		html.TabWidth(2),
	)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	return formatter, style
}

func chromaStyles() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, _ = io.WriteString(w, "<style>")
		formatter, style := chromaFormatterAndStyle()
		err := formatter.WriteCSS(w, style)

		_, _ = io.WriteString(w, ".chroma { white-space: pre-wrap; }\n")
		_, _ = io.WriteString(w, "</style>")
		return err
	})
}
