package content

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
)

// ExportOptions tunes the static page.
type ExportOptions struct {
	// Commands are listed in the page's help block, in order.
	Commands []string
	Describe func(cmd string) string
}

// WriteHTML renders the document as a standalone HTML page whose section
// elements carry the same ids the console navigates to.
func WriteHTML(w io.Writer, doc Document, opts ExportOptions) error {
	var b strings.Builder
	title := html.EscapeString(doc.Title)

	b.WriteString("<!doctype html>\n<html>\n<head>\n  <meta charset=\"utf-8\">\n")
	b.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "  <title>%s</title>\n", title)
	if len(doc.Sections) > 0 {
		if desc := PlainText(doc.Sections[0].Body); desc != "" {
			fmt.Fprintf(&b, "  <meta name=\"description\" content=\"%s\">\n", html.EscapeString(desc))
		}
	}
	b.WriteString(exportStyle)
	b.WriteString("</head>\n<body>\n<header>\n")
	for _, h := range doc.Header {
		class := "typing"
		if h.Typing == "name" {
			class = "typing name"
		}
		fmt.Fprintf(&b, "  <p class=\"%s\">%s</p>\n", class, html.EscapeString(h.Text))
	}
	b.WriteString("</header>\n<main>\n")

	for _, s := range doc.Sections {
		fmt.Fprintf(&b, "<section id=\"%s\">\n  <h2>%s</h2>\n", html.EscapeString(s.ID), html.EscapeString(s.Title))
		b.Write(renderSectionHTML(s.Body))
		b.WriteString("</section>\n")
	}
	b.WriteString("</main>\n")

	if len(opts.Commands) > 0 {
		b.WriteString("<aside id=\"help-overlay\">\n  <h2>Available commands</h2>\n  <dl>\n")
		for _, cmd := range opts.Commands {
			desc := ""
			if opts.Describe != nil {
				desc = opts.Describe(cmd)
			}
			fmt.Fprintf(&b, "    <dt>%s</dt><dd>%s</dd>\n", html.EscapeString(cmd), html.EscapeString(desc))
		}
		b.WriteString("  </dl>\n</aside>\n")
	}
	b.WriteString("</body>\n</html>\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	return nil
}

func renderSectionHTML(body string) []byte {
	if strings.TrimSpace(body) == "" {
		return nil
	}
	opts := mdhtml.RendererOptions{Flags: mdhtml.CommonFlags | mdhtml.HrefTargetBlank}
	return markdown.Render(parseMarkdown(body), mdhtml.NewRenderer(opts))
}

const exportStyle = `  <style>
    body { font-family: ui-monospace, SFMono-Regular, Menlo, monospace; max-width: 860px; margin: 40px auto; padding: 0 20px; line-height: 1.6; background: #1c1c1c; color: #d0d0d0; }
    header .name { font-size: 1.8em; color: #5fd7ff; }
    h2 { color: #5fd7ff; border-bottom: 1px solid #3a3a3a; }
    a { color: #87d7ff; }
    aside { border: 1px solid #5fd7ff; padding: 0 1em; margin-top: 2em; }
    dt { float: left; width: 9em; color: #87d787; }
  </style>
`
