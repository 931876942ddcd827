package content

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// LineKind tells the renderer how to style a laid-out line.
type LineKind int

const (
	LineBlank LineKind = iota
	LineHeader
	LineSectionTitle
	LineHeading
	LineText
	LineListItem
	LineCode
	LineQuote
	LineRule
)

// Line is one terminal row of the page.
type Line struct {
	Kind LineKind
	Text string
	// Header is the index into Document.Header for LineHeader rows, else -1.
	Header int
}

// Page is a document laid out for a fixed width. Anchors maps section ids to
// the row of their title.
type Page struct {
	Lines   []Line
	Anchors map[string]int
	Width   int
}

const (
	minLayoutWidth = 20
	codeIndent     = "  "
	quotePrefix    = "│ "
	listIndent     = "  "
)

// Layout wraps the document to width columns.
func Layout(doc Document, width int) Page {
	if width < minLayoutWidth {
		width = minLayoutWidth
	}
	p := Page{Anchors: make(map[string]int, len(doc.Sections)), Width: width}
	add := func(kind LineKind, text string) {
		p.Lines = append(p.Lines, Line{Kind: kind, Text: text, Header: -1})
	}

	for i, h := range doc.Header {
		p.Lines = append(p.Lines, Line{Kind: LineHeader, Text: runewidth.Truncate(h.Text, width, "…"), Header: i})
	}
	if len(doc.Header) > 0 {
		add(LineBlank, "")
	}

	for _, s := range doc.Sections {
		p.Anchors[s.ID] = len(p.Lines)
		for _, l := range wrap(s.Title, width) {
			add(LineSectionTitle, l)
		}
		add(LineRule, strings.Repeat("─", min(width, runewidth.StringWidth(s.Title)+4)))
		for _, b := range RenderBlocks(s.Body) {
			if b.Kind != BlockListItem && p.Lines[len(p.Lines)-1].Kind == LineListItem {
				add(LineBlank, "")
			}
			switch b.Kind {
			case BlockHeading:
				for _, l := range wrap(b.Text, width) {
					add(LineHeading, l)
				}
			case BlockListItem:
				indent := strings.Repeat(listIndent, b.Level)
				mark := b.Mark
				if mark == "" {
					mark = " "
				}
				first := indent + mark + " "
				rest := strings.Repeat(" ", runewidth.StringWidth(first))
				for i, l := range wrap(b.Text, width-runewidth.StringWidth(first)) {
					if i == 0 {
						add(LineListItem, first+l)
					} else {
						add(LineListItem, rest+l)
					}
				}
				continue
			case BlockCode:
				for _, l := range strings.Split(b.Text, "\n") {
					add(LineCode, runewidth.Truncate(codeIndent+l, width, "…"))
				}
			case BlockQuote:
				for _, l := range wrap(b.Text, width-runewidth.StringWidth(quotePrefix)) {
					add(LineQuote, quotePrefix+l)
				}
			case BlockRule:
				add(LineRule, strings.Repeat("─", width))
			default:
				for _, l := range wrap(b.Text, width) {
					add(LineText, l)
				}
			}
			add(LineBlank, "")
		}
		if n := len(p.Lines); n == 0 || p.Lines[n-1].Kind != LineBlank {
			add(LineBlank, "")
		}
	}
	return p
}

// Height is the number of rows in the page.
func (p Page) Height() int { return len(p.Lines) }

// wrap breaks text into rows no wider than width, splitting on spaces and
// hard-splitting words that do not fit on a row of their own. Embedded
// newlines force a break.
func wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		var line strings.Builder
		lineW := 0
		for _, word := range words {
			ww := runewidth.StringWidth(word)
			if lineW > 0 && lineW+1+ww > width {
				out = append(out, line.String())
				line.Reset()
				lineW = 0
			}
			for ww > width {
				head := runewidth.Truncate(word, width, "")
				if head == "" {
					head = string([]rune(word)[:1])
				}
				out = append(out, head)
				word = word[len(head):]
				ww = runewidth.StringWidth(word)
			}
			if lineW > 0 {
				line.WriteByte(' ')
				lineW++
			}
			line.WriteString(word)
			lineW += ww
		}
		out = append(out, line.String())
	}
	return out
}
