package content

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

// BlockKind classifies a rendered markdown block.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockListItem
	BlockCode
	BlockQuote
	BlockRule
)

// Block is a markdown block flattened to plain text.
type Block struct {
	Kind  BlockKind
	Text  string
	Level int    // heading level, or list nesting depth starting at 0
	Mark  string // list marker such as "•" or "2."
}

const markdownExtensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock

func parseMarkdown(body string) ast.Node {
	// Parsers are single-use.
	p := parser.NewWithExtensions(markdownExtensions)
	return p.Parse([]byte(body))
}

// RenderBlocks flattens a markdown body into blocks. Inline emphasis is
// dropped; link targets are appended in parentheses when they differ from
// the link text.
func RenderBlocks(body string) []Block {
	if strings.TrimSpace(body) == "" {
		return nil
	}
	w := &blockWalker{}
	ast.WalkFunc(parseMarkdown(body), w.visit)
	w.flush(BlockParagraph, 0)
	return w.blocks
}

type listState struct {
	ordered bool
	n       int
}

type blockWalker struct {
	blocks    []Block
	buf       strings.Builder
	lists     []listState
	mark      string
	quote     int
	linkStart []int
}

func (w *blockWalker) visit(node ast.Node, entering bool) ast.WalkStatus {
	switch n := node.(type) {
	case *ast.Heading:
		if entering {
			w.buf.Reset()
			return ast.GoToNext
		}
		w.flush(BlockHeading, n.Level)
	case *ast.Paragraph:
		if entering {
			return ast.GoToNext
		}
		w.flushParagraph()
	case *ast.List:
		if entering {
			w.flushParagraph()
			w.lists = append(w.lists, listState{ordered: n.ListFlags&ast.ListTypeOrdered != 0, n: n.Start - 1})
			if w.lists[len(w.lists)-1].n < 0 {
				w.lists[len(w.lists)-1].n = 0
			}
			return ast.GoToNext
		}
		w.lists = w.lists[:len(w.lists)-1]
	case *ast.ListItem:
		if entering {
			top := &w.lists[len(w.lists)-1]
			top.n++
			if top.ordered {
				w.mark = strconv.Itoa(top.n) + "."
			} else {
				w.mark = "•"
			}
			return ast.GoToNext
		}
		w.flushParagraph()
	case *ast.BlockQuote:
		if entering {
			w.quote++
		} else {
			w.quote--
		}
	case *ast.CodeBlock:
		w.flushParagraph()
		w.blocks = append(w.blocks, Block{Kind: BlockCode, Text: strings.TrimRight(string(n.Literal), "\n")})
	case *ast.HorizontalRule:
		w.flushParagraph()
		w.blocks = append(w.blocks, Block{Kind: BlockRule})
	case *ast.Text:
		// Soft line breaks arrive as newlines inside the literal.
		w.buf.WriteString(strings.ReplaceAll(string(n.Literal), "\n", " "))
	case *ast.Code:
		w.buf.Write(n.Literal)
	case *ast.Softbreak:
		w.buf.WriteByte(' ')
	case *ast.Hardbreak:
		w.buf.WriteByte('\n')
	case *ast.Link:
		if entering {
			w.linkStart = append(w.linkStart, w.buf.Len())
			return ast.GoToNext
		}
		start := w.linkStart[len(w.linkStart)-1]
		w.linkStart = w.linkStart[:len(w.linkStart)-1]
		text := w.buf.String()[start:]
		dest := string(n.Destination)
		if dest != "" && !sameTarget(text, dest) {
			w.buf.WriteString(" (" + dest + ")")
		}
	case *ast.HTMLBlock, *ast.HTMLSpan, *ast.Table:
		return ast.SkipChildren
	}
	return ast.GoToNext
}

func sameTarget(text, dest string) bool {
	trim := func(s string) string {
		s = strings.TrimPrefix(s, "https://")
		s = strings.TrimPrefix(s, "http://")
		s = strings.TrimPrefix(s, "mailto:")
		return strings.TrimSuffix(s, "/")
	}
	return trim(text) == trim(dest)
}

// flushParagraph emits buffered inline text as the block kind implied by the
// current list and quote nesting.
func (w *blockWalker) flushParagraph() {
	switch {
	case len(w.lists) > 0:
		w.flush(BlockListItem, len(w.lists)-1)
	case w.quote > 0:
		w.flush(BlockQuote, 0)
	default:
		w.flush(BlockParagraph, 0)
	}
}

func (w *blockWalker) flush(kind BlockKind, level int) {
	text := strings.TrimSpace(w.buf.String())
	w.buf.Reset()
	if text == "" {
		return
	}
	b := Block{Kind: kind, Text: text, Level: level}
	if kind == BlockListItem {
		b.Mark = w.mark
		// Later paragraphs of the same item continue without a marker.
		w.mark = ""
	}
	w.blocks = append(w.blocks, b)
}

// PlainText collapses a markdown body to a single line, for summaries.
func PlainText(body string) string {
	var out bytes.Buffer
	for i, b := range RenderBlocks(body) {
		if b.Kind == BlockRule {
			continue
		}
		if i > 0 && out.Len() > 0 {
			out.WriteByte(' ')
		}
		out.WriteString(strings.ReplaceAll(b.Text, "\n", " "))
	}
	return out.String()
}
