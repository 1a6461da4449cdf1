package text

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var frontmatterPattern = regexp.MustCompile(`(?s)\A---\r?\n.*?\r?\n---[ \t]*(\r?\n|\z)`)

// StripFrontmatter removes a leading YAML frontmatter block.
func StripFrontmatter(markdown string) string {
	return frontmatterPattern.ReplaceAllString(markdown, "")
}

// Plain renders markdown as plain prose. Headings, paragraphs and list items
// become separate lines; code blocks, raw HTML and bare links are dropped.
func Plain(markdown string) string {
	source := []byte(StripFrontmatter(markdown))

	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var buf bytes.Buffer

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch n := n.(type) {
		case *ast.CodeBlock, *ast.FencedCodeBlock, *ast.HTMLBlock, *ast.RawHTML, *ast.AutoLink:
			return ast.WalkSkipChildren, nil

		case *ast.Text:
			if !entering {
				return ast.WalkContinue, nil
			}

			buf.Write(n.Segment.Value(source))

			if n.HardLineBreak() {
				buf.WriteByte('\n')
			} else if n.SoftLineBreak() {
				buf.WriteByte(' ')
			}

		case *ast.String:
			if entering {
				buf.Write(n.Value)
			}

		default:
			if !entering && n.Type() == ast.TypeBlock && n.Kind() != ast.KindDocument {
				buf.WriteString("\n\n")
			}
		}

		return ast.WalkContinue, nil
	})

	return Normalize(buf.String())
}

// Normalize collapses runs of blanks inside lines and keeps at most one empty
// line between paragraphs.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	var lines []string

	blank := false

	for line := range strings.SplitSeq(s, "\n") {
		line = strings.Join(strings.Fields(line), " ")

		if line == "" {
			blank = len(lines) > 0
			continue
		}

		if blank {
			lines = append(lines, "")
			blank = false
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}
