package parser

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,
	),
}

var md = goldmark.New(StandardOptions...)

// Code is the content of a codeblock with its fences removed.
type Code struct {
	Language string
	Body     string
	// Inline is set for code spans, as opposed to fenced blocks.
	Inline bool
}

// ParseCode reads a closed codeblock (fences included) the way a Markdown
// renderer would. Triple-fenced blocks with the closing fence on its own line
// become a fenced code block with an info-string language; single-fenced
// blocks become a code span. ok is false when goldmark sees anything else,
// e.g. "```code```" on a single line containing further backticks.
func ParseCode(raw string) (code Code, ok bool) {
	source := []byte(raw)
	doc := md.Parser().Parse(text.NewReader(source))

	first := doc.FirstChild()
	if first == nil || first.NextSibling() != nil {
		return Code{}, false
	}

	switch n := first.(type) {
	case *ast.FencedCodeBlock:
		if !strings.HasSuffix(raw, "\n```") {
			// Closing fence not on its own line; goldmark would run to EOF.
			return Code{}, false
		}
		return Code{
			Language: codeLanguage(n, source),
			Body:     codeBlockText(n, source),
		}, true

	case *ast.Paragraph:
		span, isSpan := n.FirstChild().(*ast.CodeSpan)
		if !isSpan || span.NextSibling() != nil {
			return Code{}, false
		}
		return Code{Body: extractCodeSpanText(span, source), Inline: true}, true
	}

	return Code{}, false
}

func codeLanguage(n *ast.FencedCodeBlock, source []byte) string {
	lang := strings.Split(string(n.Language(source)), ",")[0]
	return strings.TrimSpace(lang)
}

func codeBlockText(n *ast.FencedCodeBlock, source []byte) string {
	var buf strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(source))
	}
	// Strip single trailing newline
	return strings.TrimSuffix(buf.String(), "\n")
}

func extractCodeSpanText(n *ast.CodeSpan, source []byte) string {
	var buf strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			_, _ = buf.Write(t.Segment.Value(source))
		case *ast.String:
			_, _ = buf.Write(t.Value)
		}
	}
	return buf.String()
}
