// Package markdown extracts code regions from markdown source so the
// code-spelling analyzer only ever sees code, never prose.
package markdown

import (
	"bytes"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Segment is a code region of a markdown document. Offset is counted in
// runes so findings produced against Text can be rebased onto the source.
type Segment struct {
	Text   string
	Offset int // rune offset of Text within the source
	Line   int // 1-based line number of the first character
}

// Extractor locates code blocks and inline code spans using goldmark AST
// parsing.
type Extractor struct {
	parser goldmark.Markdown
}

// NewExtractor creates a new code extractor.
func NewExtractor() *Extractor {
	return &Extractor{parser: goldmark.New()}
}

// CodeSegments returns every fenced code block, indented code block and
// inline code span in source, in document order.
func (e *Extractor) CodeSegments(source string) []Segment {
	if source == "" {
		return nil
	}

	src := []byte(source)
	doc := e.parser.Parser().Parse(text.NewReader(src))

	var segments []Segment
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.FencedCodeBlock:
			if seg, ok := blockSegment(node.Lines(), src); ok {
				segments = append(segments, seg)
			}
			return ast.WalkSkipChildren, nil

		case *ast.CodeBlock:
			if seg, ok := blockSegment(node.Lines(), src); ok {
				segments = append(segments, seg)
			}
			return ast.WalkSkipChildren, nil

		case *ast.CodeSpan:
			first, ok1 := node.FirstChild().(*ast.Text)
			last, ok2 := node.LastChild().(*ast.Text)
			if ok1 && ok2 && last.Segment.Stop > first.Segment.Start {
				segments = append(segments, makeSegment(src, first.Segment.Start, last.Segment.Stop))
			}
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return segments
}

// blockSegment builds one Segment covering all lines of a code block. Fence
// markers and info strings are not part of the block's lines, so only the
// code itself is returned.
func blockSegment(lines *text.Segments, src []byte) (Segment, bool) {
	if lines == nil || lines.Len() == 0 {
		return Segment{}, false
	}
	first := lines.At(0)
	last := lines.At(lines.Len() - 1)
	return makeSegment(src, first.Start, last.Stop), true
}

func makeSegment(src []byte, start, stop int) Segment {
	return Segment{
		Text:   string(src[start:stop]),
		Offset: utf8.RuneCount(src[:start]),
		Line:   1 + bytes.Count(src[:start], []byte{'\n'}),
	}
}
