package lineio

import (
	"iter"
	"slices"
	"strings"

	"github.com/samber/lo"
	"spheric.cloud/xiter"
)

// isSep reports whether r separates tokens.
// Commas count as separators so that comma-delimited judge input
// reads the same as space-delimited input.
func isSep(r rune) bool {
	return r == ' ' || r == '\t' || r == ','
}

// Line is a single line of input, split into tokens,
// with a cursor tracking how many tokens extraction has consumed.
// The cursor only ever moves forward; consumed tokens cannot be re-read.
type Line struct {
	text   string
	tokens []string
	pos    int
	lineno int
}

// NewLine tokenizes a standalone string,
// for extraction from sources other than a Source.
func NewLine(text string) *Line {
	return newLine(text, 0)
}

func newLine(text string, lineno int) *Line {
	return &Line{
		text:   text,
		tokens: strings.FieldsFunc(text, isSep),
		lineno: lineno,
	}
}

// Text returns the raw line, trailing newline stripped.
func (ln *Line) Text() string {
	return ln.text
}

// Lineno returns the 1-based line number within its Source,
// or 0 for a standalone Line.
func (ln *Line) Lineno() int {
	return ln.lineno
}

// Tokens returns the tokens not yet consumed by extraction.
func (ln *Line) Tokens() []string {
	return ln.tokens[ln.pos:]
}

// Remaining returns the number of unconsumed tokens.
func (ln *Line) Remaining() int {
	return len(ln.tokens) - ln.pos
}

// Skip discards up to n unconsumed tokens.
func (ln *Line) Skip(n int) {
	ln.pos = min(ln.pos+n, len(ln.tokens))
}

func (ln *Line) blank() bool {
	return len(ln.tokens) == 0
}

// next consumes one token.
func (ln *Line) next() (string, bool) {
	if ln.pos >= len(ln.tokens) {
		return "", false
	}

	tok := ln.tokens[ln.pos]
	ln.pos++
	return tok, true
}

// infoLast locates the most recently consumed token.
func (ln *Line) infoLast() LineInfo {
	return LineInfo{ln.lineno, ln.pos, ln.text}
}

// infoNext locates the next unconsumed token position.
func (ln *Line) infoNext() LineInfo {
	return LineInfo{ln.lineno, ln.pos + 1, ln.text}
}

// Block is a maximal run of consecutive non-blank lines,
// bounded by blank lines or the ends of the input.
type Block struct {
	lines []*Line
}

// Lines returns the lines of the block, in source order.
func (b *Block) Lines() []*Line {
	return b.lines
}

// Len returns the number of lines in the block.
func (b *Block) Len() int {
	return len(b.lines)
}

// Text returns the raw text of each line in the block.
func (b *Block) Text() []string {
	return lo.Map(b.lines, func(ln *Line, _ int) string {
		return ln.text
	})
}

// Tokens returns the unconsumed tokens of every line in the block,
// flattened in source order.
func (b *Block) Tokens() []string {
	return slices.Collect(xiter.Flatmap(slices.Values(b.lines),
		func(ln *Line) iter.Seq[string] {
			return slices.Values(ln.Tokens())
		}))
}
