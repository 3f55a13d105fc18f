// Package patch implements the hunk resolution and application engine:
// line tokenization, strict/tolerant block location, overlap detection
// across hunks, and indentation-preserving splicing.
package patch

import "strings"

// Line is one physical line split into indentation, core content and
// trailing whitespace. Concatenating the three parts reproduces the
// original line byte-for-byte.
type Line struct {
	Indent   string
	Content  string
	Trailing string
}

// TokenizeLine splits a physical line (no embedded newlines) into its
// indent / content / trailing parts. Indent and trailing are maximal runs
// of spaces and tabs; a fully blank line keeps all of its whitespace in
// Indent and has empty Content.
func TokenizeLine(line string) Line {
	start := 0
	for start < len(line) && (line[start] == ' ' || line[start] == '\t') {
		start++
	}
	if start == len(line) {
		return Line{Indent: line}
	}
	end := len(line)
	for end > start && (line[end-1] == ' ' || line[end-1] == '\t') {
		end--
	}
	return Line{
		Indent:   line[:start],
		Content:  line[start:end],
		Trailing: line[end:],
	}
}

// Reconstruct returns the physical line the tokenized parts came from.
func (l Line) Reconstruct() string {
	return l.Indent + l.Content + l.Trailing
}

// DetectNewline returns the line-ending convention of text: "\r\n" if it
// appears anywhere, otherwise "\n".
func DetectNewline(text string) string {
	if strings.Contains(text, "\r\n") {
		return "\r\n"
	}
	return "\n"
}

// Buffer is an ordered sequence of tokenized lines plus the line-ending
// string used to join them back together.
type Buffer struct {
	Lines   []Line
	Newline string
}

// NewBuffer tokenizes text into a Buffer using its detected line ending.
// Empty text yields exactly one empty line so that an empty file
// round-trips to an empty file.
func NewBuffer(text string) *Buffer {
	newline := DetectNewline(text)
	var raw []string
	if text == "" {
		raw = []string{""}
	} else {
		raw = strings.Split(text, newline)
	}
	lines := make([]Line, len(raw))
	for i, r := range raw {
		lines[i] = TokenizeLine(r)
	}
	return &Buffer{Lines: lines, Newline: newline}
}

// String reassembles the buffer into text.
func (b *Buffer) String() string {
	parts := make([]string, len(b.Lines))
	for i, l := range b.Lines {
		parts[i] = l.Reconstruct()
	}
	return strings.Join(parts, b.Newline)
}

// splitBlock tokenizes a hunk block. Blocks accept either line-ending
// convention regardless of what the target buffer uses.
func splitBlock(block string) []Line {
	raw := strings.Split(strings.ReplaceAll(block, "\r\n", "\n"), "\n")
	lines := make([]Line, len(raw))
	for i, r := range raw {
		lines[i] = TokenizeLine(r)
	}
	return lines
}
