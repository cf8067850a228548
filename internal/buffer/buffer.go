package buffer

import "strings"

// RuneUTF16Len returns the number of UTF-16 code units r encodes to.
func RuneUTF16Len(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}

// UTF16Len returns the length of text measured in UTF-16 code units.
// Invalid bytes decode to U+FFFD and count as one unit.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		count += RuneUTF16Len(r)
	}
	return count
}

// Span is a written region of the buffer in both byte and UTF-16 units.
type Span struct {
	ByteStart, ByteEnd   int
	UTF16Start, UTF16End int
}

// UTF16Len returns the length of the span in UTF-16 code units.
func (s Span) UTF16Len() int {
	return s.UTF16End - s.UTF16Start
}

// TextBuffer accumulates plain text and tracks the current byte and UTF-16
// offsets.
type TextBuffer struct {
	sb          strings.Builder
	utf16Offset int
}

// New creates a new TextBuffer.
func New() *TextBuffer {
	return &TextBuffer{}
}

// Write appends text to the buffer and returns the region it occupies.
func (tb *TextBuffer) Write(text string) Span {
	s := Span{ByteStart: tb.sb.Len(), UTF16Start: tb.utf16Offset}
	tb.sb.WriteString(text)
	tb.utf16Offset += UTF16Len(text)
	s.ByteEnd = tb.sb.Len()
	s.UTF16End = tb.utf16Offset
	return s
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	return tb.sb.String()
}
